package api

// RawProduct is the upstream product record as received: a sparse map with
// historically inconsistent key names. Several keys may carry the same
// meaning; resolution order is defined by the alias tables in the resolve
// package.
type RawProduct map[string]any

// Product is the canonical, fully-resolved view of a product record.
// Immutable once built.
type Product struct {
	Code        string   `json:"code"`
	Title       string   `json:"title,omitempty"`
	Tagline     string   `json:"tagline,omitempty"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category,omitempty"`
	Supply      string   `json:"supply,omitempty"` // supply model / availability status
	Content     []string `json:"content,omitempty"`
	WidthCM     string   `json:"width_cm,omitempty"`
	WidthInch   string   `json:"width_inch,omitempty"`
	WeightGSM   string   `json:"weight_gsm,omitempty"`
	WeightOz    string   `json:"weight_oz,omitempty"`
	Design      string   `json:"design,omitempty"`
	Structure   string   `json:"structure,omitempty"`
	Colors      []string `json:"colors,omitempty"`
	Motif       string   `json:"motif,omitempty"`
	Finish      []string `json:"finish,omitempty"`
	MOQ         string   `json:"moq,omitempty"`
	MOQUnit     string   `json:"moq_unit,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
	Collection  string   `json:"collection,omitempty"`
	Images      []string `json:"images,omitempty"`
}

// HeroImage returns the primary product image URL, or "" when the record
// carries no images.
func (p Product) HeroImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// WidthDisplay renders the width for the attribute table, joining the metric
// and imperial values when both are present.
func (p Product) WidthDisplay() string {
	return joinUnits(p.WidthCM, "cm", p.WidthInch, `"`)
}

// WeightDisplay renders the weight for the attribute table.
func (p Product) WeightDisplay() string {
	return joinUnits(p.WeightGSM, "gsm", p.WeightOz, "oz")
}

// MOQDisplay renders the minimum order quantity with its unit.
func (p Product) MOQDisplay() string {
	if p.MOQ == "" {
		return ""
	}
	if p.MOQUnit == "" {
		return p.MOQ
	}
	return p.MOQ + " " + p.MOQUnit
}

func joinUnits(a, aUnit, b, bUnit string) string {
	switch {
	case a != "" && b != "":
		return a + " " + aUnit + " / " + b + bUnit
	case a != "":
		return a + " " + aUnit
	case b != "":
		return b + bUnit
	default:
		return ""
	}
}
