package api

// CollectionItem is the reduced record for a sibling product in the same
// collection: just enough attributes for one gallery card. The list length is
// unbounded and drives gallery pagination.
type CollectionItem struct {
	Code      string   `json:"code"`
	Category  string   `json:"category,omitempty"`
	Design    string   `json:"design,omitempty"`
	Structure string   `json:"structure,omitempty"`
	Motif     string   `json:"motif,omitempty"`
	WidthCM   string   `json:"width_cm,omitempty"`
	WeightGSM string   `json:"weight_gsm,omitempty"`
	Content   []string `json:"content,omitempty"`
	Colors    []string `json:"colors,omitempty"`
	Image     string   `json:"image,omitempty"`
}
