package pdf

// Color is an opaque RGB color in 0-255 components.
type Color struct {
	R, G, B int
}

// Font selects a gofpdf core font. Size is in points.
type Font struct {
	Family string
	Style  string // "" | "B" | "I" | "BI"
	Size   float64
}

// PillStyle configures the rounded badge primitive.
type PillStyle struct {
	Font   Font
	Fill   Color
	Text   Color
	PadX   float64
	Height float64
	Radius float64
}

// Theme carries every page metric, color and font the composer uses. One
// fixed theme styles the whole sheet; there is no per-record styling.
type Theme struct {
	PageW, PageH float64 // mm
	Margin       float64

	// Vertical bands reserved on every page.
	HeaderH float64 // from top margin to below the double rule
	FooterH float64 // from the footer rule to the page bottom

	Gold  Color
	Ink   Color
	Slate Color
	Mist  Color
	Paper Color

	HeaderFont  Font
	CodeFont    Font
	TitleFont   Font
	TaglineFont Font
	BodyFont    Font
	LabelFont   Font
	ValueFont   Font
	FooterFont  Font

	CategoryPill PillStyle
	SupplyPill   PillStyle
	BadgePill    PillStyle
	CardBadge    PillStyle

	StarDiameter float64
	StarGap      float64
	StarFilled   Color
	StarEmpty    Color

	CardGap    float64
	CardHeight float64
}

// DefaultTheme is the house style: A4 portrait, gold accents on ink.
func DefaultTheme() Theme {
	gold := Color{R: 179, G: 143, B: 44}
	ink := Color{R: 33, G: 37, B: 41}
	slate := Color{R: 106, G: 113, B: 121}
	mist := Color{R: 238, G: 239, B: 241}
	paper := Color{R: 255, G: 255, B: 255}

	helv := func(style string, size float64) Font {
		return Font{Family: "Helvetica", Style: style, Size: size}
	}

	pill := func(fill, text Color, size float64) PillStyle {
		return PillStyle{
			Font:   helv("B", size),
			Fill:   fill,
			Text:   text,
			PadX:   3.2,
			Height: 6.4,
			Radius: 3.2,
		}
	}

	return Theme{
		PageW:   210,
		PageH:   297,
		Margin:  14,
		HeaderH: 18,
		FooterH: 26,

		Gold:  gold,
		Ink:   ink,
		Slate: slate,
		Mist:  mist,
		Paper: paper,

		HeaderFont:  helv("B", 15),
		CodeFont:    helv("B", 11),
		TitleFont:   helv("B", 17),
		TaglineFont: helv("I", 10.5),
		BodyFont:    helv("", 9),
		LabelFont:   helv("B", 6.5),
		ValueFont:   helv("", 8.5),
		FooterFont:  helv("", 8),

		CategoryPill: pill(gold, paper, 8),
		SupplyPill:   pill(mist, ink, 8),
		BadgePill:    pill(ink, paper, 8),
		CardBadge:    pill(ink, paper, 7),

		StarDiameter: 5.2,
		StarGap:      1.1,
		StarFilled:   gold,
		StarEmpty:    Color{R: 213, G: 215, B: 218},

		CardGap:    6,
		CardHeight: 108,
	}
}

// ContentW is the usable width between the page margins.
func (t Theme) ContentW() float64 { return t.PageW - 2*t.Margin }

// HeaderBottom is the y coordinate just below the header rule.
func (t Theme) HeaderBottom() float64 { return t.Margin + t.HeaderH }

// FooterTop is the y coordinate of the footer boundary; no body content may
// cross it.
func (t Theme) FooterTop() float64 { return t.PageH - t.FooterH }

// GalleryCapacity is the number of cards per gallery page: two columns, with
// the row count derived from the height available between header and footer.
func (t Theme) GalleryCapacity() int {
	avail := t.FooterTop() - t.HeaderBottom() - t.CardGap
	rows := int(avail / (t.CardHeight + t.CardGap))
	if rows < 1 {
		rows = 1
	}
	return 2 * rows
}
