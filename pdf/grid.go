package pdf

import (
	"strings"

	"github.com/samber/lo"

	"github.com/flanksource/specsheet/api"
)

// Mini-table row sizing inside a card. When the nominal height would leave
// the last row below the readable minimum, all four rows divide the space
// equally instead; the last row is never clipped or negative.
const (
	cardNominalRowH = 10.0
	cardMinRowH     = 7.0
)

// Paginate splits the sibling list into gallery pages of at most capacity
// cards, preserving the original order. ceil(N/capacity) pages.
func Paginate(items []api.CollectionItem, capacity int) [][]api.CollectionItem {
	if capacity <= 0 || len(items) == 0 {
		return nil
	}
	return lo.Chunk(items, capacity)
}

// CardRowHeights distributes the space under a card's image region across
// the four mini-table rows so they sum exactly to total.
func CardRowHeights(total float64) [4]float64 {
	last := total - 3*cardNominalRowH
	if last < cardMinRowH {
		each := total / 4
		return [4]float64{each, each, each, each}
	}
	return [4]float64{cardNominalRowH, cardNominalRowH, cardNominalRowH, last}
}

// galleryPages lays the collection siblings out as fixed-size cards in a
// two-column grid, adding as many pages as the list requires. Each page
// repeats the title page's header and footer.
func (p *composer) galleryPages() {
	t := p.t
	pages := Paginate(p.in.Siblings, t.GalleryCapacity())

	colW := (t.ContentW() - t.CardGap) / 2
	for _, page := range pages {
		p.c.AddPage()
		top := p.header() + t.CardGap
		p.footer()

		for i, item := range page {
			row := i / 2
			col := i % 2
			box := api.Rect{
				X: t.Margin + float64(col)*(colW+t.CardGap),
				Y: top + float64(row)*(t.CardHeight+t.CardGap),
				W: colW,
				H: t.CardHeight,
			}
			p.card(item, box)
		}
	}
}

// card draws one gallery cell: a letterboxed image region with the product
// code badged over it, and the fixed 2x4 mini attribute table beneath.
func (p *composer) card(item api.CollectionItem, box api.Rect) {
	t := p.t

	p.c.FillBox(box, t.Paper, 2)
	p.c.StrokeBox(box, t.Mist, 2, 0.4)

	imgBox := api.Rect{X: box.X + 2, Y: box.Y + 2, W: box.W - 4, H: box.H * 0.52}
	p.c.FillBox(imgBox, t.Mist, 1.5)
	asset := p.in.Cards[item.Code]
	if asset != nil {
		p.c.Image(asset, imgBox.Inset(1))
	} else {
		p.c.Placeholder(imgBox, item.Code)
	}
	p.c.Pill(imgBox.X+2.5, imgBox.Bottom()-t.CardBadge.Height-2.5, item.Code, t.CardBadge)

	tableTop := imgBox.Bottom() + 2
	rows := CardRowHeights(box.Bottom() - 2 - tableTop)

	type cell struct{ label, value string }
	grid := [4][2]cell{
		{{"Category", item.Category}, {"Width", widthDisplay(item.WidthCM)}},
		{{"Design", item.Design}, {"Weight", weightDisplay(item.WeightGSM)}},
		{{"Structure", item.Structure}, {"Colours", strings.Join(item.Colors, ", ")}},
		{{"Content", strings.Join(item.Content, " / ")}, {"Motif", item.Motif}},
	}

	colW := (box.W - 4) / 2
	y := tableTop
	for r, row := range grid {
		for col, cl := range row {
			p.cardCell(box.X+2+float64(col)*colW, y, colW, rows[r], cl.label, cl.value)
		}
		if r < 3 {
			p.c.Line(box.X+2, y+rows[r], box.X+2+2*colW, y+rows[r], t.Mist, 0.25)
		}
		y += rows[r]
	}
	p.c.Line(box.X+2+colW, tableTop, box.X+2+colW, y, t.Mist, 0.25)
}

func (p *composer) cardCell(x, y, w, h float64, label, value string) {
	t := p.t
	if value == "" {
		value = "—"
	}
	labelFont := Font{Family: "Helvetica", Style: "B", Size: 5.8}
	valueFont := Font{Family: "Helvetica", Size: 7.5}
	p.c.Text(x+2, y+3, strings.ToUpper(label), labelFont, t.Slate)
	p.c.Text(x+2, y+h-2.2, p.c.FitLine(value, valueFont, w-4), valueFont, t.Ink)
}

func widthDisplay(cm string) string {
	if cm == "" {
		return ""
	}
	return cm + " cm"
}

func weightDisplay(gsm string) string {
	if gsm == "" {
		return ""
	}
	return gsm + " gsm"
}
