package pdf

import (
	"fmt"
	"strings"

	"github.com/flanksource/specsheet/api"
)

// Suggested end uses printed near the bottom of the title page when space
// allows. Fixed editorial copy, not record data.
var (
	apparelUses = []string{"Shirting & dresses", "Jackets & overlays", "Scarves & stoles"}
	homeUses    = []string{"Cushions & upholstery", "Curtains & drapes", "Table linen"}
)

type composer struct {
	c  *Canvas
	t  Theme
	in Inputs
}

// header draws the repeating page header: logo slot, centered company name
// and the double gold rule. Returns the y just below the rule.
func (p *composer) header() float64 {
	t := p.t
	top := t.Margin

	logoSlot := api.Rect{X: t.Margin, Y: top, W: 26, H: 13}
	if p.in.Logo != nil {
		p.c.Image(p.in.Logo, logoSlot)
	}

	// Keep the centered name clear of the logo slot on both sides.
	nameMax := t.PageW - 2*(t.Margin+logoSlot.W+4)
	name := p.c.FitLine(p.in.Company.Name, t.HeaderFont, nameMax)
	p.c.TextCentered(t.PageW/2, top+9.5, name, t.HeaderFont, t.Ink)

	ruleY := top + t.HeaderH - 2.4
	p.c.Line(t.Margin, ruleY, t.PageW-t.Margin, ruleY, t.Gold, 0.7)
	p.c.Line(t.Margin, ruleY+1.4, t.PageW-t.Margin, ruleY+1.4, t.Gold, 0.3)
	return t.HeaderBottom()
}

// footer draws the contact row and wrapped address at the bottom of the
// page. Contact badges are drawn vector-native so a failed asset can never
// degrade the footer.
func (p *composer) footer() {
	t := p.t
	co := p.in.Company
	top := t.FooterTop()

	p.c.Line(t.Margin, top, t.PageW-t.Margin, top, t.Gold, 0.5)

	type contact struct{ glyph, text string }
	var contacts []contact
	if co.Phone != "" {
		contacts = append(contacts, contact{"T", co.Phone})
	}
	if co.WhatsApp != "" && co.WhatsApp != co.Phone {
		contacts = append(contacts, contact{"W", co.WhatsApp})
	}
	if co.Email != "" {
		contacts = append(contacts, contact{"E", co.Email})
	}

	y := top + 6.2
	const dotR, dotGap, entryGap = 1.9, 1.6, 8.0
	glyphFont := Font{Family: "Helvetica", Style: "B", Size: 6}

	total := 0.0
	for i, ct := range contacts {
		if i > 0 {
			total += entryGap
		}
		total += 2*dotR + dotGap + p.c.TextWidth(ct.text, t.FooterFont)
	}

	x := (t.PageW - total) / 2
	for i, ct := range contacts {
		if i > 0 {
			x += entryGap
		}
		p.c.Dot(x+dotR, y, dotR, t.Gold)
		p.c.TextCentered(x+dotR, y+glyphFont.ascentOffset(), ct.glyph, glyphFont, t.Paper)
		x += 2*dotR + dotGap
		p.c.Text(x, y+t.FooterFont.ascentOffset(), ct.text, t.FooterFont, t.Ink)
		x += p.c.TextWidth(ct.text, t.FooterFont)
	}

	addrY := y + 5.6
	for _, line := range p.c.Wrap(co.Address(), t.FooterFont, t.ContentW(), 2) {
		p.c.TextCentered(t.PageW/2, addrY, line, t.FooterFont, t.Slate)
		addrY += t.FooterFont.lineHeight()
	}
}

// titlePage composes the first page in fixed order. Optional blocks (QR
// card, suggested uses) recompute the space left above the footer boundary
// and omit themselves rather than overflow into it.
func (p *composer) titlePage() {
	t := p.t
	pr := p.in.Product

	p.c.AddPage()
	y := p.header() + 6
	p.footer()
	footerTop := t.FooterTop()

	// Product code with a gold underline accent.
	if pr.Code != "" {
		p.c.Text(t.Margin, y+4.2, pr.Code, t.CodeFont, t.Ink)
		codeW := p.c.TextWidth(pr.Code, t.CodeFont)
		p.c.Line(t.Margin, y+6.2, t.Margin+codeW+2, y+6.2, t.Gold, 0.8)
		y += 10
	}

	// Hero image card.
	card := api.Rect{X: t.Margin, Y: y, W: t.ContentW(), H: 64}
	p.c.FillBox(card, t.Mist, 3)
	p.c.Image(p.in.Hero, card.Inset(2))
	if n := len(p.in.Siblings); n > 0 {
		label := fmt.Sprintf("+%d Options", n)
		p.c.Pill(card.X+4, card.Bottom()-t.BadgePill.Height-4, label, t.BadgePill)
	}
	y = card.Bottom() + 6

	// Pill row: category, supply status, star rating.
	x := t.Margin
	if w := p.c.Pill(x, y, pr.Category, t.CategoryPill); w > 0 {
		x += w + 3
	}
	if w := p.c.Pill(x, y, pr.Supply, t.SupplyPill); w > 0 {
		x += w + 3
	}
	if pr.Rating != nil {
		starY := y + (t.CategoryPill.Height-t.StarDiameter)/2
		p.c.Rating(x+2, starY, t.StarDiameter, t.StarGap, *pr.Rating)
	}
	y += t.CategoryPill.Height + 6

	// Title wraps to at most 3 lines; the tagline anchors beneath wherever
	// the title actually ended.
	for _, line := range p.c.Wrap(pr.Title, t.TitleFont, t.ContentW(), 3) {
		y += t.TitleFont.lineHeight()
		p.c.Text(t.Margin, y-t.TitleFont.lineHeight()*0.25, line, t.TitleFont, t.Ink)
	}
	y += 2
	if pr.Tagline != "" {
		for _, line := range p.c.Wrap(pr.Tagline, t.TaglineFont, t.ContentW(), 2) {
			y += t.TaglineFont.lineHeight()
			p.c.Text(t.Margin, y-t.TaglineFont.lineHeight()*0.25, line, t.TaglineFont, t.Slate)
		}
	}
	y += 4

	// Short description.
	if pr.Description != "" {
		lines := p.c.Wrap(pr.Description, t.BodyFont, t.ContentW(), 2)
		need := float64(len(lines)) * t.BodyFont.lineHeight()
		if y+need <= footerTop {
			for _, line := range lines {
				y += t.BodyFont.lineHeight()
				p.c.Text(t.Margin, y-t.BodyFont.lineHeight()*0.25, line, t.BodyFont, t.Ink)
			}
			y += 4
		}
	}

	y = p.attributeTable(y, footerTop)

	// Optional bottom band: suggested uses at the left, QR card at the
	// right, each only when it still clears the footer boundary.
	const qrCardW, qrCardH = 32.0, 38.0
	if p.in.QR != nil && y+qrCardH <= footerTop {
		p.qrCard(api.Rect{X: t.PageW - t.Margin - qrCardW, Y: y, W: qrCardW, H: qrCardH})
	}
	p.suggestedUses(y, footerTop, t.ContentW()-qrCardW-8)
}

// attributeTable draws the 4x2 attribute grid plus the full-width finish
// row. Returns the y below the table (plus spacing), or the input y
// unchanged when there was no room.
func (p *composer) attributeTable(y, footerTop float64) float64 {
	t := p.t
	pr := p.in.Product

	const rowH, finishH = 10.5, 8.5
	need := 4*rowH + finishH
	if y+need > footerTop {
		return y
	}

	type cell struct{ label, value string }
	rows := [4][2]cell{
		{{"Content", strings.Join(pr.Content, " / ")}, {"Width", pr.WidthDisplay()}},
		{{"Weight", pr.WeightDisplay()}, {"Design", pr.Design}},
		{{"Structure", pr.Structure}, {"Colours", strings.Join(pr.Colors, ", ")}},
		{{"Motif", pr.Motif}, {"MOQ", pr.MOQDisplay()}},
	}

	colW := t.ContentW() / 2
	top := y
	for r, row := range rows {
		rowY := top + float64(r)*rowH
		for col, cl := range row {
			p.attrCell(t.Margin+float64(col)*colW, rowY, colW, rowH, cl.label, cl.value)
		}
		p.c.Line(t.Margin, rowY+rowH, t.Margin+t.ContentW(), rowY+rowH, t.Mist, 0.3)
	}
	p.c.Line(t.Margin+colW, top, t.Margin+colW, top+4*rowH, t.Mist, 0.3)
	p.c.Line(t.Margin, top, t.Margin+t.ContentW(), top, t.Mist, 0.3)

	finishY := top + 4*rowH
	p.attrCell(t.Margin, finishY, t.ContentW(), finishH, "Finish", strings.Join(pr.Finish, ", "))
	p.c.Line(t.Margin, finishY+finishH, t.Margin+t.ContentW(), finishY+finishH, t.Mist, 0.3)

	return finishY + finishH + 6
}

func (p *composer) attrCell(x, y, w, h float64, label, value string) {
	t := p.t
	if value == "" {
		value = "—"
	}
	p.c.Text(x+3, y+3.4, strings.ToUpper(label), t.LabelFont, t.Slate)
	value = p.c.FitLine(value, t.ValueFont, w-6)
	p.c.Text(x+3, y+h-2.6, value, t.ValueFont, t.Ink)
}

func (p *composer) qrCard(box api.Rect) {
	t := p.t
	p.c.StrokeBox(box, t.Mist, 2, 0.4)
	qrSide := box.W - 6
	p.c.Image(p.in.QR, api.Rect{X: box.X + 3, Y: box.Y + 3, W: qrSide, H: qrSide})
	caption := p.c.FitLine("Scan for live availability", Font{Family: "Helvetica", Size: 6}, box.W-4)
	p.c.TextCentered(box.Center().X, box.Bottom()-2.6, caption, Font{Family: "Helvetica", Size: 6}, t.Slate)
}

// suggestedUses draws the apparel and home lists side by side when the
// remaining band above the footer can hold them.
func (p *composer) suggestedUses(y, footerTop, width float64) {
	t := p.t
	headingFont := Font{Family: "Helvetica", Style: "B", Size: 8.5}
	itemFont := Font{Family: "Helvetica", Size: 8}

	itemCount := len(apparelUses)
	if len(homeUses) > itemCount {
		itemCount = len(homeUses)
	}
	need := 10 + float64(itemCount)*4.6
	if y+need > footerTop || width < 60 {
		return
	}

	colW := width / 2
	drawList := func(x float64, heading string, items []string) {
		p.c.Text(x, y+3.5, heading, headingFont, t.Ink)
		itemY := y + 9
		for _, item := range items {
			p.c.Dot(x+1.2, itemY-1, 0.7, t.Gold)
			p.c.Text(x+3.6, itemY, p.c.FitLine(item, itemFont, colW-8), itemFont, t.Slate)
			itemY += 4.6
		}
	}
	drawList(t.Margin, "Apparel", apparelUses)
	drawList(t.Margin+colW, "Home & Accessories", homeUses)
}
