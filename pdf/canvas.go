// Package pdf is the layout engine behind the specification sheet: an
// explicit canvas over gofpdf, text fitting and wrapping primitives, the
// fractional star renderer, the title-page composer and the collection grid
// paginator. All coordinates are page millimetres.
package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf/v2"

	"github.com/flanksource/specsheet/api"
	"github.com/flanksource/specsheet/fetch"
)

const ellipsis = "…"

// Canvas wraps a single gofpdf document. It is a plain value threaded
// through the composers — never package-global state — so generations are
// independent and testable in isolation.
type Canvas struct {
	pdf   *gofpdf.Fpdf
	tr    func(string) string
	theme Theme
	pages int
}

// NewCanvas returns an empty A4 portrait canvas with no pages.
func NewCanvas(theme Theme) *Canvas {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(false, 0)
	doc.SetMargins(0, 0, 0)
	doc.SetCellMargin(0)
	return &Canvas{
		pdf:   doc,
		tr:    doc.UnicodeTranslatorFromDescriptor(""),
		theme: theme,
	}
}

// AddPage seals the current page and starts a new one.
func (c *Canvas) AddPage() {
	c.pdf.AddPage()
	c.pages++
}

// Pages returns the number of pages composed so far.
func (c *Canvas) Pages() int { return c.pages }

// Err reports gofpdf's sticky internal error, if any.
func (c *Canvas) Err() error {
	if c.pdf.Err() {
		return c.pdf.Error()
	}
	return nil
}

// Output finalizes the document into a single artifact. No partial output is
// returned on error.
func (c *Canvas) Output() ([]byte, error) {
	if err := c.Err(); err != nil {
		return nil, fmt.Errorf("composing document: %w", err)
	}
	var buf bytes.Buffer
	if err := c.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("finalizing document: %w", err)
	}
	return buf.Bytes(), nil
}

func (c *Canvas) setFont(f Font) {
	c.pdf.SetFont(f.Family, f.Style, f.Size)
}

func (c *Canvas) setFill(col Color) { c.pdf.SetFillColor(col.R, col.G, col.B) }
func (c *Canvas) setDraw(col Color) { c.pdf.SetDrawColor(col.R, col.G, col.B) }
func (c *Canvas) setText(col Color) { c.pdf.SetTextColor(col.R, col.G, col.B) }

func ptToMM(pt float64) float64 { return pt * 25.4 / 72 }

func (f Font) lineHeight() float64 { return ptToMM(f.Size) * 1.35 }

func (f Font) ascentOffset() float64 { return ptToMM(f.Size) * 0.35 }

// TextWidth measures s in page units at the given font.
func (c *Canvas) TextWidth(s string, f Font) float64 {
	c.setFont(f)
	return c.pdf.GetStringWidth(c.tr(s))
}

// Text draws s with its baseline at (x, y).
func (c *Canvas) Text(x, y float64, s string, f Font, col Color) {
	if s == "" {
		return
	}
	c.setFont(f)
	c.setText(col)
	c.pdf.Text(x, y, c.tr(s))
}

// TextCentered draws s horizontally centered on cx with its baseline at y.
func (c *Canvas) TextCentered(cx, y float64, s string, f Font, col Color) {
	c.Text(cx-c.TextWidth(s, f)/2, y, s, f, col)
}

// TextRight draws s right-aligned to x with its baseline at y.
func (c *Canvas) TextRight(x, y float64, s string, f Font, col Color) {
	c.Text(x-c.TextWidth(s, f), y, s, f, col)
}

// FillBox fills r, rounding the corners by radius. Radius 0 is a plain
// rectangle.
func (c *Canvas) FillBox(r api.Rect, col Color, radius float64) {
	c.setFill(col)
	if radius <= 0 {
		c.pdf.Rect(r.X, r.Y, r.W, r.H, "F")
		return
	}
	c.pdf.RoundedRect(r.X, r.Y, r.W, r.H, radius, "1234", "F")
}

// StrokeBox outlines r, rounding the corners by radius.
func (c *Canvas) StrokeBox(r api.Rect, col Color, radius, lineW float64) {
	c.setDraw(col)
	c.pdf.SetLineWidth(lineW)
	if radius <= 0 {
		c.pdf.Rect(r.X, r.Y, r.W, r.H, "D")
		return
	}
	c.pdf.RoundedRect(r.X, r.Y, r.W, r.H, radius, "1234", "D")
}

// Line draws a straight stroke between two points.
func (c *Canvas) Line(x1, y1, x2, y2 float64, col Color, width float64) {
	c.setDraw(col)
	c.pdf.SetLineWidth(width)
	c.pdf.Line(x1, y1, x2, y2)
}

// Dot draws a small filled circle, used for footer contact badges and list
// bullets.
func (c *Canvas) Dot(cx, cy, r float64, col Color) {
	c.setFill(col)
	c.pdf.Circle(cx, cy, r, "F")
}

// Pill draws a rounded badge sized to the text plus horizontal padding and
// returns its drawn width so the caller can place the next pill with a fixed
// gap. Empty text draws nothing and returns 0.
func (c *Canvas) Pill(x, y float64, text string, st PillStyle) float64 {
	if text == "" {
		return 0
	}
	w := c.TextWidth(text, st.Font) + 2*st.PadX
	c.FillBox(api.Rect{X: x, Y: y, W: w, H: st.Height}, st.Fill, st.Radius)
	c.Text(x+st.PadX, y+st.Height/2+st.Font.ascentOffset(), text, st.Font, st.Text)
	return w
}

// FitLine returns text unchanged when it fits within maxW, otherwise the
// longest prefix (trailing whitespace trimmed) that fits together with an
// ellipsis. When even the ellipsis is too wide the result is empty. The
// returned string never measures wider than maxW.
func (c *Canvas) FitLine(text string, f Font, maxW float64) string {
	if c.TextWidth(text, f) <= maxW {
		return text
	}

	ellipsisW := c.TextWidth(ellipsis, f)
	if ellipsisW > maxW {
		return ""
	}

	runes := []rune(text)
	fits := func(n int) bool {
		prefix := strings.TrimRight(string(runes[:n]), " \t")
		return c.TextWidth(prefix, f)+ellipsisW <= maxW
	}

	// Binary search the longest fitting prefix; width is monotonic in the
	// prefix length.
	low, high := 0, len(runes)
	for low < high {
		mid := (low + high + 1) / 2
		if fits(mid) {
			low = mid
		} else {
			high = mid - 1
		}
	}
	return strings.TrimRight(string(runes[:low]), " \t") + ellipsis
}

// Wrap greedily word-wraps text into lines each measuring at most maxW,
// truncated to maxLines. Truncation adds no ellipsis; FitLine is the
// primitive that ellipsizes.
func (c *Canvas) Wrap(text string, f Font, maxW float64, maxLines int) []string {
	if maxLines <= 0 || strings.TrimSpace(text) == "" {
		return nil
	}

	var lines []string
	current := ""
	flush := func() {
		if current != "" {
			lines = append(lines, current)
			current = ""
		}
	}

	for _, word := range strings.Fields(text) {
		for word != "" && c.TextWidth(word, f) > maxW {
			// A single word wider than the line gets hard-broken.
			flush()
			head := c.longestRunePrefix(word, f, maxW)
			lines = append(lines, head)
			word = word[len(head):]
		}
		if word == "" {
			continue
		}
		switch {
		case current == "":
			current = word
		case c.TextWidth(current+" "+word, f) <= maxW:
			current += " " + word
		default:
			flush()
			current = word
		}
	}
	flush()

	if len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}

func (c *Canvas) longestRunePrefix(word string, f Font, maxW float64) string {
	runes := []rune(word)
	n := 1 // always make progress
	for n < len(runes) && c.TextWidth(string(runes[:n+1]), f) <= maxW {
		n++
	}
	return string(runes[:n])
}

// FitContain scales a source of srcW x srcH to fit entirely inside a
// boxW x boxH region without distortion and returns the draw size plus the
// centering offsets. Unknown source dimensions degrade to filling the box.
func FitContain(srcW, srcH, boxW, boxH float64) (w, h, dx, dy float64) {
	if srcW <= 0 || srcH <= 0 {
		return boxW, boxH, 0, 0
	}
	scale := boxW / srcW
	if s := boxH / srcH; s < scale {
		scale = s
	}
	w = srcW * scale
	h = srcH * scale
	return w, h, (boxW - w) / 2, (boxH - h) / 2
}

// Image contain-fits a fetched asset into box. A nil asset degrades to a
// labeled placeholder.
func (c *Canvas) Image(a *fetch.Asset, box api.Rect) {
	if a == nil {
		c.Placeholder(box, "Image unavailable")
		return
	}
	opts := gofpdf.ImageOptions{ImageType: a.Format}
	if c.pdf.GetImageInfo(a.Name) == nil {
		c.pdf.RegisterImageOptionsReader(a.Name, opts, bytes.NewReader(a.Bytes))
	}
	w, h, dx, dy := FitContain(float64(a.Width), float64(a.Height), box.W, box.H)
	c.pdf.ImageOptions(a.Name, box.X+dx, box.Y+dy, w, h, false, opts, 0, "")
}

// Placeholder draws the explicit "no image" state: a flat box with a muted
// centered label.
func (c *Canvas) Placeholder(box api.Rect, label string) {
	c.FillBox(box, c.theme.Mist, 1.5)
	font := Font{Family: "Helvetica", Style: "I", Size: 8}
	label = c.FitLine(label, font, box.W-4)
	c.TextCentered(box.X+box.W/2, box.Y+box.H/2+font.ascentOffset(), label, font, c.theme.Slate)
}
