package pdf

import (
	"math"

	"github.com/jung-kurt/gofpdf/v2"
)

// Inner vertices sit at this fraction of the outer radius.
const starInnerRatio = 0.38

// NormalizeRating maps an upstream rating of unknown scale onto 0..5.
// Values at or below 5 are taken as-is, values up to 10 are halved, values
// up to 100 are read as a percentage, anything else clamps to 5. The
// thresholds are a heuristic; keep them in this one function.
func NormalizeRating(r float64) float64 {
	switch {
	case math.IsNaN(r) || r < 0:
		return 0
	case r <= 5:
		return r
	case r <= 10:
		return r / 2
	case r <= 100:
		return r * 5 / 100
	default:
		return 5
	}
}

// StarFractions returns the per-star fill fraction for a normalized 0..5
// rating: full stars up to the integer part, one partial star for the
// remainder, empty stars after.
func StarFractions(normalized float64) [5]float64 {
	var fracs [5]float64
	for i := 1; i <= 5; i++ {
		f := normalized - float64(i-1)
		if f > 1 {
			f = 1
		}
		if f < 0 {
			f = 0
		}
		fracs[i-1] = f
	}
	return fracs
}

// starPoints builds the 10-vertex star polygon: five outer points and five
// inner points alternating, rotated so one point is up.
func starPoints(cx, cy, outer float64) []gofpdf.PointType {
	pts := make([]gofpdf.PointType, 0, 10)
	inner := outer * starInnerRatio
	for k := 0; k < 10; k++ {
		r := outer
		if k%2 == 1 {
			r = inner
		}
		a := -math.Pi/2 + float64(k)*math.Pi/5
		pts = append(pts, gofpdf.PointType{X: cx + r*math.Cos(a), Y: cy + r*math.Sin(a)})
	}
	return pts
}

// Rating draws five stars left to right starting at (x, y), filling each
// star's fraction of the given rating (already on the upstream scale; it is
// normalized here). Partial stars are produced by filling the empty shape,
// clipping to the star polygon and filling a fraction-wide rectangle — no
// stroke outline (an outline leaves dark seams at the clip edge). Returns
// the total drawn width.
func (c *Canvas) Rating(x, y, diameter, gap, rating float64) float64 {
	outer := diameter / 2
	normalized := NormalizeRating(rating)
	fracs := StarFractions(normalized)

	for i, frac := range fracs {
		cx := x + float64(i)*(diameter+gap) + outer
		cy := y + outer
		pts := starPoints(cx, cy, outer)

		c.setFill(c.theme.StarEmpty)
		c.pdf.Polygon(pts, "F")

		if frac <= 0 {
			continue
		}

		c.setFill(c.theme.StarFilled)
		if frac >= 1 {
			// Full star: no clip needed.
			c.pdf.Polygon(pts, "F")
			continue
		}

		c.pdf.ClipPolygon(pts, false)
		c.pdf.Rect(cx-outer, cy-outer, frac*diameter, diameter, "F")
		c.pdf.ClipEnd()
	}

	return 5*diameter + 4*gap
}
