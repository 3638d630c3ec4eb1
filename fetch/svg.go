package fetch

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// RasterizeSVG renders SVG markup to a PNG asset, scaled so the longer axis
// is targetPx. Used for company logos, which are frequently served as SVG.
func RasterizeSVG(data []byte, targetPx int) (*Asset, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing svg: %w", err)
	}

	vw, vh := icon.ViewBox.W, icon.ViewBox.H
	if vw <= 0 || vh <= 0 {
		vw, vh = float64(targetPx), float64(targetPx)
	}

	scale := float64(targetPx) / vw
	if vh > vw {
		scale = float64(targetPx) / vh
	}
	w := int(vw*scale + 0.5)
	h := int(vh*scale + 0.5)
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("svg has degenerate viewbox %gx%g", vw, vh)
	}

	icon.SetTarget(0, 0, float64(w), float64(h))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding rasterized svg: %w", err)
	}

	out := buf.Bytes()
	return &Asset{
		Name:   assetName(out),
		Bytes:  out,
		Format: "png",
		Width:  w,
		Height: h,
	}, nil
}
