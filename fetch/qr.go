package fetch

import (
	"bytes"
	"fmt"
	"image/color"
	"image/png"
	"strings"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
	"github.com/disintegration/imaging"
)

const (
	qrSizePx   = 512
	qrMarginPx = 32
)

// QR encodes payload (typically a product URL) as a square matrix code with
// medium error correction and a white quiet zone. Failure yields a nil asset
// and an error; the QR block is then omitted from the sheet, not fatal.
func QR(payload string) (*Asset, error) {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return nil, fmt.Errorf("empty qr payload")
	}

	code, err := qr.Encode(payload, qr.M, qr.Auto)
	if err != nil {
		return nil, fmt.Errorf("encoding qr payload: %w", err)
	}

	code, err = barcode.Scale(code, qrSizePx, qrSizePx)
	if err != nil {
		return nil, fmt.Errorf("scaling qr code: %w", err)
	}

	// Quiet zone: scanners need clear margin around the matrix.
	side := qrSizePx + 2*qrMarginPx
	framed := imaging.PasteCenter(imaging.New(side, side, color.White), code)

	var buf bytes.Buffer
	if err := png.Encode(&buf, framed); err != nil {
		return nil, fmt.Errorf("encoding qr png: %w", err)
	}

	data := buf.Bytes()
	return &Asset{
		Name:   assetName(data),
		Bytes:  data,
		Format: "png",
		Width:  side,
		Height: side,
	}, nil
}
