package pdf

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flanksource/specsheet/api"
	"github.com/flanksource/specsheet/fetch"
)

func pngAsset(t *testing.T, w, h int) *fetch.Asset {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	asset, err := fetch.Decode(buf.Bytes())
	require.NoError(t, err)
	return asset
}

func testProduct() api.Product {
	return api.Product{
		Code:        "LF-1042",
		Title:       "Indigo Herringbone Twill",
		Tagline:     "Suiting · Yarn dyed · 50 m MOQ",
		Description: "A densely woven herringbone twill in deep indigo, suitable for structured garments.",
		Category:    "Suiting",
		Supply:      "Made to order",
		Content:     []string{"Cotton", "Linen"},
		WidthCM:     "148",
		WidthInch:   "58",
		WeightGSM:   "240",
		Design:      "Herringbone",
		Structure:   "Twill",
		Colors:      []string{"Indigo", "Ecru"},
		Motif:       "Chevron",
		Finish:      []string{"Sanforized", "Mercerized"},
		MOQ:         "50",
		MOQUnit:     "m",
		Rating:      lo.ToPtr(4.3),
		Collection:  "coastal-24",
	}
}

func TestComposeSinglePage(t *testing.T) {
	doc, err := Compose(Inputs{
		Product: testProduct(),
		Company: api.DefaultCompany(),
		Hero:    pngAsset(t, 320, 200),
	})
	require.NoError(t, err)

	assert.Equal(t, "LF-1042.pdf", doc.Name)
	assert.Equal(t, 1, doc.Pages, "no siblings means exactly the title page")
	assert.Equal(t, 1, ValidatePDF(t, doc.Data))
	AssertContainsText(t, doc.Data, "LF-1042")
}

func TestComposeGalleryPagination(t *testing.T) {
	items := siblings(5)
	capacity := DefaultTheme().GalleryCapacity()
	require.Equal(t, 4, capacity)

	doc, err := Compose(Inputs{
		Product:  testProduct(),
		Company:  api.DefaultCompany(),
		Siblings: items,
		Cards:    map[string]*fetch.Asset{items[0].Code: pngAsset(t, 100, 100)},
	})
	require.NoError(t, err)

	// 5 siblings at capacity 4: title page + 2 gallery pages.
	assert.Equal(t, 3, doc.Pages)
	assert.Equal(t, 3, ValidatePDF(t, doc.Data))
}

func TestComposeSurvivesMissingAssets(t *testing.T) {
	// No hero, no logo, no QR, no card images: everything degrades to
	// placeholders and omitted blocks, never an error.
	doc, err := Compose(Inputs{
		Product:  testProduct(),
		Company:  api.DefaultCompany(),
		Siblings: siblings(2),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, ValidatePDF(t, doc.Data))
}

func TestComposeMinimalProduct(t *testing.T) {
	doc, err := Compose(Inputs{
		Product: api.Product{Title: "Fabric Specification"},
		Company: api.DefaultCompany(),
	})
	require.NoError(t, err)
	assert.Equal(t, "spec-sheet.pdf", doc.Name, "missing code falls back to the generic name")
	assert.Equal(t, 1, ValidatePDF(t, doc.Data))
}

func TestComposeWithQR(t *testing.T) {
	qr, err := fetch.QR("https://shop.example.com/p/LF-1042")
	require.NoError(t, err)

	doc, err := Compose(Inputs{
		Product: testProduct(),
		Company: api.DefaultCompany(),
		QR:      qr,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, ValidatePDF(t, doc.Data))
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "LF-9.pdf", Filename("LF-9"))
	assert.Equal(t, "spec-sheet.pdf", Filename(""))
}
