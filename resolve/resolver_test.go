package resolve

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flanksource/specsheet/api"
)

func TestProductAliasPriority(t *testing.T) {
	p := Product(api.RawProduct{
		"productTitle": "Legacy Title",
		"title":        "Canonical Title",
		"styleCode":    "ST-7",
		"sku":          "SKU-7",
	})

	assert.Equal(t, "Canonical Title", p.Title, "earlier alias wins")
	assert.Equal(t, "ST-7", p.Code, "styleCode outranks sku")
}

func TestProductCoercion(t *testing.T) {
	p := Product(api.RawProduct{
		"code":     "LF-1",
		"widthCm":  float64(148),
		"gsm":      "240",
		"colors":   []any{"Indigo", " Ecru ", ""},
		"finishes": "Sanforized, Mercerized",
		"rating":   "4.5",
	})

	assert.Equal(t, "148", p.WidthCM, "numeric width renders without decimal point")
	assert.Equal(t, "240", p.WeightGSM)
	assert.Equal(t, []string{"Indigo", "Ecru"}, p.Colors, "list entries trimmed, empties dropped")
	assert.Equal(t, []string{"Sanforized", "Mercerized"}, p.Finish, "comma strings split")
	require.NotNil(t, p.Rating)
	assert.InDelta(t, 4.5, *p.Rating, 1e-9)
}

func TestProductRatingAbsent(t *testing.T) {
	p := Product(api.RawProduct{"code": "LF-2", "rating": "not-a-number"})
	assert.Nil(t, p.Rating, "unparseable rating suppresses stars entirely")
}

func TestProductImages(t *testing.T) {
	t.Run("numbered legacy slots", func(t *testing.T) {
		p := Product(api.RawProduct{
			"image1": "https://cdn.example.com/a.jpg",
			"image2": "https://cdn.example.com/b.jpg",
		})
		assert.Equal(t, []string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"}, p.Images)
	})

	t.Run("capped and deduplicated", func(t *testing.T) {
		p := Product(api.RawProduct{
			"images": []any{"u1", "u2", "u1", "u3", "u4", "u5"},
		})
		assert.Equal(t, []string{"u1", "u2", "u3", "u4"}, p.Images)
	})

	t.Run("hero is the first image", func(t *testing.T) {
		p := Product(api.RawProduct{"image": "hero.jpg"})
		assert.Equal(t, "hero.jpg", p.HeroImage())
		assert.Empty(t, api.Product{}.HeroImage())
	})
}

func TestSynthesizeTitle(t *testing.T) {
	t.Run("attribute order", func(t *testing.T) {
		p := Product(api.RawProduct{
			"design":  "Twill",
			"color":   []any{"Indigo"},
			"content": []any{"Cotton"},
		})

		title := p.Title
		twill := strings.Index(title, "Twill")
		indigo := strings.Index(title, "Indigo")
		cotton := strings.Index(title, "Cotton")
		require.GreaterOrEqual(t, twill, 0)
		require.Greater(t, indigo, twill, "design precedes color")
		require.Greater(t, cotton, indigo, "color precedes content")
	})

	t.Run("falls back to code", func(t *testing.T) {
		p := Product(api.RawProduct{"code": "LF-77"})
		assert.Equal(t, "LF-77", p.Title)
	})

	t.Run("falls back to generic label", func(t *testing.T) {
		p := Product(api.RawProduct{})
		assert.Equal(t, "Fabric Specification", p.Title)
	})

	t.Run("explicit title wins", func(t *testing.T) {
		p := Product(api.RawProduct{"title": "Named", "design": "Twill"})
		assert.Equal(t, "Named", p.Title)
	})
}

func TestSynthesizeTagline(t *testing.T) {
	p := Product(api.RawProduct{
		"category": "Suiting",
		"motif":    "Chevron",
		"moq":      "50",
		"moqUnit":  "m",
	})
	assert.Equal(t, "Suiting · Chevron · 50 m", p.Tagline)

	empty := Product(api.RawProduct{"title": "T"})
	assert.Empty(t, empty.Tagline, "nothing to synthesize leaves the tagline empty")
}

func TestDisplayHelpers(t *testing.T) {
	p := api.Product{WidthCM: "148", WidthInch: "58", WeightGSM: "240"}
	assert.Equal(t, `148 cm / 58"`, p.WidthDisplay())
	assert.Equal(t, "240 gsm", p.WeightDisplay())
	assert.Empty(t, api.Product{}.WidthDisplay())
}
