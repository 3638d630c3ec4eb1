package fetch

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func imageServer(t *testing.T, status int, contentType string, body []byte) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if contentType != "" {
			w.Header().Set("Content-Type", contentType)
		}
		w.WriteHeader(status)
		w.Write(body) //nolint:errcheck
	}))
	t.Cleanup(srv.Close)
	return srv.URL
}

func TestImageFetch(t *testing.T) {
	ctx := context.Background()
	client := NewClient()

	t.Run("decodes png dimensions", func(t *testing.T) {
		url := imageServer(t, http.StatusOK, "image/png", encodePNG(t, 64, 48))
		asset, err := client.Image(ctx, url)
		require.NoError(t, err)
		assert.Equal(t, 64, asset.Width)
		assert.Equal(t, 48, asset.Height)
		assert.Equal(t, "png", asset.Format)
		assert.NotEmpty(t, asset.Name)
	})

	t.Run("non-2xx is an error not a panic", func(t *testing.T) {
		url := imageServer(t, http.StatusNotFound, "", nil)
		asset, err := client.Image(ctx, url)
		assert.Error(t, err)
		assert.Nil(t, asset)
	})

	t.Run("undecodable body is an error", func(t *testing.T) {
		url := imageServer(t, http.StatusOK, "image/png", []byte("not an image"))
		asset, err := client.Image(ctx, url)
		assert.Error(t, err)
		assert.Nil(t, asset)
	})

	t.Run("empty url is an error", func(t *testing.T) {
		_, err := client.Image(ctx, "")
		assert.Error(t, err)
	})

	t.Run("network failure is an error", func(t *testing.T) {
		_, err := client.Image(ctx, "http://127.0.0.1:1/x.png")
		assert.Error(t, err)
	})

	t.Run("oversized raster is downscaled", func(t *testing.T) {
		url := imageServer(t, http.StatusOK, "image/png", encodePNG(t, 2400, 1200))
		asset, err := client.Image(ctx, url)
		require.NoError(t, err)
		assert.LessOrEqual(t, asset.Width, maxRasterPx)
		assert.LessOrEqual(t, asset.Height, maxRasterPx)
		assert.InDelta(t, 2.0, float64(asset.Width)/float64(asset.Height), 0.01,
			"aspect ratio preserved when downscaling")
	})
}

func TestDecodeStableName(t *testing.T) {
	data := encodePNG(t, 8, 8)
	a, err := Decode(data)
	require.NoError(t, err)
	b, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, a.Name, b.Name, "identical bytes register under one name")
}

func TestRasterizeSVG(t *testing.T) {
	svg := []byte(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 20 10">
		<rect x="0" y="0" width="20" height="10" fill="#b38f2c"/>
	</svg>`)

	asset, err := RasterizeSVG(svg, 200)
	require.NoError(t, err)
	assert.Equal(t, "png", asset.Format)
	assert.Equal(t, 200, asset.Width, "longer axis scales to the target")
	assert.Equal(t, 100, asset.Height)

	_, err = RasterizeSVG([]byte("<not svg"), 100)
	assert.Error(t, err)
}

func TestSVGDetection(t *testing.T) {
	assert.True(t, isSVG("image/svg+xml", "", nil))
	assert.True(t, isSVG("", "https://cdn.example.com/logo.svg?v=2", nil))
	assert.True(t, isSVG("", "", []byte(`<svg viewBox="0 0 1 1"/>`)))
	assert.False(t, isSVG("image/png", "https://cdn.example.com/logo.png", []byte{0x89, 'P', 'N', 'G'}))
}
