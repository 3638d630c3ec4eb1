// Package fetch retrieves and decodes the remote assets a specification sheet
// is assembled from: product photography, the company logo, and the generated
// QR code. Every fetch is a single best-effort attempt; failures are returned
// as errors for the caller to degrade into a placeholder, never retried.
package fetch

import (
	"bytes"
	"context"
	"fmt"
	"hash/fnv"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"net/http"
	"strings"
	"time"

	_ "image/gif"

	"github.com/disintegration/imaging"
	"github.com/flanksource/commons/logger"

	_ "golang.org/x/image/webp"
)

// Asset is a decoded raster ready for embedding: the encoded bytes, the
// format gofpdf should register them as, and the native pixel dimensions.
// An Asset is owned by whichever step fetched it and is never mutated after
// decode. A nil *Asset is the explicit "no image" state.
type Asset struct {
	Name   string
	Bytes  []byte
	Format string // "png", "jpg" or "gif"
	Width  int
	Height int
}

const (
	maxBodyBytes = 24 << 20
	// Rasters larger than this on either axis are downscaled before
	// embedding; spec sheets do not need print-resolution originals.
	maxRasterPx = 1600
)

// Client fetches remote assets over HTTP.
type Client struct {
	HTTP *http.Client
}

// NewClient returns a Client with a bounded request timeout.
func NewClient() *Client {
	return &Client{HTTP: &http.Client{Timeout: 20 * time.Second}}
}

// Image performs a GET for url and decodes the response into an Asset.
// Any failure (network, non-2xx, decode) is returned as an error; the asset
// is nil in that case. SVG responses are rasterized, WebP is transcoded to
// PNG, and oversized rasters are downscaled.
func (c *Client) Image(ctx context.Context, url string) (*Asset, error) {
	if strings.TrimSpace(url) == "" {
		return nil, fmt.Errorf("empty image url")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid image url %q: %w", url, err)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %q: %w", url, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetching %q: unexpected status %d", url, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", url, err)
	}

	if isSVG(resp.Header.Get("Content-Type"), url, data) {
		return RasterizeSVG(data, maxRasterPx)
	}

	asset, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decoding %q: %w", url, err)
	}
	logger.Debugf("fetched image %s (%dx%d %s, %d bytes)", url, asset.Width, asset.Height, asset.Format, len(asset.Bytes))
	return asset, nil
}

// Decode turns encoded image bytes into an Asset, transcoding formats gofpdf
// cannot embed and downscaling oversized rasters.
func Decode(data []byte) (*Asset, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("unrecognised image data: %w", err)
	}

	needsTranscode := format != "png" && format != "jpeg" && format != "gif"
	needsResize := cfg.Width > maxRasterPx || cfg.Height > maxRasterPx

	if needsTranscode || needsResize {
		img, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decoding image: %w", err)
		}
		if needsResize {
			img = imaging.Fit(img, maxRasterPx, maxRasterPx, imaging.Lanczos)
		}
		return encodeAsset(img, format)
	}

	return &Asset{
		Name:   assetName(data),
		Bytes:  data,
		Format: pdfFormat(format),
		Width:  cfg.Width,
		Height: cfg.Height,
	}, nil
}

// encodeAsset re-encodes a decoded raster. Photographic sources (jpeg, webp)
// become JPEG, everything else PNG to keep alpha.
func encodeAsset(img image.Image, srcFormat string) (*Asset, error) {
	var buf bytes.Buffer
	format := "png"
	switch srcFormat {
	case "jpeg", "webp":
		format = "jpg"
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 88}); err != nil {
			return nil, fmt.Errorf("encoding jpeg: %w", err)
		}
	default:
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("encoding png: %w", err)
		}
	}

	b := img.Bounds()
	data := buf.Bytes()
	return &Asset{
		Name:   assetName(data),
		Bytes:  data,
		Format: format,
		Width:  b.Dx(),
		Height: b.Dy(),
	}, nil
}

func pdfFormat(format string) string {
	if format == "jpeg" {
		return "jpg"
	}
	return format
}

func isSVG(contentType, url string, data []byte) bool {
	if strings.Contains(contentType, "image/svg") {
		return true
	}
	if strings.HasSuffix(strings.ToLower(strings.SplitN(url, "?", 2)[0]), ".svg") {
		return true
	}
	head := bytes.TrimSpace(data)
	if len(head) > 256 {
		head = head[:256]
	}
	return bytes.Contains(head, []byte("<svg"))
}

// assetName derives a stable registration key from the content so the same
// bytes register once per document regardless of URL.
func assetName(data []byte) string {
	h := fnv.New64a()
	h.Write(data) //nolint:errcheck
	return fmt.Sprintf("asset-%x", h.Sum64())
}
