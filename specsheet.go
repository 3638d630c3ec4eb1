// Package specsheet generates printable product specification sheets: a
// title page (hero image, attribute table, rating, QR code) followed by a
// paginated gallery of the product's collection siblings, assembled into a
// single PDF from sparse catalog records and best-effort remote assets.
package specsheet

import (
	"context"
	"fmt"
	"strings"

	"github.com/flanksource/commons/logger"
	"github.com/samber/lo"
	lop "github.com/samber/lo/parallel"
	"golang.org/x/sync/errgroup"

	"github.com/flanksource/specsheet/api"
	"github.com/flanksource/specsheet/fetch"
	"github.com/flanksource/specsheet/pdf"
	"github.com/flanksource/specsheet/resolve"
)

// Options configures one generation request. Everything is optional; absent
// values degrade to resolved or compiled-in data.
type Options struct {
	// BaseURL is the storefront API origin used for company-info and
	// collection lookups.
	BaseURL string
	// TargetURL is the product page URL encoded as the QR code.
	TargetURL string
	// QRPayload overrides TargetURL as the exact QR content.
	QRPayload string
	// LogoURL is the company logo location (raster or SVG).
	LogoURL string
	// Organization selects the preferred company-info entry.
	Organization string
	// CompanyName / Phone / Email override the resolved contact block.
	CompanyName string
	Phone       string
	Email       string
}

// Result is the generated artifact plus its deterministic file name.
type Result struct {
	Filename string
	Pages    int
	Data     []byte
}

// Generate resolves the record, fetches all remote assets concurrently, and
// composes the document. Asset and metadata failures degrade (placeholders,
// defaults, omitted blocks); only composition failures and context
// cancellation surface as errors, and neither yields a partial artifact.
func Generate(ctx context.Context, raw api.RawProduct, opts Options) (*Result, error) {
	product := resolve.Product(raw)
	resolver := resolve.NewResolver(opts.BaseURL)
	client := fetch.NewClient()

	var (
		company  api.Company
		siblings []api.CollectionItem
		hero     *fetch.Asset
		logo     *fetch.Asset
		qrAsset  *fetch.Asset
	)

	// All fetches are independent; each writes its own slot and the group
	// wait is the only synchronization point.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		company = resolver.Company(gctx, opts.Organization)
		return nil
	})
	g.Go(func() error {
		siblings = resolver.Collection(gctx, product)
		return nil
	})
	g.Go(func() error {
		hero = bestEffortImage(gctx, client, product.HeroImage(), "hero image")
		return nil
	})
	g.Go(func() error {
		logo = bestEffortImage(gctx, client, opts.LogoURL, "logo")
		return nil
	})
	g.Go(func() error {
		payload := qrPayload(opts)
		if payload == "" {
			return nil
		}
		var err error
		if qrAsset, err = fetch.QR(payload); err != nil {
			logger.Debugf("skipping QR block: %v", err)
			qrAsset = nil
		}
		return nil
	})
	_ = g.Wait() // fetch goroutines never return errors; they degrade

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("generation aborted: %w", err)
	}

	cardAssets := lop.Map(siblings, func(item api.CollectionItem, _ int) *fetch.Asset {
		return bestEffortImage(ctx, client, item.Image, "card image "+item.Code)
	})
	cards := map[string]*fetch.Asset{}
	for i, item := range siblings {
		cards[item.Code] = cardAssets[i]
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("generation aborted: %w", err)
	}

	applyOverrides(&company, opts)

	doc, err := pdf.Compose(pdf.Inputs{
		Product:  product,
		Company:  company,
		Siblings: siblings,
		Hero:     hero,
		Logo:     logo,
		QR:       qrAsset,
		Cards:    cards,
	})
	if err != nil {
		return nil, err
	}

	return &Result{Filename: doc.Name, Pages: doc.Pages, Data: doc.Data}, nil
}

// bestEffortImage fetches a single image, degrading any failure to the
// explicit no-image state. One attempt, no retries.
func bestEffortImage(ctx context.Context, client *fetch.Client, url, what string) *fetch.Asset {
	if url == "" {
		return nil
	}
	asset, err := client.Image(ctx, url)
	if err != nil {
		logger.Debugf("using placeholder for %s: %v", what, err)
		return nil
	}
	return asset
}

// qrPayload picks the QR content: explicit payload first, else the target
// URL normalized with an https scheme.
func qrPayload(opts Options) string {
	payload := lo.CoalesceOrEmpty(strings.TrimSpace(opts.QRPayload), strings.TrimSpace(opts.TargetURL))
	if payload == "" {
		return ""
	}
	if !strings.Contains(payload, "://") {
		payload = "https://" + payload
	}
	return payload
}

func applyOverrides(company *api.Company, opts Options) {
	if opts.CompanyName != "" {
		company.Name = opts.CompanyName
	}
	if opts.Phone != "" {
		company.Phone = opts.Phone
	}
	if opts.Email != "" {
		company.Email = opts.Email
	}
}
