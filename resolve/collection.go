package resolve

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/flanksource/commons/logger"

	"github.com/flanksource/specsheet/api"
)

// Collection returns the sibling products that belong to the same collection
// as p, excluding p itself. The listing endpoint has no collection filter, so
// matching happens client-side across the legacy collection field spellings.
// A failed or empty fetch yields an empty list and the gallery pages are
// simply omitted.
func (r *Resolver) Collection(ctx context.Context, p api.Product) []api.CollectionItem {
	if p.Collection == "" {
		return nil
	}

	records, err := r.listProducts(ctx)
	if err != nil {
		logger.Warnf("product listing failed, omitting collection gallery: %v", err)
		return nil
	}

	var items []api.CollectionItem
	for _, raw := range records {
		if !matchesCollection(raw, p.Collection) {
			continue
		}
		sibling := Product(raw)
		if sibling.Code == "" || sibling.Code == p.Code {
			continue
		}
		items = append(items, api.CollectionItem{
			Code:      sibling.Code,
			Category:  sibling.Category,
			Design:    sibling.Design,
			Structure: sibling.Structure,
			Motif:     sibling.Motif,
			WidthCM:   sibling.WidthCM,
			WeightGSM: sibling.WeightGSM,
			Content:   sibling.Content,
			Colors:    sibling.Colors,
			Image:     sibling.HeroImage(),
		})
	}

	logger.Debugf("collection %q: %d sibling(s)", p.Collection, len(items))
	return items
}

func matchesCollection(raw api.RawProduct, collection string) bool {
	for _, key := range collectionAliases {
		if coerceString(raw[key]) == collection {
			return true
		}
	}
	return false
}

func (r *Resolver) listProducts(ctx context.Context) ([]api.RawProduct, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.BaseURL+"/api/products", nil)
	if err != nil {
		return nil, fmt.Errorf("building product listing request: %w", err)
	}

	resp, err := r.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching product listing: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("product listing returned status %d", resp.StatusCode)
	}

	var records []api.RawProduct
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("decoding product listing: %w", err)
	}
	return records, nil
}
