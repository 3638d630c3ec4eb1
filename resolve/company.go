package resolve

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/flanksource/commons/logger"
	"github.com/samber/lo"

	"github.com/flanksource/specsheet/api"
)

// Company resolves the contact block from the company-info endpoint. Among
// non-deleted entries it prefers an exact organization match, otherwise the
// highest version. Any failure or an empty listing falls back to the
// compiled-in defaults; generation never fails on company metadata.
func (r *Resolver) Company(ctx context.Context, organization string) api.Company {
	entries, err := r.companyInfo(ctx)
	if err != nil {
		logger.Warnf("company-info lookup failed, using built-in contact block: %v", err)
		return api.DefaultCompany()
	}

	entries = lo.Filter(entries, func(c api.Company, _ int) bool { return !c.Deleted })
	if len(entries) == 0 {
		logger.Debugf("company-info returned no usable entries, using built-in contact block")
		return api.DefaultCompany()
	}

	if organization != "" {
		for _, c := range entries {
			if strings.EqualFold(strings.TrimSpace(c.Organization), strings.TrimSpace(organization)) {
				return c
			}
		}
	}

	best := lo.MaxBy(entries, func(a, b api.Company) bool { return a.Version > b.Version })
	return best
}

func (r *Resolver) companyInfo(ctx context.Context) ([]api.Company, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.BaseURL+"/api/company-info", nil)
	if err != nil {
		return nil, fmt.Errorf("building company-info request: %w", err)
	}

	resp, err := r.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching company-info: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("company-info returned status %d", resp.StatusCode)
	}

	var entries []api.Company
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decoding company-info response: %w", err)
	}
	return entries, nil
}
