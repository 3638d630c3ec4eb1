// Package resolve turns sparse upstream records into the canonical views the
// composer consumes: the product itself, the company contact block, and the
// list of collection siblings. Remote lookups are best-effort; every failure
// degrades to compiled-in defaults or an empty list.
package resolve

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/flanksource/specsheet/api"
)

// Resolver answers catalog lookups against the storefront API.
type Resolver struct {
	BaseURL string
	HTTP    *http.Client
}

// NewResolver returns a Resolver for the given API origin.
func NewResolver(baseURL string) *Resolver {
	return &Resolver{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: 15 * time.Second},
	}
}

// Product builds the canonical view of a raw record. Absent titles and
// taglines are synthesized from the attributes that are present.
func Product(raw api.RawProduct) api.Product {
	p := api.Product{
		Code:        firstString(raw, productAliases["code"]),
		Title:       firstString(raw, productAliases["title"]),
		Tagline:     firstString(raw, productAliases["tagline"]),
		Description: firstString(raw, productAliases["description"]),
		Category:    firstString(raw, productAliases["category"]),
		Supply:      firstString(raw, productAliases["supply"]),
		Content:     stringList(raw, productAliases["content"]),
		WidthCM:     firstString(raw, productAliases["width_cm"]),
		WidthInch:   firstString(raw, productAliases["width_inch"]),
		WeightGSM:   firstString(raw, productAliases["weight_gsm"]),
		WeightOz:    firstString(raw, productAliases["weight_oz"]),
		Design:      firstString(raw, productAliases["design"]),
		Structure:   firstString(raw, productAliases["structure"]),
		Colors:      stringList(raw, productAliases["colors"]),
		Motif:       firstString(raw, productAliases["motif"]),
		Finish:      stringList(raw, productAliases["finish"]),
		MOQ:         firstString(raw, productAliases["moq"]),
		MOQUnit:     firstString(raw, productAliases["moq_unit"]),
		Rating:      firstNumber(raw, productAliases["rating"]),
		Collection:  firstString(raw, productAliases["collection"]),
		Images:      imageList(raw),
	}

	if p.Title == "" {
		p.Title = SynthesizeTitle(p)
	}
	if p.Tagline == "" {
		p.Tagline = SynthesizeTagline(p)
	}
	return p
}

// SynthesizeTitle builds a display title from the attributes present, in a
// fixed order, falling back to the product code and finally a generic label.
func SynthesizeTitle(p api.Product) string {
	parts := []string{
		p.Design,
		strings.Join(p.Colors, " & "),
		strings.Join(p.Content, "/"),
		p.Structure,
		p.WidthDisplay(),
		p.WeightDisplay(),
		p.Supply,
	}
	parts = lo.Filter(parts, func(s string, _ int) bool { return s != "" })
	if len(parts) > 0 {
		return strings.Join(parts, " ")
	}
	if p.Code != "" {
		return p.Code
	}
	return "Fabric Specification"
}

// SynthesizeTagline builds a tagline from the secondary attributes. An empty
// result is fine; the composer then skips the tagline block.
func SynthesizeTagline(p api.Product) string {
	parts := []string{
		p.Category,
		p.Motif,
		strings.Join(p.Finish, ", "),
		p.MOQDisplay(),
	}
	parts = lo.Filter(parts, func(s string, _ int) bool { return s != "" })
	return strings.Join(parts, " · ")
}

// firstString returns the first non-empty value among keys, coerced to a
// trimmed string. Numbers are formatted without a trailing ".0" so legacy
// numeric widths read naturally.
func firstString(raw api.RawProduct, keys []string) string {
	for _, key := range keys {
		if s := coerceString(raw[key]); s != "" {
			return s
		}
	}
	return ""
}

// stringList returns the first non-empty list among keys. Scalars become a
// single-element list; comma-separated strings are split.
func stringList(raw api.RawProduct, keys []string) []string {
	for _, key := range keys {
		items := coerceList(raw[key])
		if len(items) > 0 {
			return items
		}
	}
	return nil
}

// firstNumber returns the first parseable numeric value among keys, or nil.
func firstNumber(raw api.RawProduct, keys []string) *float64 {
	for _, key := range keys {
		switch v := raw[key].(type) {
		case float64:
			return lo.ToPtr(v)
		case float32:
			return lo.ToPtr(float64(v))
		case int:
			return lo.ToPtr(float64(v))
		case int64:
			return lo.ToPtr(float64(v))
		case string:
			if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
				return lo.ToPtr(f)
			}
		}
	}
	return nil
}

func imageList(raw api.RawProduct) []string {
	urls := coerceList(raw["images"])
	for _, key := range imageAliases {
		if s := coerceString(raw[key]); s != "" {
			urls = append(urls, s)
		}
	}
	urls = lo.Uniq(urls)
	if len(urls) > maxProductImages {
		urls = urls[:maxProductImages]
	}
	return urls
}

func coerceString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(s)
	case float64:
		if s == float64(int64(s)) {
			return strconv.FormatInt(int64(s), 10)
		}
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int:
		return strconv.Itoa(s)
	case int64:
		return strconv.FormatInt(s, 10)
	case bool:
		return strconv.FormatBool(s)
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", s))
	}
}

func coerceList(v any) []string {
	var items []string
	switch list := v.(type) {
	case []string:
		items = list
	case []any:
		for _, e := range list {
			items = append(items, coerceString(e))
		}
	case string:
		items = strings.Split(list, ",")
	}
	items = lo.Map(items, func(s string, _ int) string { return strings.TrimSpace(s) })
	return lo.Filter(items, func(s string, _ int) bool { return s != "" })
}
