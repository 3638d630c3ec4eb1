package resolve

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flanksource/specsheet/api"
)

func productServer(t *testing.T, body string) *Resolver {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/products" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(body)) //nolint:errcheck
	}))
	t.Cleanup(srv.Close)
	return NewResolver(srv.URL)
}

func TestCollectionMatchesLegacyFieldVariants(t *testing.T) {
	r := productServer(t, `[
		{"code": "LF-1", "collection": "coastal-24", "design": "Twill"},
		{"code": "LF-2", "collectionId": "coastal-24"},
		{"code": "LF-3", "groupCode": "coastal-24"},
		{"code": "LF-4", "collection": "alpine-24"},
		{"code": "SELF", "collection": "coastal-24"}
	]`)

	self := api.Product{Code: "SELF", Collection: "coastal-24"}
	items := r.Collection(context.Background(), self)

	codes := lo.Map(items, func(i api.CollectionItem, _ int) string { return i.Code })
	assert.Equal(t, []string{"LF-1", "LF-2", "LF-3"}, codes,
		"all legacy collection spellings match; the product itself and other collections are excluded")
	assert.Equal(t, "Twill", items[0].Design, "sibling attributes resolved through the alias tables")
}

func TestCollectionEmptyCases(t *testing.T) {
	t.Run("no collection reference", func(t *testing.T) {
		r := productServer(t, `[]`)
		assert.Empty(t, r.Collection(context.Background(), api.Product{Code: "X"}))
	})

	t.Run("fetch failure yields empty list", func(t *testing.T) {
		r := NewResolver("http://127.0.0.1:1")
		p := api.Product{Code: "X", Collection: "coastal-24"}
		assert.Empty(t, r.Collection(context.Background(), p))
	})

	t.Run("no matches", func(t *testing.T) {
		r := productServer(t, `[{"code": "LF-1", "collection": "other"}]`)
		p := api.Product{Code: "X", Collection: "coastal-24"}
		assert.Empty(t, r.Collection(context.Background(), p))
	})

	t.Run("siblings without a code are dropped", func(t *testing.T) {
		r := productServer(t, `[{"collection": "coastal-24", "design": "Twill"}]`)
		p := api.Product{Code: "X", Collection: "coastal-24"}
		assert.Empty(t, r.Collection(context.Background(), p))
	})
}

func TestCollectionCardImage(t *testing.T) {
	r := productServer(t, `[
		{"code": "LF-1", "collection": "c", "image1": "https://cdn.example.com/a.jpg"}
	]`)
	items := r.Collection(context.Background(), api.Product{Code: "X", Collection: "c"})
	require.Len(t, items, 1)
	assert.Equal(t, "https://cdn.example.com/a.jpg", items[0].Image)
}
