package pdf

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flanksource/specsheet/api"
)

func siblings(n int) []api.CollectionItem {
	items := make([]api.CollectionItem, n)
	for i := range items {
		items[i] = api.CollectionItem{Code: fmt.Sprintf("LF-%03d", i)}
	}
	return items
}

func TestPaginate(t *testing.T) {
	const capacity = 4

	for n := 0; n <= 13; n++ {
		t.Run(fmt.Sprintf("%d items", n), func(t *testing.T) {
			pages := Paginate(siblings(n), capacity)

			wantPages := (n + capacity - 1) / capacity
			require.Len(t, pages, wantPages)

			var flat []api.CollectionItem
			for i, page := range pages {
				remaining := n - i*capacity
				wantCards := capacity
				if remaining < capacity {
					wantCards = remaining
				}
				assert.Len(t, page, wantCards, "page %d", i)
				flat = append(flat, page...)
			}
			assert.Equal(t, siblings(n), flat, "union of pages preserves order")
		})
	}
}

func TestPaginateDegenerateCapacity(t *testing.T) {
	assert.Nil(t, Paginate(siblings(3), 0))
	assert.Nil(t, Paginate(nil, 4))
}

func TestGalleryCapacity(t *testing.T) {
	// Two columns, two rows with the default card height.
	assert.Equal(t, 4, DefaultTheme().GalleryCapacity())
}

func TestCardRowHeights(t *testing.T) {
	t.Run("nominal rows with tall remainder", func(t *testing.T) {
		rows := CardRowHeights(44)
		assert.Equal(t, [4]float64{10, 10, 10, 14}, rows)
	})

	t.Run("short space divides equally", func(t *testing.T) {
		rows := CardRowHeights(32)
		for _, h := range rows {
			assert.InDelta(t, 8.0, h, 1e-9)
		}
	})

	t.Run("rows always sum to the total", func(t *testing.T) {
		for _, total := range []float64{20, 28, 36.6, 44, 52.4, 80} {
			rows := CardRowHeights(total)
			sum := rows[0] + rows[1] + rows[2] + rows[3]
			assert.InDelta(t, total, sum, 1e-9, "total %v", total)
			assert.Greater(t, rows[3], 0.0, "last row is never clipped or negative")
		}
	})
}
