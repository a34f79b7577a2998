package pagination

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	q := Query{}.Normalize()
	require.Equal(t, DefaultLimit, q.Limit)
	require.Equal(t, 1, q.Page)

	q = Query{Limit: 1000, Page: 3}.Normalize()
	require.Equal(t, MaxLimit, q.Limit)
	require.Equal(t, 200, q.Offset())
}

func TestSlice(t *testing.T) {
	all := []int{1, 2, 3, 4, 5}

	page := Slice(all, Query{Limit: 2, Page: 2})
	require.Equal(t, []int{3, 4}, page.Items)
	require.Equal(t, int64(5), page.Total)

	page = Slice(all, Query{Limit: 2, Page: 9})
	require.Empty(t, page.Items)
	require.Equal(t, int64(5), page.Total)
}

func TestMap(t *testing.T) {
	page := Map(Page[int]{Items: []int{1, 2}, Total: 4, Page: 1, Limit: 2}, func(v int) int { return v * 10 })
	require.Equal(t, []int{10, 20}, page.Items)
	require.Equal(t, int64(4), page.Total)
}
