package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }
func intPtr(n int) *int    { return &n }

func ids(items []CatalogItem) []int64 {
	out := make([]int64, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func TestActiveDropsOnlyExplicitlyInactive(t *testing.T) {
	t.Parallel()

	items := []CatalogItem{
		{ID: 1},
		{ID: 2, IsActive: boolPtr(false)},
		{ID: 3, IsActive: boolPtr(true)},
	}
	require.Equal(t, []int64{1, 3}, ids(Active(items)))
}

func TestPartitionFreeAndPaid(t *testing.T) {
	t.Parallel()

	items := []CatalogItem{
		{ID: 10, IsFree: boolPtr(true)},
		{ID: 11, IsFree: boolPtr(false)},
		{ID: 12},
	}
	free, paid := Partition(items)
	require.Equal(t, []int64{10}, ids(free))
	require.Equal(t, []int64{11, 12}, ids(paid))
}

func TestPartitionSkipsInactive(t *testing.T) {
	t.Parallel()

	items := []CatalogItem{
		{ID: 1, IsFree: boolPtr(true), IsActive: boolPtr(false)},
		{ID: 2, IsActive: boolPtr(false)},
	}
	free, paid := Partition(items)
	require.Empty(t, free)
	require.Empty(t, paid)
	require.NotNil(t, free, "empty sets should be non-nil so they encode as []")
}

func TestHeroRankingSortOrderThenID(t *testing.T) {
	t.Parallel()

	items := []CatalogItem{
		{ID: 1, SortOrder: intPtr(2)},
		{ID: 2, SortOrder: intPtr(2)},
		{ID: 3, SortOrder: intPtr(5)},
	}
	require.Equal(t, []int64{3, 2, 1}, ids(HeroRanking(items)))
	require.Equal(t, []int64{1, 2, 3}, ids(items), "input must not be reordered")
}

func TestHeroRankingTakesTopFourPaid(t *testing.T) {
	t.Parallel()

	items := []CatalogItem{
		{ID: 1},
		{ID: 2, IsFree: boolPtr(true), SortOrder: intPtr(100)},
		{ID: 3, SortOrder: intPtr(1)},
		{ID: 4},
		{ID: 5, IsActive: boolPtr(false), SortOrder: intPtr(50)},
		{ID: 6},
		{ID: 7},
	}
	require.Equal(t, []int64{3, 7, 6, 4}, ids(HeroRanking(items)))
}

func TestHeroRankingEmpty(t *testing.T) {
	t.Parallel()

	require.Empty(t, HeroRanking(nil))
	require.Empty(t, HeroRanking([]CatalogItem{{ID: 1, IsFree: boolPtr(true)}}))
}

func TestImagesSkipsBlankEntries(t *testing.T) {
	t.Parallel()

	it := CatalogItem{Image: "/a.png", Gallery: []string{"", "/b.png"}}
	require.Equal(t, []string{"/a.png", "/b.png"}, it.Images())
	require.Empty(t, CatalogItem{}.Images())
}
