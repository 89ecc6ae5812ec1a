package group

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryan-rushton/omni/internal/catalog"
	"github.com/ryan-rushton/omni/internal/search"
)

var tools = []catalog.Tool{
	{ID: "a", Category: catalog.PDF, SubCategory: "Merge"},
	{ID: "b", Category: catalog.Text},
	{ID: "c", Category: catalog.PDF, SubCategory: "Split"},
	{ID: "d", Category: catalog.Text, SubCategory: "Merge"},
	{ID: "e", Category: catalog.PDF},
}

func keys[K comparable](buckets []Bucket[K]) []K {
	var out []K
	for _, b := range buckets {
		out = append(out, b.Key)
	}
	return out
}

func bucketIDs[K comparable](b Bucket[K]) []string {
	var out []string
	for _, t := range b.Tools {
		out = append(out, t.ID)
	}
	return out
}

func TestByCategory_FirstSeenOrder(t *testing.T) {
	got := ByCategory(tools)
	require.Len(t, got, 2)
	assert.Equal(t, []catalog.Category{catalog.PDF, catalog.Text}, keys(got))
	assert.Equal(t, []string{"a", "c", "e"}, bucketIDs(got[0]))
	assert.Equal(t, []string{"b", "d"}, bucketIDs(got[1]))
}

func TestBySubCategory_GeneralUtilitiesFallback(t *testing.T) {
	got := BySubCategory(tools)
	assert.Equal(t, []string{"Merge", GeneralUtilities, "Split"}, keys(got))
	assert.Equal(t, []string{"a", "d"}, bucketIDs(got[0]))
	assert.Equal(t, []string{"b", "e"}, bucketIDs(got[1]))
	assert.Equal(t, []string{"c"}, bucketIDs(got[2]))
}

func TestEmptyInput(t *testing.T) {
	assert.Empty(t, ByCategory(nil))
	assert.Empty(t, BySubCategory(nil))
	assert.Empty(t, Flatten[string](nil))
}

func TestPartition_EveryToolExactlyOnce(t *testing.T) {
	c, err := catalog.Builtin()
	require.NoError(t, err)

	inputs := [][]catalog.Tool{
		c.All(),
		search.Search(c, "pdf"),
		slices.Collect(c.FindByCategory(catalog.Calculator)),
	}
	for _, in := range inputs {
		byCat := Flatten(ByCategory(in))
		bySub := Flatten(BySubCategory(in))
		assert.ElementsMatch(t, in, byCat)
		assert.ElementsMatch(t, in, bySub)
	}
}

func TestBySubCategory_CategoryPreservesCatalogOrderWithinBucket(t *testing.T) {
	c, err := catalog.Builtin()
	require.NoError(t, err)

	in := slices.Collect(c.FindByCategory(catalog.Text))
	pos := map[string]int{}
	for i, tool := range in {
		pos[tool.ID] = i
	}
	for _, b := range BySubCategory(in) {
		for i := 1; i < len(b.Tools); i++ {
			assert.Less(t, pos[b.Tools[i-1].ID], pos[b.Tools[i].ID])
		}
	}
}
