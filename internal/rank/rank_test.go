package rank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(items []Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Name)
	}
	return out
}

func TestEmptyQueryKeepsOrder(t *testing.T) {
	items := []Item{
		{Name: "Cheddar", ID: 1},
		{Name: "Brie", ID: 2},
		{Name: "Gouda", ID: 3},
	}

	ranked, err := Rank(items, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"Cheddar", "Brie", "Gouda"}, names(ranked))
}

func TestExactMatchFirst(t *testing.T) {
	items := []Item{
		{Name: "Widget Case", ID: 1},
		{Name: "Widget", ID: 2},
		{Name: "Sprocket", ID: 3},
	}

	ranked, err := Rank(items, "Widget")
	require.NoError(t, err)
	assert.Equal(t, "Widget", ranked[0].Name)
}

func TestCaseInsensitive(t *testing.T) {
	items := []Item{
		{Name: "Sprocket", ID: 1},
		{Name: "WIDGET", ID: 2},
	}

	ranked, err := Rank(items, "widget")
	require.NoError(t, err)
	assert.Equal(t, "WIDGET", ranked[0].Name)
}

func TestTiesKeepOriginalOrder(t *testing.T) {
	// None of these share a trigram with the query, so every score ties at
	// zero and the sort must not reorder them.
	items := []Item{
		{Name: "Alpha", ID: 1},
		{Name: "Bravo", ID: 2},
		{Name: "Delta", ID: 3},
	}

	ranked, err := Rank(items, "zzzzz")
	require.NoError(t, err)
	assert.Equal(t, []string{"Alpha", "Bravo", "Delta"}, names(ranked))
}

func TestInputIsNotMutated(t *testing.T) {
	items := []Item{
		{Name: "Widget Case", ID: 1},
		{Name: "Widget", ID: 2},
	}

	_, err := Rank(items, "Widget")
	require.NoError(t, err)
	assert.Equal(t, "Widget Case", items[0].Name)
}

func TestNumericQueryRanksByUPC(t *testing.T) {
	items := []Item{
		{Name: "Widget", UPC: "888000000001", ID: 1},
		{Name: "012345 Gadget", UPC: "012345678905", ID: 2},
	}

	ranked, err := RankProducts(items, "012345678905")
	require.NoError(t, err)
	assert.Equal(t, int64(2), ranked[0].ID, "numeric queries are barcode lookups")

	// A textual query goes back to name matching.
	ranked, err = RankProducts(items, "Widget")
	require.NoError(t, err)
	assert.Equal(t, int64(1), ranked[0].ID)
}
