// Package rank orders name lists by relevance to a free-text query. Scoring
// is a case-insensitive trigram Sørensen–Dice similarity; the sort is stable
// and descending, so ties (including the all-zero scores of an empty query)
// keep their original relative order.
package rank

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// Item is one rankable record. UPC may be empty for entity types that have
// no code field.
type Item struct {
	Name string
	UPC  string
	ID   int64
}

func newMetric() *metrics.SorensenDice {
	m := metrics.NewSorensenDice()
	m.CaseSensitive = false
	m.NgramSize = 3
	return m
}

// Rank reorders items by similarity of Name to query. An empty query leaves
// the relative order untouched.
func Rank(items []Item, query string) ([]Item, error) {
	return rankBy(items, query, func(it Item) string { return it.Name })
}

// RankProducts behaves like Rank, except that a query that parses as a
// number is treated as a barcode lookup and scored against UPC instead.
func RankProducts(items []Item, query string) ([]Item, error) {
	if _, err := strconv.ParseFloat(query, 64); err == nil {
		return rankBy(items, query, func(it Item) string { return it.UPC })
	}
	return rankBy(items, query, func(it Item) string { return it.Name })
}

func rankBy(items []Item, query string, key func(Item) string) ([]Item, error) {
	ranked := make([]Item, len(items))
	copy(ranked, items)
	if query == "" {
		return ranked, nil
	}

	metric := newMetric()
	type scored struct {
		item  Item
		score float64
	}
	rows := make([]scored, len(ranked))
	for i, it := range ranked {
		s := strutil.Similarity(key(it), query, metric)
		if math.IsNaN(s) {
			// A NaN similarity is a programming error, not a rankable score.
			return nil, fmt.Errorf("rank: similarity of %q against %q is NaN", key(it), query)
		}
		rows[i] = scored{item: it, score: s}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].score > rows[j].score
	})
	for i, row := range rows {
		ranked[i] = row.item
	}
	return ranked, nil
}
