package service

import (
	"sort"
	"strings"
)

type SortKey string

const (
	SortNone    SortKey = "none"
	SortHighest SortKey = "highest"
	SortLowest  SortKey = "lowest"
)

// ParseSortKey normalizes a query-string sort value; anything unrecognized
// means no sorting.
func ParseSortKey(raw string) SortKey {
	switch SortKey(raw) {
	case SortHighest:
		return SortHighest
	case SortLowest:
		return SortLowest
	default:
		return SortNone
	}
}

// Criteria drives FilterAndSort. An empty or whitespace-only Search matches
// everything. Category semantics belong to the entry type: user entries
// interpret it as a ban status, vehicle entries as a brand.
type Criteria struct {
	Search   string
	Category string
	Sort     SortKey
}

// Entry is one row of a filterable, sortable list view.
type Entry interface {
	// SearchKey returns the text the free-text filter matches against,
	// built from the entry's display and contact fields in priority order.
	SearchKey() string
	// MatchesCategory reports whether the entry passes the category filter.
	MatchesCategory(category string) bool
	// RatingValue returns the aggregated rating and whether it is usable
	// for ordering.
	RatingValue() (float64, bool)
}

// FilterAndSort applies the category filter, then the case-insensitive
// free-text filter, then orders the survivors by aggregated rating. The
// input slice is never modified; the result is always a fresh slice.
// Entries without a usable rating sort to the end in either direction.
func FilterAndSort[T Entry](items []T, c Criteria) []T {
	search := strings.ToLower(strings.TrimSpace(c.Search))

	out := make([]T, 0, len(items))
	for _, item := range items {
		if !item.MatchesCategory(c.Category) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(item.SearchKey()), search) {
			continue
		}
		out = append(out, item)
	}

	if c.Sort != SortHighest && c.Sort != SortLowest {
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		ri, iOK := out[i].RatingValue()
		rj, jOK := out[j].RatingValue()
		if iOK != jOK {
			return iOK
		}
		if !iOK {
			return false
		}
		if c.Sort == SortHighest {
			return ri > rj
		}
		return ri < rj
	})

	return out
}
