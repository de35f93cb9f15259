package search

import (
	"sort"

	"github.com/Emacore17/adottaungatto-it-sub001/listings"
)

const (
	DefaultLimit = 12
	MaxLimit     = 50
)

type ranked struct {
	listing listings.Listing
	score   int
}

// SortListings orders ls in place. Every order ends with publishedAt desc
// then id desc, so the result is total and pages are stable across calls.
func SortListings(ls []listings.Listing, s Sort, m *Matcher) {
	rs := make([]ranked, len(ls))
	for i, l := range ls {
		rs[i] = ranked{listing: l}
		if s == SortRelevance || s == "" {
			rs[i].score = m.Relevance(l)
		}
	}

	sort.SliceStable(rs, func(i, j int) bool {
		return compare(rs[i], rs[j], s) < 0
	})

	for i := range rs {
		ls[i] = rs[i].listing
	}
}

func compare(a, b ranked, s Sort) int {
	switch s {
	case SortPriceAsc:
		if c := comparePrice(a.listing.PriceAmount, b.listing.PriceAmount, false); c != 0 {
			return c
		}
	case SortPriceDesc:
		if c := comparePrice(a.listing.PriceAmount, b.listing.PriceAmount, true); c != 0 {
			return c
		}
	case SortNewest:
	default:
		if a.score != b.score {
			if a.score > b.score {
				return -1
			}
			return 1
		}
	}
	return compareNewest(a.listing, b.listing)
}

// comparePrice puts unknown prices after every price when ascending and
// before every price when descending.
func comparePrice(a, b *float64, desc bool) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		if desc {
			return -1
		}
		return 1
	case b == nil:
		if desc {
			return 1
		}
		return -1
	case *a == *b:
		return 0
	case *a < *b:
		if desc {
			return 1
		}
		return -1
	}
	if desc {
		return -1
	}
	return 1
}

func compareNewest(a, b listings.Listing) int {
	if !a.PublishedAt.Equal(b.PublishedAt) {
		if a.PublishedAt.After(b.PublishedAt) {
			return -1
		}
		return 1
	}
	switch {
	case a.ID > b.ID:
		return -1
	case a.ID < b.ID:
		return 1
	}
	return 0
}

// ClampLimit keeps limit in [1, MaxLimit].
func ClampLimit(limit int) int {
	if limit < 1 {
		return 1
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

func ClampOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}

// Paginate returns the [start, end) window of a result set of size total.
// An offset past the end is reported as total so offset+len(items) never
// exceeds total.
func Paginate(total, limit, offset int) (int, int, Pagination) {
	limit, offset = ClampLimit(limit), ClampOffset(offset)

	start := offset
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return start, end, Pagination{
		Limit:   limit,
		Offset:  start,
		Total:   total,
		HasMore: end < total,
	}
}
