package search

import (
	"context"
	"fmt"

	"github.com/Emacore17/adottaungatto-it-sub001/geo"
	"github.com/Emacore17/adottaungatto-it-sub001/listings"
)

const defaultPageSize = 1000

// candidateSort is a total order over listings, required by search_after.
var candidateSort = []map[string]interface{}{
	{"publishedAt": "desc"},
	{"id.keyword": "asc"},
}

// ListingIndex is the Elasticsearch listing source. Geography and price
// bounds are pushed down; every other filter stays with the matcher.
type ListingIndex struct {
	index    *index[listings.Listing]
	pageSize int
}

func NewListingIndex(connStr, indexName string) *ListingIndex {
	return &ListingIndex{
		index:    NewIndex[listings.Listing](connStr, indexName),
		pageSize: defaultPageSize,
	}
}

// Candidates pages through every matching document with search_after.
func (l *ListingIndex) Candidates(ctx context.Context, areas geo.AreaSet, filters Filters) ([]listings.Listing, error) {
	var (
		results []listings.Listing
		after   []interface{}
	)

	for {
		res, err := l.index.Search(ctx, candidatesQuery(areas, filters, l.pageSize, after))
		if err != nil {
			return nil, err
		}
		if results == nil {
			results = make([]listings.Listing, 0, res.Hits.Total.Value)
		}

		for _, hit := range res.Hits.Hits {
			doc := hit.Source
			if doc.ID == "" {
				doc.ID = hit.Id
			}
			results = append(results, doc)
		}

		hits := res.Hits.Hits
		if len(hits) < l.pageSize {
			break
		}
		after = hits[len(hits)-1].Sort
		if len(after) == 0 {
			return nil, fmt.Errorf("elasticsearch returned no sort values for %s", hits[len(hits)-1].Id)
		}
	}

	return results, nil
}

func candidatesQuery(areas geo.AreaSet, filters Filters, size int, after []interface{}) map[string]interface{} {
	var must []map[string]interface{}

	if !areas.All {
		must = append(must, map[string]interface{}{
			"terms": map[string]interface{}{
				"comuneId": areas.ComuneIDs(),
			},
		})
	}

	if filters.HasPriceBound() {
		bounds := map[string]interface{}{}
		if filters.PriceMin != nil {
			bounds["gte"] = *filters.PriceMin
		}
		if filters.PriceMax != nil {
			bounds["lte"] = *filters.PriceMax
		}
		must = append(must, map[string]interface{}{
			"range": map[string]interface{}{
				"priceAmount": bounds,
			},
		})
	}

	if must == nil {
		must = []map[string]interface{}{}
	}

	query := map[string]interface{}{
		"track_total_hits": after == nil,
		"size":             size,
		"sort":             candidateSort,
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"filter": must,
			},
		},
	}
	if after != nil {
		query["search_after"] = after
	}

	return query
}

func (l *ListingIndex) Ping(ctx context.Context) error {
	return l.index.Ping(ctx)
}

// IndexListing upserts a published listing.
func (l *ListingIndex) IndexListing(ctx context.Context, listing listings.Listing) error {
	return l.index.Bulk(ctx, []Item[listings.Listing]{{Id: listing.ID, Source: listing}}, nil)
}

func (l *ListingIndex) DeleteListing(ctx context.Context, id string) error {
	return l.index.Bulk(ctx, nil, []string{id})
}
