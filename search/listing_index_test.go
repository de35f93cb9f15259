package search

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Emacore17/adottaungatto-it-sub001/geo"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidatesQueryUnconstrained(t *testing.T) {
	q := candidatesQuery(geo.AllAreas(), Filters{QueryText: "siamese"}, defaultPageSize, nil)

	filters := q["query"].(map[string]interface{})["bool"].(map[string]interface{})["filter"].([]map[string]interface{})
	assert.Empty(t, filters)
	assert.Equal(t, defaultPageSize, q["size"])
	assert.Equal(t, candidateSort, q["sort"])
	assert.Equal(t, true, q["track_total_hits"])
	assert.NotContains(t, q, "search_after")
}

func TestCandidatesQueryPushesDownAreasAndPrice(t *testing.T) {
	idx, err := geo.Load("")
	require.NoError(t, err)
	areas, err := idx.AreasWithin(geo.LocationIntent{Scope: geo.ScopeProvince, RegionID: sp("12"), ProvinceID: sp("058")})
	require.NoError(t, err)

	q := candidatesQuery(areas, Filters{PriceMax: fp(80), ListingType: "stallo"}, defaultPageSize, nil)

	filters := q["query"].(map[string]interface{})["bool"].(map[string]interface{})["filter"].([]map[string]interface{})
	require.Len(t, filters, 2)
	assert.Equal(t, map[string]interface{}{"comuneId": []string{"058091", "058104", "058120"}}, filters[0]["terms"])
	assert.Equal(t, map[string]interface{}{"priceAmount": map[string]interface{}{"lte": 80.0}}, filters[1]["range"])
}

func TestCandidatesQueryContinuesAfterLastHit(t *testing.T) {
	after := []interface{}{1767225600000.0, "l2"}

	q := candidatesQuery(geo.AllAreas(), Filters{}, 2, after)

	assert.Equal(t, after, q["search_after"])
	assert.Equal(t, false, q["track_total_hits"])
	assert.Equal(t, 2, q["size"])
}

// esPages serves canned _search pages in order and records the request bodies.
func esPages(t *testing.T, pages ...string) (*httptest.Server, *[]map[string]interface{}) {
	t.Helper()
	var requests []map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		var q map[string]interface{}
		assert.NoError(t, jsoniter.Unmarshal(body, &q))
		requests = append(requests, q)

		w.Header().Set("Content-Type", "application/json")
		if len(requests) > len(pages) {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = io.WriteString(w, pages[len(requests)-1])
	}))
	t.Cleanup(srv.Close)
	return srv, &requests
}

func TestCandidatesPagesPastFirstResponse(t *testing.T) {
	srv, requests := esPages(t,
		`{"hits":{"total":{"value":3},"hits":[
			{"_id":"l1","_source":{"id":"l1","comuneId":"058091"},"sort":[300,"l1"]},
			{"_id":"l2","_source":{"comuneId":"058091"},"sort":[200,"l2"]}]}}`,
		`{"hits":{"total":{"value":0},"hits":[
			{"_id":"l3","_source":{"id":"l3","comuneId":"001272"},"sort":[100,"l3"]}]}}`,
	)
	li := NewListingIndex(srv.URL, "listings")
	li.pageSize = 2

	got, err := li.Candidates(context.Background(), geo.AllAreas(), Filters{})

	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"l1", "l2", "l3"}, []string{got[0].ID, got[1].ID, got[2].ID})

	require.Len(t, *requests, 2)
	assert.NotContains(t, (*requests)[0], "search_after")
	assert.Equal(t, []interface{}{200.0, "l2"}, (*requests)[1]["search_after"])
}

func TestCandidatesStopsOnFullLastPage(t *testing.T) {
	srv, requests := esPages(t,
		`{"hits":{"total":{"value":2},"hits":[
			{"_id":"l1","_source":{"id":"l1"},"sort":[300,"l1"]},
			{"_id":"l2","_source":{"id":"l2"},"sort":[200,"l2"]}]}}`,
		`{"hits":{"total":{"value":0},"hits":[]}}`,
	)
	li := NewListingIndex(srv.URL, "listings")
	li.pageSize = 2

	got, err := li.Candidates(context.Background(), geo.AllAreas(), Filters{})

	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Len(t, *requests, 2)
}

func TestCandidatesFailsOnUpstreamError(t *testing.T) {
	srv, _ := esPages(t,
		`{"hits":{"total":{"value":5},"hits":[
			{"_id":"l1","_source":{"id":"l1"},"sort":[300,"l1"]},
			{"_id":"l2","_source":{"id":"l2"},"sort":[200,"l2"]}]}}`,
	)
	li := NewListingIndex(srv.URL, "listings")
	li.pageSize = 2

	_, err := li.Candidates(context.Background(), geo.AllAreas(), Filters{})

	assert.Error(t, err)
}
