package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Emacore17/adottaungatto-it-sub001/geo"
	"github.com/Emacore17/adottaungatto-it-sub001/listings"
	"github.com/Emacore17/adottaungatto-it-sub001/search"
	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var published = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func loadIndex(t *testing.T) *geo.Index {
	t.Helper()
	idx, err := geo.Load("")
	require.NoError(t, err)
	return idx
}

func newSearchApp(t *testing.T, resolver Resolver) *fiber.App {
	t.Helper()
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/listings/search", SearchListings(resolver, time.Second))
	return app
}

func seededResolver(t *testing.T) Resolver {
	idx := loadIndex(t)
	price := 50.0
	source := search.NewMemorySource([]listings.Listing{
		{ID: "l1", Title: "Micio siamese", ListingType: "adozione", ComuneID: "058091", PublishedAt: published},
		{ID: "l2", Title: "Gattina tigrata", ListingType: "stallo", ComuneID: "058104", PriceAmount: &price, PublishedAt: published.Add(-time.Hour)},
	})
	return search.NewResolver(idx, source, search.DefaultPolicy())
}

func get(t *testing.T, app *fiber.App, url string) (int, []byte) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, url, nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

func TestSearchWidensToProvince(t *testing.T) {
	app := newSearchApp(t, seededResolver(t))

	status, body := get(t, app, "/listings/search?locationScope=comune&regionId=12&provinceId=058&comuneId=058120")
	require.Equal(t, fiber.StatusOK, status)

	var page search.ResultPage
	require.NoError(t, jsoniter.Unmarshal(body, &page))
	assert.Len(t, page.Items, 2)
	assert.True(t, page.Metadata.FallbackApplied)
	assert.Equal(t, search.LevelProvince, page.Metadata.FallbackLevel)
	assert.Equal(t, "058120", *page.Metadata.RequestedLocationIntent.ComuneID)
	assert.Equal(t, 12, page.Pagination.Limit)
}

func TestSearchWithoutLocation(t *testing.T) {
	app := newSearchApp(t, seededResolver(t))

	status, body := get(t, app, "/listings/search?q=SIAMESE&limit=1")
	require.Equal(t, fiber.StatusOK, status)

	var page search.ResultPage
	require.NoError(t, jsoniter.Unmarshal(body, &page))
	require.Len(t, page.Items, 1)
	assert.Equal(t, "l1", page.Items[0].ID)
	assert.Equal(t, search.LevelNone, page.Metadata.FallbackLevel)
	assert.Equal(t, search.ReasonNoLocationFilter, *page.Metadata.FallbackReason)
	assert.Nil(t, page.Metadata.RequestedLocationIntent)
}

func TestSearchClientErrors(t *testing.T) {
	app := newSearchApp(t, seededResolver(t))

	cases := []struct {
		url  string
		code string
	}{
		{"/listings/search?locationScope=comune&comuneId=058091", CodeInvalidLocationIntent},
		{"/listings/search?regionId=12", CodeInvalidLocationIntent},
		{"/listings/search?locationScope=planet", CodeInvalidLocationIntent},
		{"/listings/search?priceMin=abc", CodeInvalidFilterRange},
		{"/listings/search?priceMin=100&priceMax=10", CodeInvalidFilterRange},
		{"/listings/search?priceMin=NaN&priceMax=10", CodeInvalidFilterRange},
		{"/listings/search?priceMax=Inf", CodeInvalidFilterRange},
		{"/listings/search?sort=cheapest", CodeInvalidSort},
		{"/listings/search?limit=ten", CodeBadRequest},
	}

	for _, c := range cases {
		status, body := get(t, app, c.url)
		assert.Equal(t, fiber.StatusBadRequest, status, c.url)

		var resp ErrorResponse
		require.NoError(t, jsoniter.Unmarshal(body, &resp))
		assert.Equal(t, c.code, resp.Error, c.url)
		assert.NotEmpty(t, resp.Message, c.url)
	}
}

type stubResolver struct {
	err error
}

func (s stubResolver) Resolve(ctx context.Context, _ search.Request) (*search.ResultPage, error) {
	return nil, s.err
}

func TestSearchServerErrors(t *testing.T) {
	status, body := get(t, newSearchApp(t, stubResolver{err: search.ErrUpstreamUnavailable}), "/listings/search")
	assert.Equal(t, fiber.StatusServiceUnavailable, status)
	assert.Contains(t, string(body), CodeUpstreamUnavailable)

	status, body = get(t, newSearchApp(t, stubResolver{err: context.DeadlineExceeded}), "/listings/search")
	assert.Equal(t, fiber.StatusGatewayTimeout, status)
	assert.Contains(t, string(body), CodeTimeout)
}

func TestListingFilters(t *testing.T) {
	app := fiber.New()
	app.Get("/listings/filters", GetListingFiltersHandler())

	status, body := get(t, app, "/listings/filters")
	require.Equal(t, fiber.StatusOK, status)

	var resp GetListingFiltersResponse
	require.NoError(t, jsoniter.Unmarshal(body, &resp))
	assert.Equal(t, listings.Types, resp.ListingTypes)
	assert.Equal(t, search.Sorts, resp.Sorts)
}
