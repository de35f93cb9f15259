package handler

import (
	"testing"

	"github.com/Emacore17/adottaungatto-it-sub001/geo"
	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGeographyApp(t *testing.T) *fiber.App {
	h := NewGeographyHandler(loadIndex(t))
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/geography/regions", h.HandleRegions)
	app.Get("/geography/areas/:id", h.HandleArea)
	app.Get("/geography/areas/:id/children", h.HandleChildren)
	app.Get("/geography/suggest", h.HandleSuggest)
	return app
}

func TestRegions(t *testing.T) {
	status, body := get(t, newGeographyApp(t), "/geography/regions")
	require.Equal(t, fiber.StatusOK, status)

	var resp AreasResponse
	require.NoError(t, jsoniter.Unmarshal(body, &resp))
	assert.Equal(t, 8, resp.Count)
	for _, r := range resp.Results {
		assert.Equal(t, geo.KindRegion, r.Kind)
	}
}

func TestAreaWithAncestors(t *testing.T) {
	status, body := get(t, newGeographyApp(t), "/geography/areas/058104")
	require.Equal(t, fiber.StatusOK, status)

	var resp AreaResponse
	require.NoError(t, jsoniter.Unmarshal(body, &resp))
	assert.Equal(t, "Tivoli", resp.Area.Name)
	require.NotNil(t, resp.Ancestors.Province)
	assert.Equal(t, "RM", resp.Ancestors.Province.Code)
	assert.Equal(t, "Lazio", resp.Ancestors.Region.Name)
}

func TestChildrenSortedByName(t *testing.T) {
	status, body := get(t, newGeographyApp(t), "/geography/areas/058/children")
	require.Equal(t, fiber.StatusOK, status)

	var resp AreasResponse
	require.NoError(t, jsoniter.Unmarshal(body, &resp))
	names := make([]string, 0, len(resp.Results))
	for _, a := range resp.Results {
		names = append(names, a.Name)
	}
	assert.Equal(t, []string{"Fiumicino", "Roma", "Tivoli"}, names)
}

func TestUnknownArea(t *testing.T) {
	app := newGeographyApp(t)

	for _, url := range []string{"/geography/areas/999999", "/geography/areas/999999/children"} {
		status, body := get(t, app, url)
		assert.Equal(t, fiber.StatusNotFound, status, url)
		assert.Contains(t, string(body), CodeNotFound, url)
	}
}

func TestSuggestEndpoint(t *testing.T) {
	app := newGeographyApp(t)

	for i := 0; i < 2; i++ {
		status, body := get(t, app, "/geography/suggest?q=Roma")
		require.Equal(t, fiber.StatusOK, status)

		var resp SuggestResponse
		require.NoError(t, jsoniter.Unmarshal(body, &resp))
		require.Equal(t, 2, resp.Count)
		assert.Equal(t, geo.ScopeComune, resp.Results[0].Scope)
		assert.Equal(t, "058091", *resp.Results[0].ComuneID)
	}

	status, body := get(t, app, "/geography/suggest?q=")
	require.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"count":0,"results":[]}`, string(body))

	status, _ = get(t, app, "/geography/suggest?q=roma&limit=x")
	assert.Equal(t, fiber.StatusBadRequest, status)
}
