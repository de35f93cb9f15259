package handler

import (
	"fmt"
	"strconv"
	"time"

	"github.com/Emacore17/adottaungatto-it-sub001/geo"
	"github.com/Emacore17/adottaungatto-it-sub001/pkg/textnorm"
	"github.com/gofiber/fiber/v2"
	"github.com/karlseguin/ccache/v3"
)

const (
	defaultSuggestLimit = 10
	maxSuggestLimit     = 20
	suggestCacheTTL     = 10 * time.Minute
)

type GeographyHandler struct {
	index       *geo.Index
	suggestions *ccache.Cache[[]geo.LocationIntent]
}

func NewGeographyHandler(index *geo.Index) *GeographyHandler {
	return &GeographyHandler{
		index:       index,
		suggestions: ccache.New(ccache.Configure[[]geo.LocationIntent]().MaxSize(1000)),
	}
}

type AreasResponse struct {
	Count   int        `json:"count"`
	Results []geo.Area `json:"results"`
}

type AreaResponse struct {
	Area      geo.Area      `json:"area"`
	Ancestors geo.Ancestors `json:"ancestors"`
}

type SuggestResponse struct {
	Count   int                  `json:"count"`
	Results []geo.LocationIntent `json:"results"`
}

// HandleRegions godoc
// @Summary            List the regions
// @Tags               Geography
// @Produce            json
// @Success            200 {object} AreasResponse
// @Router             /geography/regions [GET]
func (h *GeographyHandler) HandleRegions(ctx *fiber.Ctx) error {
	regions := h.index.Regions()
	return ctx.JSON(AreasResponse{Count: len(regions), Results: regions})
}

// HandleArea godoc
// @Summary            Get an area with its ancestors
// @Tags               Geography
// @Produce            json
// @Success            200 {object} AreaResponse
// @Failure            404 {object} ErrorResponse
// @Param              id path string true "Area id"
// @Router             /geography/areas/{id} [GET]
func (h *GeographyHandler) HandleArea(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	area, err := h.index.Area(id)
	if err != nil {
		return err
	}
	ancestors, err := h.index.ResolveAncestors(id)
	if err != nil {
		return err
	}
	return ctx.JSON(AreaResponse{Area: area, Ancestors: ancestors})
}

// HandleChildren godoc
// @Summary            List the provinces of a region or the comuni of a province
// @Tags               Geography
// @Produce            json
// @Success            200 {object} AreasResponse
// @Failure            404 {object} ErrorResponse
// @Param              id path string true "Region or province id"
// @Router             /geography/areas/{id}/children [GET]
func (h *GeographyHandler) HandleChildren(ctx *fiber.Ctx) error {
	children, err := h.index.Children(ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(AreasResponse{Count: len(children), Results: children})
}

// HandleSuggest godoc
// @Summary            Suggest location intents for free text
// @Tags               Geography
// @Produce            json
// @Success            200 {object} SuggestResponse
// @Param              q query string true "Text typed by the user"
// @Param              limit query integer false "Maximum suggestions (1-20)"
// @Router             /geography/suggest [GET]
func (h *GeographyHandler) HandleSuggest(ctx *fiber.Ctx) error {
	limit := defaultSuggestLimit
	if v := ctx.Query("limit"); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("limit %q is not an integer", v))
		}
		limit = l
	}
	if limit < 1 {
		limit = 1
	}
	if limit > maxSuggestLimit {
		limit = maxSuggestLimit
	}

	text := textnorm.Fold(ctx.Query("q"))
	if text == "" {
		return ctx.JSON(SuggestResponse{Results: []geo.LocationIntent{}})
	}

	key := fmt.Sprintf("%d|%s", limit, text)
	item, err := h.suggestions.Fetch(key, suggestCacheTTL, func() ([]geo.LocationIntent, error) {
		return h.index.Suggest(text, limit), nil
	})
	if err != nil {
		return err
	}

	results := item.Value()
	if results == nil {
		results = []geo.LocationIntent{}
	}
	return ctx.JSON(SuggestResponse{Count: len(results), Results: results})
}
