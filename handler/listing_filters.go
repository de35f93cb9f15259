package handler

import (
	"github.com/Emacore17/adottaungatto-it-sub001/listings"
	"github.com/Emacore17/adottaungatto-it-sub001/search"
	"github.com/gofiber/fiber/v2"
)

type GetListingFiltersResponse struct {
	ListingTypes []string      `json:"listingTypes"`
	Sexes        []string      `json:"sexes"`
	Sorts        []search.Sort `json:"sorts"`
}

// getListingFilters godoc
// @Summary            Values accepted by the listing search filters
// @Tags               Listing
// @Produce            json
// @Success            200 {object} GetListingFiltersResponse
// @Router             /listings/filters [GET]
func GetListingFiltersHandler() fiber.Handler {
	response := GetListingFiltersResponse{
		ListingTypes: listings.Types,
		Sexes:        listings.Sexes,
		Sorts:        search.Sorts,
	}

	return func(ctx *fiber.Ctx) error {
		return ctx.JSON(response)
	}
}
