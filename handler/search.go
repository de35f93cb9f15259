package handler

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Emacore17/adottaungatto-it-sub001/geo"
	"github.com/Emacore17/adottaungatto-it-sub001/search"
	"github.com/gofiber/fiber/v2"
)

// Resolver runs one search.
type Resolver interface {
	Resolve(ctx context.Context, req search.Request) (*search.ResultPage, error)
}

// searchListings godoc
// @Summary            Search listings inside a location, widening it when nothing matches
// @Tags               Listing
// @Produce            json
// @Success            200 {object} search.ResultPage
// @Failure            400 {object} ErrorResponse
// @Failure            503 {object} ErrorResponse
// @Failure            504 {object} ErrorResponse
// @Param              q query string false "Free text"
// @Param              listingType query string false "adozione, stallo, segnalazione"
// @Param              priceMin query number false "Minimum price"
// @Param              priceMax query number false "Maximum price"
// @Param              ageText query string false "Age text"
// @Param              sex query string false "maschio, femmina, sconosciuto"
// @Param              breed query string false "Breed"
// @Param              sort query string false "relevance, newest, price_asc, price_desc"
// @Param              limit query integer false "Page size (1-50)"
// @Param              offset query integer false "Offset"
// @Param              locationScope query string false "italy, region, province, comune, comune_plus_province"
// @Param              regionId query string false "Region id"
// @Param              provinceId query string false "Province id"
// @Param              comuneId query string false "Comune id"
// @Param              locationLabel query string false "Label shown for the location"
// @Param              locationSecondaryLabel query string false "Secondary label shown for the location"
// @Router             /listings/search [GET]
func SearchListings(resolver Resolver, timeout time.Duration) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		req, err := parseSearchRequest(ctx)
		if err != nil {
			return err
		}

		c := ctx.UserContext()
		if timeout > 0 {
			var cancel context.CancelFunc
			c, cancel = context.WithTimeout(c, timeout)
			defer cancel()
		}

		page, err := resolver.Resolve(c, req)
		if err != nil {
			return err
		}

		return ctx.JSON(page)
	}
}

func parseSearchRequest(ctx *fiber.Ctx) (search.Request, error) {
	priceMin, err := queryFloat(ctx, "priceMin")
	if err != nil {
		return search.Request{}, err
	}
	priceMax, err := queryFloat(ctx, "priceMax")
	if err != nil {
		return search.Request{}, err
	}
	limit, err := queryInt(ctx, "limit", search.DefaultLimit)
	if err != nil {
		return search.Request{}, err
	}
	offset, err := queryInt(ctx, "offset", 0)
	if err != nil {
		return search.Request{}, err
	}
	location, err := parseLocation(ctx)
	if err != nil {
		return search.Request{}, err
	}

	return search.Request{
		Filters: search.Filters{
			QueryText:   strings.TrimSpace(ctx.Query("q")),
			ListingType: strings.TrimSpace(ctx.Query("listingType")),
			PriceMin:    priceMin,
			PriceMax:    priceMax,
			AgeText:     strings.TrimSpace(ctx.Query("ageText")),
			Sex:         strings.TrimSpace(ctx.Query("sex")),
			Breed:       strings.TrimSpace(ctx.Query("breed")),
			Sort:        search.Sort(ctx.Query("sort")),
		},
		Location: location,
		Limit:    limit,
		Offset:   offset,
	}, nil
}

// parseLocation returns nil when the request names no location at all.
func parseLocation(ctx *fiber.Ctx) (*geo.LocationIntent, error) {
	scope := ctx.Query("locationScope")
	region, province, comune := optional(ctx, "regionId"), optional(ctx, "provinceId"), optional(ctx, "comuneId")

	if scope == "" {
		if region != nil || province != nil || comune != nil {
			return nil, fmt.Errorf("%w: locationScope is required with area ids", geo.ErrInvalidLocationIntent)
		}
		return nil, nil
	}

	return &geo.LocationIntent{
		Scope:          geo.Scope(scope),
		RegionID:       region,
		ProvinceID:     province,
		ComuneID:       comune,
		Label:          ctx.Query("locationLabel"),
		SecondaryLabel: optional(ctx, "locationSecondaryLabel"),
	}, nil
}

func optional(ctx *fiber.Ctx, key string) *string {
	v := strings.TrimSpace(ctx.Query(key))
	if v == "" {
		return nil
	}
	return &v
}

func queryFloat(ctx *fiber.Ctx, key string) (*float64, error) {
	v := ctx.Query(key)
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %q is not a number", search.ErrInvalidFilterRange, key, v)
	}
	return &f, nil
}

func queryInt(ctx *fiber.Ctx, key string, defaultValue int) (int, error) {
	v := ctx.Query(key)
	if v == "" {
		return defaultValue, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("%s %q is not an integer", key, v))
	}
	return i, nil
}
