package search

import (
	"fmt"
	"math"

	"github.com/Emacore17/adottaungatto-it-sub001/geo"
	"github.com/Emacore17/adottaungatto-it-sub001/listings"
)

type Sort string

const (
	SortRelevance Sort = "relevance"
	SortNewest    Sort = "newest"
	SortPriceAsc  Sort = "price_asc"
	SortPriceDesc Sort = "price_desc"
)

var Sorts = []Sort{SortRelevance, SortNewest, SortPriceAsc, SortPriceDesc}

// Filters are the non-geographic constraints of a search. Zero values mean
// "no constraint".
type Filters struct {
	QueryText   string   `json:"q,omitempty"`
	ListingType string   `json:"listingType,omitempty"`
	PriceMin    *float64 `json:"priceMin,omitempty"`
	PriceMax    *float64 `json:"priceMax,omitempty"`
	AgeText     string   `json:"ageText,omitempty"`
	Sex         string   `json:"sex,omitempty"`
	Breed       string   `json:"breed,omitempty"`
	Sort        Sort     `json:"sort,omitempty"`
}

func (f Filters) HasPriceBound() bool {
	return f.PriceMin != nil || f.PriceMax != nil
}

func (f Filters) Validate() error {
	for name, bound := range map[string]*float64{"priceMin": f.PriceMin, "priceMax": f.PriceMax} {
		if bound != nil && (math.IsNaN(*bound) || math.IsInf(*bound, 0)) {
			return fmt.Errorf("%w: %s must be a finite number", ErrInvalidFilterRange, name)
		}
	}
	if f.PriceMin != nil && *f.PriceMin < 0 {
		return fmt.Errorf("%w: priceMin must not be negative", ErrInvalidFilterRange)
	}
	if f.PriceMax != nil && *f.PriceMax < 0 {
		return fmt.Errorf("%w: priceMax must not be negative", ErrInvalidFilterRange)
	}
	if f.PriceMin != nil && f.PriceMax != nil && *f.PriceMin > *f.PriceMax {
		return fmt.Errorf("%w: priceMin %.2f is greater than priceMax %.2f", ErrInvalidFilterRange, *f.PriceMin, *f.PriceMax)
	}
	switch f.Sort {
	case "", SortRelevance, SortNewest, SortPriceAsc, SortPriceDesc:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidSort, f.Sort)
	}
	return nil
}

// FallbackLevel is how far the geography was widened. Levels are ordered
// none < comune < comune_plus_province < province < region < italy < nearby.
type FallbackLevel string

const (
	LevelNone               FallbackLevel = "none"
	LevelComune             FallbackLevel = "comune"
	LevelComunePlusProvince FallbackLevel = "comune_plus_province"
	LevelProvince           FallbackLevel = "province"
	LevelRegion             FallbackLevel = "region"
	LevelItaly              FallbackLevel = "italy"
	LevelNearby             FallbackLevel = "nearby"
)

func (l FallbackLevel) Rank() int {
	switch l {
	case LevelComune:
		return 1
	case LevelComunePlusProvince:
		return 2
	case LevelProvince:
		return 3
	case LevelRegion:
		return 4
	case LevelItaly:
		return 5
	case LevelNearby:
		return 6
	}
	return 0
}

type FallbackReason string

const (
	ReasonNoExactMatch        FallbackReason = "NO_EXACT_MATCH"
	ReasonWidenedToParentArea FallbackReason = "WIDENED_TO_PARENT_AREA"
	ReasonWidenedToNearbyArea FallbackReason = "WIDENED_TO_NEARBY_AREA"
	ReasonNoLocationFilter    FallbackReason = "NO_LOCATION_FILTER"
)

// Request is one search. Location nil means no geographic filter.
type Request struct {
	Filters  Filters
	Location *geo.LocationIntent
	Limit    int
	Offset   int
}

type Pagination struct {
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	Total   int  `json:"total"`
	HasMore bool `json:"hasMore"`
}

type Metadata struct {
	FallbackApplied         bool                `json:"fallbackApplied"`
	FallbackLevel           FallbackLevel       `json:"fallbackLevel"`
	FallbackReason          *FallbackReason     `json:"fallbackReason"`
	RequestedLocationIntent *geo.LocationIntent `json:"requestedLocationIntent"`
	EffectiveLocationIntent *geo.LocationIntent `json:"effectiveLocationIntent"`
	NearbyProvinceIDs       []string            `json:"nearbyProvinceIds,omitempty"`
	NearbyRadiusKm          *float64            `json:"nearbyRadiusKm,omitempty"`
}

// ResultPage is a single page of the effective (post-fallback) result set.
type ResultPage struct {
	Items      []listings.Summary `json:"items"`
	Pagination Pagination         `json:"pagination"`
	Metadata   Metadata           `json:"metadata"`
}
