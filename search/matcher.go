package search

import (
	"strings"

	"github.com/Emacore17/adottaungatto-it-sub001/geo"
	"github.com/Emacore17/adottaungatto-it-sub001/listings"
	"github.com/Emacore17/adottaungatto-it-sub001/pkg/textnorm"
)

// relevance weights per field containing the query text
const (
	titleWeight       = 3
	breedWeight       = 2
	descriptionWeight = 1
)

// Matcher evaluates listings against one set of filters. Text filters are
// folded once at construction.
type Matcher struct {
	filters     Filters
	query       string
	listingType string
	sex         string
	breed       string
	ageText     string
}

func NewMatcher(f Filters) *Matcher {
	return &Matcher{
		filters:     f,
		query:       textnorm.Fold(f.QueryText),
		listingType: textnorm.Fold(f.ListingType),
		sex:         textnorm.Fold(f.Sex),
		breed:       textnorm.Fold(f.Breed),
		ageText:     textnorm.Fold(f.AgeText),
	}
}

// Matches reports whether l lies in areas and satisfies every filter.
func (m *Matcher) Matches(l listings.Listing, areas geo.AreaSet) bool {
	if !areas.Contains(l.ComuneID) {
		return false
	}
	return m.matchesAttributes(l)
}

func (m *Matcher) matchesAttributes(l listings.Listing) bool {
	if m.listingType != "" && textnorm.Fold(l.ListingType) != m.listingType {
		return false
	}
	if m.sex != "" && textnorm.Fold(l.Sex) != m.sex {
		return false
	}
	if m.breed != "" && !strings.Contains(textnorm.Fold(l.Breed), m.breed) {
		return false
	}
	if m.ageText != "" && !strings.Contains(textnorm.Fold(l.AgeText), m.ageText) {
		return false
	}
	if !m.matchesPrice(l.PriceAmount) {
		return false
	}
	if m.query != "" && !strings.Contains(searchText(l), m.query) {
		return false
	}
	return true
}

// searchText is the folded title, description and breed joined by spaces, so
// a query may span field boundaries.
func searchText(l listings.Listing) string {
	return textnorm.Fold(l.Title + " " + l.Description + " " + l.Breed)
}

// A listing without a price cannot be compared, so any bound excludes it.
func (m *Matcher) matchesPrice(price *float64) bool {
	if !m.filters.HasPriceBound() {
		return true
	}
	if price == nil {
		return false
	}
	if m.filters.PriceMin != nil && *price < *m.filters.PriceMin {
		return false
	}
	if m.filters.PriceMax != nil && *price > *m.filters.PriceMax {
		return false
	}
	return true
}

// Relevance scores how well the query text matches: the sum of the weights
// of the fields containing it. Zero when there is no query.
func (m *Matcher) Relevance(l listings.Listing) int {
	if m.query == "" {
		return 0
	}
	score := 0
	if strings.Contains(textnorm.Fold(l.Title), m.query) {
		score += titleWeight
	}
	if strings.Contains(textnorm.Fold(l.Breed), m.query) {
		score += breedWeight
	}
	if strings.Contains(textnorm.Fold(l.Description), m.query) {
		score += descriptionWeight
	}
	return score
}
