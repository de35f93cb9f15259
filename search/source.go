package search

import (
	"context"
	"fmt"
	"os"

	"github.com/Emacore17/adottaungatto-it-sub001/geo"
	"github.com/Emacore17/adottaungatto-it-sub001/listings"
	jsoniter "github.com/json-iterator/go"
)

// ListingSource returns candidate listings inside areas. Sources may push
// some filters down to storage; the resolver re-applies all of them, so a
// source must never drop a listing that matches.
type ListingSource interface {
	Candidates(ctx context.Context, areas geo.AreaSet, filters Filters) ([]listings.Listing, error)
}

// MemorySource serves a fixed slice of listings. It backs local runs and tests.
type MemorySource struct {
	listings []listings.Listing
}

func NewMemorySource(ls []listings.Listing) *MemorySource {
	cp := make([]listings.Listing, len(ls))
	copy(cp, ls)
	return &MemorySource{listings: cp}
}

// LoadMemorySource reads a JSON array of listings.
func LoadMemorySource(path string) (*MemorySource, error) {
	if path == "" {
		return NewMemorySource(nil), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read listings seed: %w", err)
	}
	var ls []listings.Listing
	if err := jsoniter.Unmarshal(b, &ls); err != nil {
		return nil, fmt.Errorf("could not decode listings seed: %w", err)
	}
	return NewMemorySource(ls), nil
}

func (s *MemorySource) Candidates(ctx context.Context, areas geo.AreaSet, _ Filters) ([]listings.Listing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []listings.Listing
	for _, l := range s.listings {
		if areas.Contains(l.ComuneID) {
			out = append(out, l)
		}
	}
	return out, nil
}
