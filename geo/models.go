package geo

import "sort"

type Kind string

const (
	KindRegion   Kind = "region"
	KindProvince Kind = "province"
	KindComune   Kind = "comune"
)

// Scope is the granularity a LocationIntent asks for.
type Scope string

const (
	ScopeItaly              Scope = "italy"
	ScopeRegion             Scope = "region"
	ScopeProvince           Scope = "province"
	ScopeComune             Scope = "comune"
	ScopeComunePlusProvince Scope = "comune_plus_province"
)

func (s Scope) Valid() bool {
	switch s {
	case ScopeItaly, ScopeRegion, ScopeProvince, ScopeComune, ScopeComunePlusProvince:
		return true
	}
	return false
}

type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Area is a node of the administrative hierarchy. ParentID is empty for regions.
type Area struct {
	ID       string `json:"id"`
	Kind     Kind   `json:"kind"`
	Name     string `json:"name"`
	ParentID string `json:"parentId,omitempty"`
	Centroid Point  `json:"centroid"`
	Code     string `json:"code"`
}

// LocationIntent is the geographic filter of a search request.
type LocationIntent struct {
	Scope          Scope   `json:"scope"`
	RegionID       *string `json:"regionId"`
	ProvinceID     *string `json:"provinceId"`
	ComuneID       *string `json:"comuneId"`
	Label          string  `json:"label"`
	SecondaryLabel *string `json:"secondaryLabel"`
}

// Ancestors holds an area and everything above it. Comune is nil when the
// resolved area is a province, Province and Comune are nil for a region.
type Ancestors struct {
	Region   *Area `json:"region"`
	Province *Area `json:"province,omitempty"`
	Comune   *Area `json:"comune,omitempty"`
}

// AreaSet is the concrete set of comuni a LocationIntent denotes.
// The zero value with All set matches every comune, including comuni
// unknown to the index.
type AreaSet struct {
	All     bool
	comuni  map[string]struct{}
	ordered []string
}

// AllAreas is the unconstrained set used for the italy scope.
func AllAreas() AreaSet {
	return AreaSet{All: true}
}

func newAreaSet(ids []string) AreaSet {
	set := AreaSet{comuni: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		if _, ok := set.comuni[id]; ok {
			continue
		}
		set.comuni[id] = struct{}{}
		set.ordered = append(set.ordered, id)
	}
	sort.Strings(set.ordered)
	return set
}

func (s AreaSet) Contains(comuneID string) bool {
	if s.All {
		return true
	}
	_, ok := s.comuni[comuneID]
	return ok
}

// ComuneIDs returns the sorted ids in the set, nil when the set is unconstrained.
func (s AreaSet) ComuneIDs() []string {
	if s.All {
		return nil
	}
	out := make([]string, len(s.ordered))
	copy(out, s.ordered)
	return out
}

func (s AreaSet) Len() int {
	return len(s.ordered)
}

func (s AreaSet) Equal(other AreaSet) bool {
	if s.All || other.All {
		return s.All == other.All
	}
	if len(s.ordered) != len(other.ordered) {
		return false
	}
	for i := range s.ordered {
		if s.ordered[i] != other.ordered[i] {
			return false
		}
	}
	return true
}
