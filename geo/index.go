package geo

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	log "github.com/Emacore17/adottaungatto-it-sub001/pkg/logger"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

//go:embed data/italy.json
var defaultDataset []byte

type dataset struct {
	Areas []Area `json:"areas"`
}

// Index is the in-memory administrative hierarchy. It is built once and
// never mutated, so it is safe for any number of concurrent readers.
type Index struct {
	areas    map[string]*Area
	children map[string][]string
	regions  []string
}

// Load reads the reference dataset at path, or the embedded one when path is empty.
func Load(path string) (*Index, error) {
	raw := defaultDataset
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("could not read geography dataset: %w", err)
		}
		raw = b
	}

	var ds dataset
	if err := jsoniter.Unmarshal(raw, &ds); err != nil {
		return nil, fmt.Errorf("could not decode geography dataset: %w", err)
	}

	idx, err := NewIndex(ds.Areas)
	if err != nil {
		return nil, err
	}

	log.Logger().Info("geography index loaded",
		zap.String("source", sourceName(path)),
		zap.Int("regions", len(idx.regions)),
		zap.Int("areas", len(idx.areas)))

	return idx, nil
}

func sourceName(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}

// NewIndex validates the hierarchy and builds the lookup tables.
func NewIndex(areas []Area) (*Index, error) {
	idx := &Index{
		areas:    make(map[string]*Area, len(areas)),
		children: make(map[string][]string),
	}

	for i := range areas {
		a := areas[i]
		if a.ID == "" {
			return nil, fmt.Errorf("area %q has an empty id", a.Name)
		}
		if _, ok := idx.areas[a.ID]; ok {
			return nil, fmt.Errorf("duplicate area id %s", a.ID)
		}
		idx.areas[a.ID] = &a
	}

	for _, a := range idx.areas {
		switch a.Kind {
		case KindRegion:
			if a.ParentID != "" {
				return nil, fmt.Errorf("region %s must not have a parent", a.ID)
			}
			idx.regions = append(idx.regions, a.ID)
		case KindProvince, KindComune:
			parent, ok := idx.areas[a.ParentID]
			if !ok {
				return nil, fmt.Errorf("area %s references unknown parent %q", a.ID, a.ParentID)
			}
			if parent.Kind != parentKind(a.Kind) {
				return nil, fmt.Errorf("area %s (%s) cannot be a child of %s (%s)", a.ID, a.Kind, parent.ID, parent.Kind)
			}
			idx.children[a.ParentID] = append(idx.children[a.ParentID], a.ID)
		default:
			return nil, fmt.Errorf("area %s has unknown kind %q", a.ID, a.Kind)
		}
	}

	idx.sortByName(idx.regions)
	for _, ids := range idx.children {
		idx.sortByName(ids)
	}

	return idx, nil
}

func parentKind(k Kind) Kind {
	switch k {
	case KindComune:
		return KindProvince
	case KindProvince:
		return KindRegion
	}
	return ""
}

func (idx *Index) sortByName(ids []string) {
	sort.Slice(ids, func(i, j int) bool {
		a, b := idx.areas[ids[i]], idx.areas[ids[j]]
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.ID < b.ID
	})
}

// Area returns a copy of the area with the given id.
func (idx *Index) Area(id string) (Area, error) {
	a, ok := idx.areas[id]
	if !ok {
		return Area{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return *a, nil
}

func (idx *Index) Regions() []Area {
	return idx.collect(idx.regions)
}

// Children lists the direct children of a region or province, sorted by name.
func (idx *Index) Children(parentID string) ([]Area, error) {
	if _, ok := idx.areas[parentID]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, parentID)
	}
	return idx.collect(idx.children[parentID]), nil
}

func (idx *Index) collect(ids []string) []Area {
	out := make([]Area, 0, len(ids))
	for _, id := range ids {
		out = append(out, *idx.areas[id])
	}
	return out
}

// ResolveAncestors walks up from any area to its region.
func (idx *Index) ResolveAncestors(areaID string) (Ancestors, error) {
	a, ok := idx.areas[areaID]
	if !ok {
		return Ancestors{}, fmt.Errorf("%w: %s", ErrNotFound, areaID)
	}

	var out Ancestors
	for cur := a; cur != nil; cur = idx.areas[cur.ParentID] {
		c := *cur
		switch c.Kind {
		case KindComune:
			out.Comune = &c
		case KindProvince:
			out.Province = &c
		case KindRegion:
			out.Region = &c
		}
	}

	return out, nil
}

// comuniUnder expands a region or province to the comuni below it.
func (idx *Index) comuniUnder(areaID string) []string {
	a := idx.areas[areaID]
	if a.Kind == KindComune {
		return []string{a.ID}
	}
	var out []string
	for _, child := range idx.children[areaID] {
		out = append(out, idx.comuniUnder(child)...)
	}
	return out
}
