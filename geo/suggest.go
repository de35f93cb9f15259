package geo

import (
	"sort"
	"strings"

	"github.com/Emacore17/adottaungatto-it-sub001/pkg/textnorm"
)

type suggestion struct {
	area *Area
	rank int
}

// Suggest turns free text typed in a search bar into candidate intents.
// It is a convenience for clients; the search itself only accepts explicit
// intents. Exact names rank before prefixes, prefixes before substrings,
// and a province code ("RM") counts as an exact match of the province.
func (idx *Index) Suggest(text string, limit int) []LocationIntent {
	q := textnorm.Fold(text)
	if q == "" || limit <= 0 {
		return nil
	}

	var found []suggestion
	for _, a := range idx.areas {
		name := textnorm.Fold(a.Name)
		rank := -1
		switch {
		case name == q:
			rank = 0
		case a.Kind == KindProvince && strings.EqualFold(a.Code, q):
			rank = 0
		case strings.HasPrefix(name, q):
			rank = 1
		case strings.Contains(name, q):
			rank = 2
		}
		if rank >= 0 {
			found = append(found, suggestion{area: a, rank: rank})
		}
	}

	sort.Slice(found, func(i, j int) bool {
		if found[i].rank != found[j].rank {
			return found[i].rank < found[j].rank
		}
		if ki, kj := kindOrder(found[i].area.Kind), kindOrder(found[j].area.Kind); ki != kj {
			return ki < kj
		}
		if found[i].area.Name != found[j].area.Name {
			return found[i].area.Name < found[j].area.Name
		}
		return found[i].area.ID < found[j].area.ID
	})

	if len(found) > limit {
		found = found[:limit]
	}

	out := make([]LocationIntent, 0, len(found))
	for _, s := range found {
		anc, err := idx.ResolveAncestors(s.area.ID)
		if err != nil {
			continue
		}
		out = append(out, idx.IntentFor(scopeOf(s.area.Kind), anc))
	}
	return out
}

func kindOrder(k Kind) int {
	switch k {
	case KindComune:
		return 0
	case KindProvince:
		return 1
	}
	return 2
}

func scopeOf(k Kind) Scope {
	switch k {
	case KindComune:
		return ScopeComune
	case KindProvince:
		return ScopeProvince
	}
	return ScopeRegion
}
