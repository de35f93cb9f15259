package geo

import "fmt"

const ItalyLabel = "Italia"

// Normalize checks that the intent carries exactly the ids its scope needs
// and that they agree with the hierarchy. Empty labels are filled from the
// index; labels supplied by the caller are kept.
func (idx *Index) Normalize(intent LocationIntent) (LocationIntent, error) {
	if !intent.Scope.Valid() {
		return LocationIntent{}, fmt.Errorf("%w: unknown scope %q", ErrInvalidLocationIntent, intent.Scope)
	}

	anchor, err := idx.anchorOf(intent)
	if err != nil {
		return LocationIntent{}, err
	}

	canonical := idx.IntentFor(intent.Scope, anchor)
	if intent.Label != "" {
		canonical.Label = intent.Label
	}
	if intent.SecondaryLabel != nil {
		canonical.SecondaryLabel = intent.SecondaryLabel
	}

	return canonical, nil
}

// anchorOf resolves the deepest id of the intent and cross checks the others.
func (idx *Index) anchorOf(intent LocationIntent) (Ancestors, error) {
	region, province, comune := deref(intent.RegionID), deref(intent.ProvinceID), deref(intent.ComuneID)

	var deepest string
	var kind Kind
	switch intent.Scope {
	case ScopeItaly:
		if region != "" || province != "" || comune != "" {
			return Ancestors{}, fmt.Errorf("%w: scope italy does not take area ids", ErrInvalidLocationIntent)
		}
		return Ancestors{}, nil
	case ScopeRegion:
		if region == "" {
			return Ancestors{}, fmt.Errorf("%w: scope region requires regionId", ErrInvalidLocationIntent)
		}
		if province != "" || comune != "" {
			return Ancestors{}, fmt.Errorf("%w: scope region takes only regionId", ErrInvalidLocationIntent)
		}
		deepest, kind = region, KindRegion
	case ScopeProvince:
		if province == "" || region == "" {
			return Ancestors{}, fmt.Errorf("%w: scope province requires provinceId and regionId", ErrInvalidLocationIntent)
		}
		if comune != "" {
			return Ancestors{}, fmt.Errorf("%w: scope province does not take comuneId", ErrInvalidLocationIntent)
		}
		deepest, kind = province, KindProvince
	case ScopeComune, ScopeComunePlusProvince:
		if comune == "" || province == "" || region == "" {
			return Ancestors{}, fmt.Errorf("%w: scope %s requires comuneId, provinceId and regionId", ErrInvalidLocationIntent, intent.Scope)
		}
		deepest, kind = comune, KindComune
	}

	a, ok := idx.areas[deepest]
	if !ok {
		return Ancestors{}, &unknownAreaError{kind: kind, id: deepest}
	}
	if a.Kind != kind {
		return Ancestors{}, fmt.Errorf("%w: %s is a %s, not a %s", ErrInvalidLocationIntent, deepest, a.Kind, kind)
	}

	anc, err := idx.ResolveAncestors(deepest)
	if err != nil {
		return Ancestors{}, fmt.Errorf("%w: %s", ErrInvalidLocationIntent, err)
	}
	if anc.Region.ID != region {
		return Ancestors{}, fmt.Errorf("%w: %s does not belong to region %s", ErrInvalidLocationIntent, deepest, region)
	}
	if province != "" && anc.Province.ID != province {
		return Ancestors{}, fmt.Errorf("%w: comune %s does not belong to province %s", ErrInvalidLocationIntent, comune, province)
	}

	return anc, nil
}

// IntentFor builds the canonical intent of scope around anchor. The anchor
// must contain the areas the scope needs.
func (idx *Index) IntentFor(scope Scope, anchor Ancestors) LocationIntent {
	switch scope {
	case ScopeRegion:
		return LocationIntent{
			Scope:    ScopeRegion,
			RegionID: strPtr(anchor.Region.ID),
			Label:    anchor.Region.Name,
		}
	case ScopeProvince:
		return LocationIntent{
			Scope:          ScopeProvince,
			RegionID:       strPtr(anchor.Region.ID),
			ProvinceID:     strPtr(anchor.Province.ID),
			Label:          anchor.Province.Name,
			SecondaryLabel: strPtr(anchor.Region.Name),
		}
	case ScopeComune, ScopeComunePlusProvince:
		label := anchor.Comune.Name
		if scope == ScopeComunePlusProvince {
			label = fmt.Sprintf("%s e provincia", anchor.Comune.Name)
		}
		return LocationIntent{
			Scope:          scope,
			RegionID:       strPtr(anchor.Region.ID),
			ProvinceID:     strPtr(anchor.Province.ID),
			ComuneID:       strPtr(anchor.Comune.ID),
			Label:          label,
			SecondaryLabel: strPtr(fmt.Sprintf("%s (%s)", anchor.Province.Name, anchor.Province.Code)),
		}
	}
	return LocationIntent{Scope: ScopeItaly, Label: ItalyLabel}
}

// Anchor returns the ancestors an already normalized intent points at.
func (idx *Index) Anchor(intent LocationIntent) (Ancestors, error) {
	return idx.anchorOf(intent)
}

// AreasWithin maps an intent to the comuni it denotes.
func (idx *Index) AreasWithin(intent LocationIntent) (AreaSet, error) {
	anchor, err := idx.anchorOf(intent)
	if err != nil {
		return AreaSet{}, err
	}

	switch intent.Scope {
	case ScopeRegion:
		return newAreaSet(idx.comuniUnder(anchor.Region.ID)), nil
	case ScopeProvince, ScopeComunePlusProvince:
		return newAreaSet(idx.comuniUnder(anchor.Province.ID)), nil
	case ScopeComune:
		return newAreaSet([]string{anchor.Comune.ID}), nil
	}
	return AllAreas(), nil
}

// AreasInProvinces is the comune set covering every given province.
func (idx *Index) AreasInProvinces(provinceIDs []string) (AreaSet, error) {
	var ids []string
	for _, id := range provinceIDs {
		a, ok := idx.areas[id]
		if !ok || a.Kind != KindProvince {
			return AreaSet{}, fmt.Errorf("%w: province %s", ErrNotFound, id)
		}
		ids = append(ids, idx.comuniUnder(id)...)
	}
	return newAreaSet(ids), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func strPtr(s string) *string {
	return &s
}
