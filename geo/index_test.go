package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadIndex(t *testing.T) *Index {
	t.Helper()
	idx, err := Load("")
	require.NoError(t, err)
	return idx
}

func sp(s string) *string { return &s }

func TestNewIndexRejectsBrokenHierarchy(t *testing.T) {
	_, err := NewIndex([]Area{
		{ID: "12", Kind: KindRegion, Name: "Lazio"},
		{ID: "058091", Kind: KindComune, Name: "Roma", ParentID: "12"},
	})
	assert.Error(t, err)

	_, err = NewIndex([]Area{
		{ID: "12", Kind: KindRegion, Name: "Lazio"},
		{ID: "12", Kind: KindRegion, Name: "Lazio"},
	})
	assert.Error(t, err)

	_, err = NewIndex([]Area{
		{ID: "058", Kind: KindProvince, Name: "Roma", ParentID: "99"},
	})
	assert.Error(t, err)
}

func TestResolveAncestors(t *testing.T) {
	idx := loadIndex(t)

	anc, err := idx.ResolveAncestors("058091")
	require.NoError(t, err)
	assert.Equal(t, "Roma", anc.Comune.Name)
	assert.Equal(t, "RM", anc.Province.Code)
	assert.Equal(t, "Lazio", anc.Region.Name)

	anc, err = idx.ResolveAncestors("007")
	require.NoError(t, err)
	assert.Nil(t, anc.Comune)
	assert.Equal(t, "Aosta", anc.Province.Name)
	assert.Equal(t, "02", anc.Region.ID)

	_, err = idx.ResolveAncestors("999999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestChildren(t *testing.T) {
	idx := loadIndex(t)

	comuni, err := idx.Children("058")
	require.NoError(t, err)
	var names []string
	for _, c := range comuni {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"Fiumicino", "Roma", "Tivoli"}, names)

	_, err = idx.Children("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAreasWithin(t *testing.T) {
	idx := loadIndex(t)

	set, err := idx.AreasWithin(LocationIntent{Scope: ScopeComune, RegionID: sp("12"), ProvinceID: sp("058"), ComuneID: sp("058091")})
	require.NoError(t, err)
	assert.Equal(t, []string{"058091"}, set.ComuneIDs())

	set, err = idx.AreasWithin(LocationIntent{Scope: ScopeComunePlusProvince, RegionID: sp("12"), ProvinceID: sp("058"), ComuneID: sp("058091")})
	require.NoError(t, err)
	assert.Equal(t, []string{"058091", "058104", "058120"}, set.ComuneIDs())

	set, err = idx.AreasWithin(LocationIntent{Scope: ScopeRegion, RegionID: sp("02")})
	require.NoError(t, err)
	assert.Equal(t, []string{"007003", "007022"}, set.ComuneIDs())

	set, err = idx.AreasWithin(LocationIntent{Scope: ScopeItaly})
	require.NoError(t, err)
	assert.True(t, set.All)
	assert.True(t, set.Contains("anything"))
}

func TestAreasWithinRejectsMalformedIntents(t *testing.T) {
	idx := loadIndex(t)

	cases := map[string]LocationIntent{
		"comune without id":       {Scope: ScopeComune, RegionID: sp("12"), ProvinceID: sp("058")},
		"comune in wrong province": {Scope: ScopeComune, RegionID: sp("12"), ProvinceID: sp("059"), ComuneID: sp("058091")},
		"province in wrong region": {Scope: ScopeProvince, RegionID: sp("02"), ProvinceID: sp("058")},
		"region with province":     {Scope: ScopeRegion, RegionID: sp("12"), ProvinceID: sp("058")},
		"italy with ids":           {Scope: ScopeItaly, RegionID: sp("12")},
		"unknown scope":            {Scope: "continent"},
		"unknown comune":           {Scope: ScopeComune, RegionID: sp("12"), ProvinceID: sp("058"), ComuneID: sp("000000")},
		"province id as comune":    {Scope: ScopeComune, RegionID: sp("12"), ProvinceID: sp("058"), ComuneID: sp("058")},
	}

	for name, intent := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := idx.AreasWithin(intent)
			assert.ErrorIs(t, err, ErrInvalidLocationIntent)
		})
	}
}

func TestAreasWithinUnknownIDIsNotFound(t *testing.T) {
	idx := loadIndex(t)

	_, err := idx.AreasWithin(LocationIntent{Scope: ScopeComune, RegionID: sp("12"), ProvinceID: sp("058"), ComuneID: sp("000000")})
	assert.ErrorIs(t, err, ErrInvalidLocationIntent)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = idx.AreasWithin(LocationIntent{Scope: ScopeComune, RegionID: sp("12"), ProvinceID: sp("059"), ComuneID: sp("058091")})
	assert.ErrorIs(t, err, ErrInvalidLocationIntent)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestNormalizeFillsLabels(t *testing.T) {
	idx := loadIndex(t)

	intent, err := idx.Normalize(LocationIntent{Scope: ScopeProvince, RegionID: sp("12"), ProvinceID: sp("058")})
	require.NoError(t, err)
	assert.Equal(t, "Roma", intent.Label)
	assert.Equal(t, "Lazio", *intent.SecondaryLabel)

	intent, err = idx.Normalize(LocationIntent{Scope: ScopeComune, RegionID: sp("12"), ProvinceID: sp("058"), ComuneID: sp("058091"), Label: "Roma Capitale"})
	require.NoError(t, err)
	assert.Equal(t, "Roma Capitale", intent.Label)
	assert.Equal(t, "Roma (RM)", *intent.SecondaryLabel)
}

func TestSuggest(t *testing.T) {
	idx := loadIndex(t)

	got := idx.Suggest("roma", 5)
	require.Len(t, got, 2)
	assert.Equal(t, ScopeComune, got[0].Scope)
	assert.Equal(t, ScopeProvince, got[1].Scope)

	got = idx.Suggest("AO", 1)
	require.Len(t, got, 1)
	assert.Equal(t, ScopeProvince, got[0].Scope)
	assert.Equal(t, "007", *got[0].ProvinceID)

	got = idx.Suggest("valle d aosta", 3)
	assert.Empty(t, got)

	got = idx.Suggest("VALLE D'AOSTA", 3)
	require.Len(t, got, 1)
	assert.Equal(t, ScopeRegion, got[0].Scope)

	assert.Nil(t, idx.Suggest("   ", 3))
}
