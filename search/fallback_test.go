package search

import (
	"testing"

	"github.com/Emacore17/adottaungatto-it-sub001/geo"
	"github.com/stretchr/testify/assert"
)

func TestInitialLevel(t *testing.T) {
	assert.Equal(t, LevelItaly, InitialLevel(nil))
	assert.Equal(t, LevelComune, InitialLevel(&geo.LocationIntent{Scope: geo.ScopeComune}))
	assert.Equal(t, LevelComunePlusProvince, InitialLevel(&geo.LocationIntent{Scope: geo.ScopeComunePlusProvince}))
	assert.Equal(t, LevelProvince, InitialLevel(&geo.LocationIntent{Scope: geo.ScopeProvince}))
	assert.Equal(t, LevelRegion, InitialLevel(&geo.LocationIntent{Scope: geo.ScopeRegion}))
	assert.Equal(t, LevelItaly, InitialLevel(&geo.LocationIntent{Scope: geo.ScopeItaly}))
}

func TestPolicyLadder(t *testing.T) {
	p := DefaultPolicy()

	cases := []struct {
		from   FallbackLevel
		nearby bool
		next   FallbackLevel
		reason FallbackReason
	}{
		{LevelComune, true, LevelComunePlusProvince, ReasonWidenedToParentArea},
		{LevelComunePlusProvince, true, LevelProvince, ReasonWidenedToParentArea},
		{LevelProvince, true, LevelNearby, ReasonWidenedToNearbyArea},
		{LevelProvince, false, LevelRegion, ReasonWidenedToParentArea},
		{LevelNearby, true, LevelRegion, ReasonWidenedToParentArea},
		{LevelRegion, false, LevelItaly, ReasonWidenedToParentArea},
	}

	for _, c := range cases {
		d := p.Decide(State{Level: c.from, Count: 0, UnconstrainedCount: 4, NearbyAvailable: c.nearby})
		assert.False(t, d.Stop, "from %s", c.from)
		assert.Equal(t, c.next, d.Next, "from %s", c.from)
		assert.Equal(t, c.reason, d.Reason, "from %s", c.from)
	}
}

func TestPolicyStops(t *testing.T) {
	p := DefaultPolicy()

	assert.True(t, p.Decide(State{Level: LevelComune, Count: 1, UnconstrainedCount: -1}).Stop)
	assert.True(t, p.Decide(State{Level: LevelItaly, Count: 0, UnconstrainedCount: 0}).Stop)
	assert.True(t, p.Decide(State{Level: LevelNone}).Stop)

	d := p.Decide(State{Level: LevelComune, Count: 0, UnconstrainedCount: 0})
	assert.True(t, d.Stop)
	assert.Equal(t, LevelItaly, d.Next)
	assert.Equal(t, ReasonNoExactMatch, d.Reason)
}

func TestPolicyMinMatchesThreshold(t *testing.T) {
	p := Policy{MinMatches: 3, NearbyRadiusKm: 50}

	d := p.Decide(State{Level: LevelProvince, Count: 2, UnconstrainedCount: 10, NearbyAvailable: true})
	assert.False(t, d.Stop)
	assert.Equal(t, LevelNearby, d.Next)

	assert.True(t, p.Decide(State{Level: LevelProvince, Count: 3, UnconstrainedCount: 10}).Stop)
}

func TestPolicyWithoutRadiusSkipsNearby(t *testing.T) {
	p := Policy{MinMatches: 1}

	d := p.Decide(State{Level: LevelProvince, Count: 0, UnconstrainedCount: 1, NearbyAvailable: true})
	assert.Equal(t, LevelRegion, d.Next)
}

func TestLevelOrder(t *testing.T) {
	ordered := []FallbackLevel{LevelNone, LevelComune, LevelComunePlusProvince, LevelProvince, LevelRegion, LevelItaly, LevelNearby}
	for i := 1; i < len(ordered); i++ {
		assert.Less(t, ordered[i-1].Rank(), ordered[i].Rank())
	}
}
