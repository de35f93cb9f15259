package search

import "github.com/Emacore17/adottaungatto-it-sub001/geo"

const (
	DefaultNearbyRadiusKm = 80.0
	DefaultMinMatches     = 1
)

// Policy decides when and how far to widen the geography. It only looks at
// counts; it never touches listings or the geography index.
type Policy struct {
	// MinMatches is the count a level needs to be accepted.
	MinMatches int
	// NearbyRadiusKm bounds the nearby level around the requested area.
	NearbyRadiusKm float64
}

func DefaultPolicy() Policy {
	return Policy{MinMatches: DefaultMinMatches, NearbyRadiusKm: DefaultNearbyRadiusKm}
}

// State is what the policy knows about the level just queried.
type State struct {
	Level FallbackLevel
	Count int
	// UnconstrainedCount is the count with every filter but geography.
	// Negative when it has not been computed.
	UnconstrainedCount int
	// NearbyAvailable is set when the request names a comune or province
	// to measure distances from.
	NearbyAvailable bool
}

type Decision struct {
	Stop   bool
	Next   FallbackLevel
	Reason FallbackReason
}

// InitialLevel is the level matching the requested scope, italy when the
// request has no location.
func InitialLevel(intent *geo.LocationIntent) FallbackLevel {
	if intent == nil {
		return LevelItaly
	}
	switch intent.Scope {
	case geo.ScopeComune:
		return LevelComune
	case geo.ScopeComunePlusProvince:
		return LevelComunePlusProvince
	case geo.ScopeProvince:
		return LevelProvince
	case geo.ScopeRegion:
		return LevelRegion
	}
	return LevelItaly
}

func (p Policy) minMatches() int {
	if p.MinMatches < 1 {
		return DefaultMinMatches
	}
	return p.MinMatches
}

// Decide returns the next step from s. Widening stops at the first level
// with enough matches and at italy whatever its count. When nothing matches
// even without geography, it stops with NO_EXACT_MATCH and Next=italy.
func (p Policy) Decide(s State) Decision {
	if s.Level == LevelItaly || s.Level == LevelNone {
		return Decision{Stop: true}
	}
	if s.Count >= p.minMatches() {
		return Decision{Stop: true}
	}
	if s.UnconstrainedCount == 0 {
		return Decision{Stop: true, Next: LevelItaly, Reason: ReasonNoExactMatch}
	}

	next := p.wider(s.Level, s.NearbyAvailable)
	reason := ReasonWidenedToParentArea
	if next == LevelNearby {
		reason = ReasonWidenedToNearbyArea
	}
	return Decision{Next: next, Reason: reason}
}

// wider is the administrative ladder with nearby between province and region.
func (p Policy) wider(l FallbackLevel, nearbyAvailable bool) FallbackLevel {
	switch l {
	case LevelComune:
		return LevelComunePlusProvince
	case LevelComunePlusProvince:
		return LevelProvince
	case LevelProvince:
		if nearbyAvailable && p.NearbyRadiusKm > 0 {
			return LevelNearby
		}
		return LevelRegion
	case LevelNearby:
		return LevelRegion
	}
	return LevelItaly
}

func (l FallbackLevel) scope() geo.Scope {
	switch l {
	case LevelComune:
		return geo.ScopeComune
	case LevelComunePlusProvince:
		return geo.ScopeComunePlusProvince
	case LevelProvince:
		return geo.ScopeProvince
	case LevelRegion:
		return geo.ScopeRegion
	}
	return geo.ScopeItaly
}
