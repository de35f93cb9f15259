package search

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Emacore17/adottaungatto-it-sub001/geo"
	"github.com/Emacore17/adottaungatto-it-sub001/listings"
	log "github.com/Emacore17/adottaungatto-it-sub001/pkg/logger"
	"github.com/Emacore17/adottaungatto-it-sub001/pkg/metrics"
	"go.uber.org/zap"
)

// Resolver runs a search, widening the geography when the requested area
// has no matches. It keeps no state between calls.
type Resolver struct {
	geo    *geo.Index
	source ListingSource
	policy Policy
}

func NewResolver(index *geo.Index, source ListingSource, policy Policy) *Resolver {
	return &Resolver{geo: index, source: source, policy: policy}
}

// resolution holds what one Resolve call has already fetched, keyed by area set.
type resolution struct {
	source  ListingSource
	filters Filters
	matcher *Matcher
	memo    map[string][]listings.Listing
}

// level is a fallback level made concrete for one request.
type level struct {
	level     FallbackLevel
	areas     geo.AreaSet
	intent    geo.LocationIntent
	nearbyIDs []string
}

func (r *Resolver) Resolve(ctx context.Context, req Request) (*ResultPage, error) {
	started := time.Now()
	page, err := r.resolve(ctx, req)
	metrics.SearchDurationSeconds.Observe(time.Since(started).Seconds())

	if err != nil {
		metrics.SearchFailuresTotal.WithLabelValues(failureKind(err)).Inc()
		return nil, err
	}

	reason := ""
	if page.Metadata.FallbackReason != nil {
		reason = string(*page.Metadata.FallbackReason)
	}
	metrics.SearchResolutionsTotal.WithLabelValues(string(page.Metadata.FallbackLevel), reason).Inc()

	return page, nil
}

func (r *Resolver) resolve(ctx context.Context, req Request) (*ResultPage, error) {
	if err := req.Filters.Validate(); err != nil {
		return nil, err
	}

	run := &resolution{
		source:  r.source,
		filters: req.Filters,
		matcher: NewMatcher(req.Filters),
		memo:    make(map[string][]listings.Listing),
	}

	if req.Location == nil {
		matched, err := run.collect(ctx, LevelItaly, geo.AllAreas())
		if err != nil {
			return nil, err
		}
		reason := ReasonNoLocationFilter
		return r.page(run, matched, req, Metadata{FallbackLevel: LevelNone, FallbackReason: &reason}), nil
	}

	requested, err := r.geo.Normalize(*req.Location)
	if err != nil {
		return nil, err
	}
	anchor, err := r.geo.Anchor(requested)
	if err != nil {
		return nil, err
	}
	areas, err := r.geo.AreasWithin(requested)
	if err != nil {
		return nil, err
	}

	cur := level{level: InitialLevel(&requested), areas: areas, intent: requested}
	nearbyAvailable := anchor.Province != nil
	meta := Metadata{FallbackLevel: LevelNone, RequestedLocationIntent: &requested}

	var matched []listings.Listing
	for {
		matched, err = run.collect(ctx, cur.level, cur.areas)
		if err != nil {
			return nil, err
		}

		state := State{Level: cur.level, Count: len(matched), UnconstrainedCount: -1, NearbyAvailable: nearbyAvailable}
		if state.Count < r.policy.minMatches() && cur.level != LevelItaly {
			all, err := run.collect(ctx, LevelItaly, geo.AllAreas())
			if err != nil {
				return nil, err
			}
			state.UnconstrainedCount = len(all)
		}

		d := r.policy.Decide(state)
		if d.Stop {
			if d.Reason == ReasonNoExactMatch {
				matched = nil
				cur = level{level: LevelItaly, areas: geo.AllAreas(), intent: r.geo.IntentFor(geo.ScopeItaly, anchor)}
				meta.FallbackApplied = true
				meta.FallbackReason = reasonPtr(d.Reason)
			}
			break
		}

		next, err := r.widen(d.Next, anchor, nearbyAvailable)
		if err != nil {
			return nil, err
		}
		log.Logger().Debug("search widened",
			zap.String("from", string(cur.level)),
			zap.String("to", string(next.level)),
			zap.String("reason", string(d.Reason)),
			zap.Int("count", state.Count))

		cur = next
		meta.FallbackApplied = true
		meta.FallbackReason = reasonPtr(d.Reason)
	}

	if meta.FallbackApplied {
		meta.FallbackLevel = cur.level
	}
	effective := cur.intent
	meta.EffectiveLocationIntent = &effective
	if cur.level == LevelNearby {
		radius := r.policy.NearbyRadiusKm
		meta.NearbyProvinceIDs = cur.nearbyIDs
		meta.NearbyRadiusKm = &radius
	}

	return r.page(run, matched, req, meta), nil
}

// widen makes the proposed level concrete. A level denoting the same comuni
// as the next administrative level up is reported as that wider level.
func (r *Resolver) widen(proposed FallbackLevel, anchor geo.Ancestors, nearbyAvailable bool) (level, error) {
	next, err := r.levelFor(proposed, anchor)
	if err != nil {
		return level{}, err
	}

	for next.level != LevelNearby {
		up := r.policy.wider(next.level, nearbyAvailable)
		if up == LevelNearby || up == LevelItaly || up == next.level {
			break
		}
		candidate, err := r.levelFor(up, anchor)
		if err != nil {
			return level{}, err
		}
		if !candidate.areas.Equal(next.areas) {
			break
		}
		next = candidate
	}

	return next, nil
}

func (r *Resolver) levelFor(l FallbackLevel, anchor geo.Ancestors) (level, error) {
	switch l {
	case LevelItaly:
		return level{level: l, areas: geo.AllAreas(), intent: r.geo.IntentFor(geo.ScopeItaly, anchor)}, nil
	case LevelNearby:
		origin := anchor.Province
		if anchor.Comune != nil {
			origin = anchor.Comune
		}
		near, err := r.geo.NearbyProvinces(origin.ID, r.policy.NearbyRadiusKm)
		if err != nil {
			return level{}, err
		}
		ids := make([]string, 0, len(near))
		for _, p := range near {
			ids = append(ids, p.ProvinceID)
		}
		areas, err := r.geo.AreasInProvinces(ids)
		if err != nil {
			return level{}, err
		}
		intent := r.geo.IntentFor(geo.ScopeProvince, anchor)
		intent.Label = fmt.Sprintf("Entro %g km da %s", r.policy.NearbyRadiusKm, origin.Name)
		return level{level: l, areas: areas, intent: intent, nearbyIDs: ids}, nil
	}

	intent := r.geo.IntentFor(l.scope(), anchor)
	areas, err := r.geo.AreasWithin(intent)
	if err != nil {
		return level{}, err
	}
	return level{level: l, areas: areas, intent: intent}, nil
}

// collect fetches and filters the listings of one area set. Each set is
// fetched at most once per call.
func (run *resolution) collect(ctx context.Context, l FallbackLevel, areas geo.AreaSet) ([]listings.Listing, error) {
	key := setKey(areas)
	if got, ok := run.memo[key]; ok {
		return got, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	metrics.SourceQueriesTotal.WithLabelValues(string(l)).Inc()
	candidates, err := run.source.Candidates(ctx, areas, run.filters)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %s", ErrUpstreamUnavailable, err)
	}

	matched := make([]listings.Listing, 0, len(candidates))
	for _, c := range candidates {
		if run.matcher.Matches(c, areas) {
			matched = append(matched, c)
		}
	}
	run.memo[key] = matched

	return matched, nil
}

func (r *Resolver) page(run *resolution, matched []listings.Listing, req Request, meta Metadata) *ResultPage {
	sorted := make([]listings.Listing, len(matched))
	copy(sorted, matched)
	SortListings(sorted, req.Filters.Sort, run.matcher)

	start, end, pagination := Paginate(len(sorted), req.Limit, req.Offset)

	items := make([]listings.Summary, 0, end-start)
	for _, l := range sorted[start:end] {
		items = append(items, listings.Summarize(l, r.place(l)))
	}

	return &ResultPage{Items: items, Pagination: pagination, Metadata: meta}
}

func (r *Resolver) place(l listings.Listing) listings.Place {
	anc, err := r.geo.ResolveAncestors(l.ComuneID)
	if err != nil || anc.Comune == nil {
		return listings.Place{}
	}
	p := listings.Place{ComuneName: anc.Comune.Name, RegionName: anc.Region.Name}
	if anc.Province != nil {
		p.ProvinceCode = anc.Province.Code
	}
	return p
}

func setKey(areas geo.AreaSet) string {
	if areas.All {
		return "*"
	}
	return strings.Join(areas.ComuneIDs(), ",")
}

func reasonPtr(r FallbackReason) *FallbackReason {
	return &r
}

func failureKind(err error) string {
	switch {
	case errors.Is(err, geo.ErrInvalidLocationIntent):
		return "invalid_location_intent"
	case errors.Is(err, ErrInvalidFilterRange), errors.Is(err, ErrInvalidSort):
		return "invalid_filters"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "cancelled"
	case errors.Is(err, ErrUpstreamUnavailable):
		return "upstream_unavailable"
	}
	return "other"
}
