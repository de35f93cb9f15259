package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SearchResolutionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "search_resolutions_total",
		Help: "Completed searches by effective fallback level and reason",
	}, []string{"fallback_level", "fallback_reason"})

	SearchFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "search_failures_total",
		Help: "Searches aborted by an error",
	}, []string{"kind"})

	SearchDurationSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "search_resolve_duration_seconds",
		Help:    "Time spent resolving a search including every fallback level",
		Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	})

	SourceQueriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "search_source_queries_total",
		Help: "Listing source queries issued per fallback level",
	}, []string{"fallback_level"})

	ConsumedMessagesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "listing_events_consumed_total",
		Help: "Listing lifecycle events consumed by the indexer",
	}, []string{"topic", "event"})
)
