package reco

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	CacheHitsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "reco_cache_hits_total",
			Help: "Count of recommendation cache hits.",
		},
	)

	CacheMissesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "reco_cache_misses_total",
			Help: "Count of recommendation cache misses.",
		},
	)

	PipelineOutcomesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reco_pipeline_outcomes_total",
			Help: "Count of full pipeline runs by outcome.",
		},
		[]string{"outcome"},
	)
)

func init() {
	prometheus.MustRegister(
		CacheHitsTotal,
		CacheMissesTotal,
		PipelineOutcomesTotal,
	)
}
