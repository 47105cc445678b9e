package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ScansTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "metaradar_scans_total",
			Help: "Total number of scans by outcome",
		},
		[]string{"outcome"},
	)

	HarvestFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "metaradar_harvest_failures_total",
			Help: "Total number of failed harvest feed calls",
		},
		[]string{"source"},
	)

	EnrichmentBatches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "metaradar_enrichment_batches_total",
			Help: "Total number of enrichment batch lookups by outcome",
		},
		[]string{"outcome"},
	)

	NarrativeRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "metaradar_narrative_requests_total",
			Help: "Total number of narrative generations by outcome",
		},
		[]string{"outcome"},
	)
)
