package metrics

import "github.com/prometheus/client_golang/prometheus"

// Pipeline metrics. Registered explicitly from the composition root via
// RegisterPipelineMetrics (no init()).
var (
	QueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shoplens",
			Name:      "queries_total",
			Help:      "Total queries processed, by detected intent and outcome",
		},
		[]string{"intent", "outcome"},
	)

	SearchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "shoplens",
			Name:      "search_duration_seconds",
			Help:      "Retrieval stage duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
	)

	LLMDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "shoplens",
			Name:      "llm_duration_seconds",
			Help:      "LLM generation duration in seconds",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
	)

	RetrievalStageTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shoplens",
			Name:      "retrieval_stage_total",
			Help:      "Retrieval fallback stages executed",
		},
		[]string{"stage"},
	)

	LLMRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shoplens",
			Name:      "llm_requests_total",
			Help:      "LLM API requests by status",
		},
		[]string{"model", "status"},
	)

	IndexedDocuments = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "shoplens",
			Name:      "indexed_documents",
			Help:      "Documents pushed to the search index by the last rebuild",
		},
	)
)

// RegisterPipelineMetrics registers pipeline metrics with the default registry.
func RegisterPipelineMetrics() {
	prometheus.MustRegister(
		QueriesTotal,
		SearchDuration,
		LLMDuration,
		RetrievalStageTotal,
		LLMRequestsTotal,
		IndexedDocuments,
	)
}
