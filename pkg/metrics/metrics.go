// Package metrics menyediakan Prometheus metrics untuk caregiver-backend.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// summaryRequestsTotal menghitung request shift summary.
	// Label status: ok, bad_request, error.
	summaryRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shift_summary_requests_total",
			Help: "Total number of shift start summary requests",
		},
		[]string{"status"},
	)

	summaryDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "shift_summary_duration_seconds",
			Help:    "Duration of shift start summary computation in seconds",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
	)

	// storeOperationsTotal menghitung operasi document store.
	// Label op: get, set, list, delete. Label status: ok, error.
	storeOperationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "docstore_operations_total",
			Help: "Total number of document store operations",
		},
		[]string{"op", "status"},
	)
)

func init() {
	prometheus.MustRegister(summaryRequestsTotal)
	prometheus.MustRegister(summaryDuration)
	prometheus.MustRegister(storeOperationsTotal)
}

func RecordSummaryRequest(status string) {
	summaryRequestsTotal.WithLabelValues(status).Inc()
}

func ObserveSummaryDuration(seconds float64) {
	summaryDuration.Observe(seconds)
}

// RecordStoreOperation mencatat satu operasi store; err nil berarti status ok.
func RecordStoreOperation(op string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	storeOperationsTotal.WithLabelValues(op, status).Inc()
}
