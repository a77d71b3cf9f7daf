// Package metrics registers the Prometheus instruments for the fee ledger.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricPrefix = "eps_"

const (
	ResultSuccess  = "success"
	ResultRejected = "rejected"
	ResultError    = "error"
)

var (
	registerOnce sync.Once

	reconcileBatches *prometheus.CounterVec
	reconcileEntries prometheus.Counter
	reconcileLatency prometheus.Histogram

	studentsAdmitted prometheus.Counter
)

// Init registers the ledger metrics with the default registry.
func Init() {
	registerOnce.Do(func() {
		reconcileBatches = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "fee_reconcile_batches_total",
				Help: "Total fee reconciliation batches by result",
			},
			[]string{"result"},
		)
		reconcileEntries = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: metricPrefix + "fee_history_entries_appended_total",
				Help: "Total fee history entries appended by reconciliation",
			},
		)
		reconcileLatency = prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "fee_reconcile_latency_seconds",
				Help:    "Latency of fee reconciliation batches",
				Buckets: prometheus.DefBuckets,
			},
		)
		studentsAdmitted = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: metricPrefix + "students_admitted_total",
				Help: "Total student records created",
			},
		)

		prometheus.MustRegister(reconcileBatches, reconcileEntries, reconcileLatency, studentsAdmitted)
	})
}

// ObserveReconcile records the outcome of one reconciliation batch.
func ObserveReconcile(result string, entries int, elapsed time.Duration) {
	if reconcileBatches == nil {
		return
	}
	reconcileBatches.WithLabelValues(result).Inc()
	if entries > 0 {
		reconcileEntries.Add(float64(entries))
	}
	reconcileLatency.Observe(elapsed.Seconds())
}

// StudentAdmitted counts a newly created student record.
func StudentAdmitted() {
	if studentsAdmitted == nil {
		return
	}
	studentsAdmitted.Inc()
}
