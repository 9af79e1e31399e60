// Package metrics defines the Prometheus collectors exported by ProsperPath.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds every collector. A nil *Metrics is valid and records nothing.
type Metrics struct {
	rpcRequests *prometheus.CounterVec
	rpcDuration *prometheus.HistogramVec

	recalculations      prometheus.Counter
	recalcDuration      prometheus.Histogram
	skippedBills        prometheus.Counter
	allocatedShares     prometheus.Counter
	budgetNotifications prometheus.Counter
	publishFailures     prometheus.Counter
	importedRows        *prometheus.CounterVec
}

// New registers the collectors with reg. Use prometheus.NewRegistry() in
// tests to avoid double registration.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		rpcRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "prosperpath_rpc_requests_total",
			Help: "Total number of RPC requests by procedure and result code",
		}, []string{"procedure", "code"}),
		rpcDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "prosperpath_rpc_duration_seconds",
			Help:    "Time taken to serve RPC requests",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}, []string{"procedure"}),
		recalculations: f.NewCounter(prometheus.CounterOpts{
			Name: "prosperpath_event_recalculations_total",
			Help: "Total number of event balance recalculations",
		}),
		recalcDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "prosperpath_event_recalculation_duration_seconds",
			Help:    "Time taken to rebuild the balances of one event",
			Buckets: []float64{.001, .005, .01, .05, .1, .25, .5, 1},
		}),
		skippedBills: f.NewCounter(prometheus.CounterOpts{
			Name: "prosperpath_bills_without_payer_total",
			Help: "Bills left out of the paid side of a recalculation because they have no payer",
		}),
		allocatedShares: f.NewCounter(prometheus.CounterOpts{
			Name: "prosperpath_bill_shares_allocated_total",
			Help: "Total number of bill participant shares written",
		}),
		budgetNotifications: f.NewCounter(prometheus.CounterOpts{
			Name: "prosperpath_budget_notifications_total",
			Help: "Total number of budget exceeded notifications created",
		}),
		publishFailures: f.NewCounter(prometheus.CounterOpts{
			Name: "prosperpath_event_publish_failures_total",
			Help: "Total number of budget events that could not be published",
		}),
		importedRows: f.NewCounterVec(prometheus.CounterOpts{
			Name: "prosperpath_import_rows_total",
			Help: "Statement rows seen by the importer by result",
		}, []string{"result"}),
	}
}

// ObserveRPC records one finished RPC.
func (m *Metrics) ObserveRPC(procedure, code string, d time.Duration) {
	if m == nil {
		return
	}
	m.rpcRequests.WithLabelValues(procedure, code).Inc()
	m.rpcDuration.WithLabelValues(procedure).Observe(d.Seconds())
}

// ObserveRecalculation records one finished balance rebuild.
func (m *Metrics) ObserveRecalculation(d time.Duration, skipped int) {
	if m == nil {
		return
	}
	m.recalculations.Inc()
	m.recalcDuration.Observe(d.Seconds())
	m.skippedBills.Add(float64(skipped))
}

// AddAllocatedShares counts written bill participant rows.
func (m *Metrics) AddAllocatedShares(n int) {
	if m == nil {
		return
	}
	m.allocatedShares.Add(float64(n))
}

// IncBudgetNotifications counts one created budget notification.
func (m *Metrics) IncBudgetNotifications() {
	if m == nil {
		return
	}
	m.budgetNotifications.Inc()
}

// IncPublishFailures counts one failed event publish.
func (m *Metrics) IncPublishFailures() {
	if m == nil {
		return
	}
	m.publishFailures.Inc()
}

// AddImportedRows counts statement rows that were parsed and skipped.
func (m *Metrics) AddImportedRows(parsed, skipped int) {
	if m == nil {
		return
	}
	m.importedRows.WithLabelValues("parsed").Add(float64(parsed))
	m.importedRows.WithLabelValues("skipped").Add(float64(skipped))
}
