package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Record(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveRecalculation(10*time.Millisecond, 2)
	m.ObserveRecalculation(5*time.Millisecond, 0)
	m.AddAllocatedShares(3)
	m.IncBudgetNotifications()
	m.AddImportedRows(4, 1)
	m.ObserveRPC("/prosperpath.v1.EventService/CreateBill", "ok", time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.recalculations))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.skippedBills))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.allocatedShares))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.budgetNotifications))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.importedRows.WithLabelValues("parsed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.importedRows.WithLabelValues("skipped")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rpcRequests.WithLabelValues("/prosperpath.v1.EventService/CreateBill", "ok")))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveRPC("p", "ok", time.Second)
		m.ObserveRecalculation(time.Second, 1)
		m.AddAllocatedShares(1)
		m.IncBudgetNotifications()
		m.IncPublishFailures()
		m.AddImportedRows(1, 1)
	})
}
