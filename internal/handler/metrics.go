package handler

import (
	"fmt"
	"net/http"

	"github.com/expensevault/expensevault/internal/metrics"
)

// MetricsHandler exposes in-memory metrics.
type MetricsHandler struct {
	snapshotter metrics.Snapshotter
}

// NewMetricsHandler creates a new MetricsHandler.
func NewMetricsHandler(snapshotter metrics.Snapshotter) *MetricsHandler {
	return &MetricsHandler{snapshotter: snapshotter}
}

// Metrics returns metrics in Prometheus exposition format.
func (h *MetricsHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	if h.snapshotter == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	snap := h.snapshotter.Snapshot()

	w.Header().Set("Content-Type", "text/plain; version=0.0.4")

	writeMetric(w, "expensevault_users_registered_total %d\n", snap.UsersRegistered)
	writeMetric(w, "expensevault_logins_total{status=\"success\"} %d\n", snap.LoginsSucceeded)
	writeMetric(w, "expensevault_logins_total{status=\"failed\"} %d\n", snap.LoginsFailed)

	writeMetric(w, "expensevault_record_list_cache_hits_total %d\n", snap.RecordListCacheHits)
	writeMetric(w, "expensevault_record_list_cache_misses_total %d\n", snap.RecordListCacheMisses)

	writeMetric(w, "expensevault_transactions_created_total %d\n", snap.TransactionsCreated)
	writeMetric(w, "expensevault_transactions_updated_total %d\n", snap.TransactionsUpdated)
	writeMetric(w, "expensevault_transactions_deleted_total %d\n", snap.TransactionsDeleted)

	writeMetric(w, "expensevault_budgets_created_total %d\n", snap.BudgetsCreated)
	writeMetric(w, "expensevault_budgets_updated_total %d\n", snap.BudgetsUpdated)
	writeMetric(w, "expensevault_budgets_deleted_total %d\n", snap.BudgetsDeleted)

	writeMetric(w, "expensevault_report_duration_seconds_count %d\n", snap.ReportCount)
	writeMetric(w, "expensevault_report_duration_seconds_sum %.6f\n", float64(snap.ReportDurationTotalNs)/1e9)
}

func writeMetric(w http.ResponseWriter, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
