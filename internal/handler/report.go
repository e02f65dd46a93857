package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/expensevault/expensevault/internal/auth"
	"github.com/expensevault/expensevault/internal/metrics"
	"github.com/expensevault/expensevault/internal/report"
	"github.com/expensevault/expensevault/internal/service"
)

// ReportHandler serves derived summary views.
type ReportHandler struct {
	transactions *service.TransactionService
	metrics      metrics.Recorder
	logger       *slog.Logger
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(transactions *service.TransactionService, recorder metrics.Recorder, logger *slog.Logger) *ReportHandler {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &ReportHandler{
		transactions: transactions,
		metrics:      recorder,
		logger:       logger,
	}
}

// Summary handles GET /api/reports/summary.
// The summary is recomputed from the owner's full transaction list on
// every request; nothing derived is stored.
func (h *ReportHandler) Summary(w http.ResponseWriter, r *http.Request) {
	ownerID := auth.MustUserIDFromContext(r.Context())

	list, err := h.transactions.List(r.Context(), ownerID)
	if err != nil {
		h.logger.Error("internal_error", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
		return
	}

	start := time.Now()
	summary := report.BuildSummary(list, time.Now().UTC())
	h.metrics.ObserveReportDuration(time.Since(start))

	writeJSON(w, http.StatusOK, summary)
}
