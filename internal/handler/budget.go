package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/expensevault/expensevault/internal/auth"
	"github.com/expensevault/expensevault/internal/handler/dto"
	"github.com/expensevault/expensevault/internal/repository"
	"github.com/expensevault/expensevault/internal/service"
)

// BudgetHandler handles HTTP requests for budget records.
type BudgetHandler struct {
	svc    *service.BudgetService
	logger *slog.Logger
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(svc *service.BudgetService, logger *slog.Logger) *BudgetHandler {
	return &BudgetHandler{
		svc:    svc,
		logger: logger,
	}
}

// List handles GET /api/budgets.
func (h *BudgetHandler) List(w http.ResponseWriter, r *http.Request) {
	ownerID := auth.MustUserIDFromContext(r.Context())

	budgets, err := h.svc.List(r.Context(), ownerID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToBudgetResponses(budgets))
}

// Create handles POST /api/budgets.
func (h *BudgetHandler) Create(w http.ResponseWriter, r *http.Request) {
	ownerID := auth.MustUserIDFromContext(r.Context())

	var req dto.BudgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	b, err := h.svc.Create(r.Context(), ownerID, budgetInput(req))
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("budget_created", "budget_id", b.ID)

	writeJSON(w, http.StatusCreated, dto.ToBudgetResponse(b))
}

// Update handles PUT /api/budgets/{id}.
func (h *BudgetHandler) Update(w http.ResponseWriter, r *http.Request) {
	ownerID := auth.MustUserIDFromContext(r.Context())

	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "MISSING_ID", "Budget ID is required")
		return
	}

	var req dto.BudgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	b, err := h.svc.Update(r.Context(), ownerID, id, budgetInput(req))
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("budget_updated", "budget_id", b.ID)

	writeJSON(w, http.StatusOK, dto.ToBudgetResponse(b))
}

// Delete handles DELETE /api/budgets/{id}.
func (h *BudgetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ownerID := auth.MustUserIDFromContext(r.Context())

	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "MISSING_ID", "Budget ID is required")
		return
	}

	if err := h.svc.Delete(r.Context(), ownerID, id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("budget_deleted", "budget_id", id)

	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "Budget deleted"})
}

func budgetInput(req dto.BudgetRequest) service.BudgetInput {
	return service.BudgetInput{
		Name:         req.Name,
		BudgetAmount: req.BudgetAmountValue(),
		SpentAmount:  req.SpentAmountValue(),
	}
}

// handleServiceError maps budget errors to HTTP responses.
func (h *BudgetHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrBudgetNameRequired),
		errors.Is(err, service.ErrInvalidBudgetAmount),
		errors.Is(err, service.ErrNegativeSpentAmount):
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, repository.ErrBudgetNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Budget not found")
	default:
		h.logger.Error("internal_error", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}
