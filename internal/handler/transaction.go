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

// TransactionHandler handles HTTP requests for transaction records.
type TransactionHandler struct {
	svc    *service.TransactionService
	logger *slog.Logger
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(svc *service.TransactionService, logger *slog.Logger) *TransactionHandler {
	return &TransactionHandler{
		svc:    svc,
		logger: logger,
	}
}

// List handles GET /api/expenses.
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	ownerID := auth.MustUserIDFromContext(r.Context())

	transactions, err := h.svc.List(r.Context(), ownerID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, transactions)
}

// Create handles POST /api/expenses.
func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	ownerID := auth.MustUserIDFromContext(r.Context())

	var req dto.TransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	tx, err := h.svc.Create(r.Context(), ownerID, transactionInput(req))
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("transaction_created",
		"transaction_id", tx.ID,
		"type", tx.Type,
	)

	writeJSON(w, http.StatusCreated, tx)
}

// Update handles PUT /api/expenses/{id}.
func (h *TransactionHandler) Update(w http.ResponseWriter, r *http.Request) {
	ownerID := auth.MustUserIDFromContext(r.Context())

	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "MISSING_ID", "Transaction ID is required")
		return
	}

	var req dto.TransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	tx, err := h.svc.Update(r.Context(), ownerID, id, transactionInput(req))
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("transaction_updated", "transaction_id", tx.ID)

	writeJSON(w, http.StatusOK, tx)
}

// Delete handles DELETE /api/expenses/{id}.
func (h *TransactionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ownerID := auth.MustUserIDFromContext(r.Context())

	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "MISSING_ID", "Transaction ID is required")
		return
	}

	if err := h.svc.Delete(r.Context(), ownerID, id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("transaction_deleted", "transaction_id", id)

	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "Transaction deleted"})
}

func transactionInput(req dto.TransactionRequest) service.TransactionInput {
	return service.TransactionInput{
		Type:      req.Type,
		Title:     req.Title,
		Amount:    req.AmountValue(),
		Category:  req.Category,
		Date:      req.DateValue(),
		Recurring: req.Recurring,
	}
}

// handleServiceError maps transaction errors to HTTP responses.
// Not-found covers foreign-owned records too; the caller cannot tell
// the difference.
func (h *TransactionHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidTransactionType),
		errors.Is(err, service.ErrTitleRequired),
		errors.Is(err, service.ErrInvalidAmount),
		errors.Is(err, service.ErrCategoryRequired),
		errors.Is(err, service.ErrInvalidTransactionDate):
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, repository.ErrTransactionNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Transaction not found")
	default:
		h.logger.Error("internal_error", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}
