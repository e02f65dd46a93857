package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/expensevault/expensevault/internal/auth"
	"github.com/expensevault/expensevault/internal/handler/dto"
	"github.com/expensevault/expensevault/internal/service"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// postTransaction drives Create with an authenticated request carrying
// the given body.
func postTransaction(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()

	h := NewTransactionHandler(
		service.NewTransactionService(nil, nil, nil, discardLogger()),
		discardLogger(),
	)

	req := httptest.NewRequest(http.MethodPost, "/api/expenses", strings.NewReader(body))
	req = req.WithContext(auth.ContextWithUserID(req.Context(), "owner-1"))

	rec := httptest.NewRecorder()
	h.Create(rec, req)
	return rec
}

// A field that fails to parse counts as absent, so the fixed
// validation order decides which error the client sees. Only a body
// that is not JSON at all is rejected outright.
func TestTransactionCreate_FieldErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		body     string
		wantCode string
		wantMsg  string
	}{
		{
			name:     "garbage amount reported as invalid amount",
			body:     `{"type":"Expense","title":"Coffee","amount":"abc","category":"Food","date":"2025-06-01"}`,
			wantCode: "VALIDATION_ERROR",
			wantMsg:  "amount must be greater than 0",
		},
		{
			name:     "garbage date reported as invalid date",
			body:     `{"type":"Expense","title":"Coffee","amount":4.50,"category":"Food","date":"not-a-date"}`,
			wantCode: "VALIDATION_ERROR",
			wantMsg:  "valid date is required",
		},
		{
			name:     "earlier field wins over garbage date",
			body:     `{"type":"Expense","title":"","amount":4.50,"category":"Food","date":"not-a-date"}`,
			wantCode: "VALIDATION_ERROR",
			wantMsg:  "title is required",
		},
		{
			name:     "amount null counts as absent",
			body:     `{"type":"Expense","title":"Coffee","amount":null,"category":"Food","date":"2025-06-01"}`,
			wantCode: "VALIDATION_ERROR",
			wantMsg:  "amount must be greater than 0",
		},
		{
			name:     "non-json body rejected outright",
			body:     `{"type":`,
			wantCode: "INVALID_JSON",
			wantMsg:  "Invalid request body",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := postTransaction(t, tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}

			var body dto.ErrorResponse
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", body.Code, tt.wantCode)
			}
			if body.Error != tt.wantMsg {
				t.Errorf("error = %q, want %q", body.Error, tt.wantMsg)
			}
		})
	}
}
