package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/expensevault/expensevault/internal/auth"
	"github.com/expensevault/expensevault/internal/handler/dto"
	"github.com/expensevault/expensevault/internal/service"
)

func postBudget(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()

	h := NewBudgetHandler(
		service.NewBudgetService(nil, nil, nil, discardLogger()),
		discardLogger(),
	)

	req := httptest.NewRequest(http.MethodPost, "/api/budgets", strings.NewReader(body))
	req = req.WithContext(auth.ContextWithUserID(req.Context(), "owner-1"))

	rec := httptest.NewRecorder()
	h.Create(rec, req)
	return rec
}

func TestBudgetCreate_FieldErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		body     string
		wantCode string
		wantMsg  string
	}{
		{
			name:     "garbage budget amount reported as invalid amount",
			body:     `{"name":"Groceries","budget_amount":"abc"}`,
			wantCode: "VALIDATION_ERROR",
			wantMsg:  "budget amount must be greater than 0",
		},
		{
			name:     "garbage amounts do not mask a missing name",
			body:     `{"name":"","budget_amount":"abc","spent_amount":"xyz"}`,
			wantCode: "VALIDATION_ERROR",
			wantMsg:  "name is required",
		},
		{
			name:     "negative spent amount rejected",
			body:     `{"name":"Groceries","budget_amount":200,"spent_amount":-5}`,
			wantCode: "VALIDATION_ERROR",
			wantMsg:  "spent amount cannot be negative",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := postBudget(t, tt.body)
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
