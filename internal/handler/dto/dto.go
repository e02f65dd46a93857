// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import (
	"encoding/json"
	"time"

	"github.com/expensevault/expensevault/internal/model"
)

// SignupRequest represents the request body for creating an account.
type SignupRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents the request body for authenticating.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse carries a bearer token and the public user identity.
type AuthResponse struct {
	Token string           `json:"token"`
	User  model.PublicUser `json:"user"`
}

// TransactionRequest represents the request body for creating or
// replacing a transaction. Pointer fields let validation tell a
// missing field from a zero value. Amount and Date are decoded
// leniently: a value that fails to parse reads back as absent, so the
// field validators report it in order instead of the whole body being
// rejected.
type TransactionRequest struct {
	Type      *model.TransactionType `json:"type"`
	Title     *string                `json:"title"`
	Amount    json.RawMessage        `json:"amount"`
	Category  *string                `json:"category"`
	Date      json.RawMessage        `json:"date"`
	Recurring *bool                  `json:"recurring,omitempty"`
}

// AmountValue returns the parsed amount, or nil when the field is
// absent or not a valid amount.
func (r TransactionRequest) AmountValue() *model.Money {
	return moneyValue(r.Amount)
}

// DateValue returns the parsed date, or nil when the field is absent
// or not a valid date.
func (r TransactionRequest) DateValue() *model.Date {
	if len(r.Date) == 0 {
		return nil
	}
	var d model.Date
	if err := json.Unmarshal(r.Date, &d); err != nil {
		return nil
	}
	return &d
}

// BudgetRequest represents the request body for creating or replacing
// a budget. SpentAmount may be omitted and defaults to zero. The two
// amount fields are decoded leniently the same way as
// TransactionRequest.
type BudgetRequest struct {
	Name         *string         `json:"name"`
	BudgetAmount json.RawMessage `json:"budget_amount"`
	SpentAmount  json.RawMessage `json:"spent_amount,omitempty"`
}

// BudgetAmountValue returns the parsed budget amount, or nil when the
// field is absent or not a valid amount.
func (r BudgetRequest) BudgetAmountValue() *model.Money {
	return moneyValue(r.BudgetAmount)
}

// SpentAmountValue returns the parsed spent amount, or nil when the
// field is absent or not a valid amount.
func (r BudgetRequest) SpentAmountValue() *model.Money {
	return moneyValue(r.SpentAmount)
}

func moneyValue(raw json.RawMessage) *model.Money {
	if len(raw) == 0 {
		return nil
	}
	var m model.Money
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil
	}
	return &m
}

// BudgetResponse represents a budget in API responses.
// PercentSpent is derived server-side for convenience.
type BudgetResponse struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	BudgetAmount model.Money `json:"budget_amount"`
	SpentAmount  model.Money `json:"spent_amount"`
	PercentSpent float64     `json:"percent_spent"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// MessageResponse carries a short human-readable confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an API error.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// ToBudgetResponse converts a Budget model to BudgetResponse DTO.
func ToBudgetResponse(b *model.Budget) *BudgetResponse {
	return &BudgetResponse{
		ID:           b.ID,
		Name:         b.Name,
		BudgetAmount: b.BudgetAmount,
		SpentAmount:  b.SpentAmount,
		PercentSpent: b.PercentSpent(),
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

// ToBudgetResponses converts a budget list.
func ToBudgetResponses(budgets []*model.Budget) []*BudgetResponse {
	out := make([]*BudgetResponse, 0, len(budgets))
	for _, b := range budgets {
		out = append(out, ToBudgetResponse(b))
	}
	return out
}
