package service

import (
	"errors"
	"testing"
	"time"

	"github.com/expensevault/expensevault/internal/model"
)

func typePtr(t model.TransactionType) *model.TransactionType { return &t }
func strPtr(s string) *string                                { return &s }
func moneyPtr(m model.Money) *model.Money                    { return &m }
func datePtr(d model.Date) *model.Date                       { return &d }

func validTransactionInput() TransactionInput {
	return TransactionInput{
		Type:     typePtr(model.TypeExpense),
		Title:    strPtr("Groceries"),
		Amount:   moneyPtr(model.Money(4250)),
		Category: strPtr("Food"),
		Date:     datePtr(model.DateOf(time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC))),
	}
}

func TestValidateTransactionInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modify  func(*TransactionInput)
		wantErr error
	}{
		{
			name:   "valid input",
			modify: func(in *TransactionInput) {},
		},
		{
			name:    "missing type",
			modify:  func(in *TransactionInput) { in.Type = nil },
			wantErr: ErrInvalidTransactionType,
		},
		{
			name:    "unknown type",
			modify:  func(in *TransactionInput) { in.Type = typePtr("Transfer") },
			wantErr: ErrInvalidTransactionType,
		},
		{
			name:    "missing title",
			modify:  func(in *TransactionInput) { in.Title = nil },
			wantErr: ErrTitleRequired,
		},
		{
			name:    "whitespace title",
			modify:  func(in *TransactionInput) { in.Title = strPtr("   ") },
			wantErr: ErrTitleRequired,
		},
		{
			name:    "missing amount",
			modify:  func(in *TransactionInput) { in.Amount = nil },
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "zero amount",
			modify:  func(in *TransactionInput) { in.Amount = moneyPtr(0) },
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "negative amount",
			modify:  func(in *TransactionInput) { in.Amount = moneyPtr(-100) },
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "missing category",
			modify:  func(in *TransactionInput) { in.Category = nil },
			wantErr: ErrCategoryRequired,
		},
		{
			name:    "missing date",
			modify:  func(in *TransactionInput) { in.Date = nil },
			wantErr: ErrInvalidTransactionDate,
		},
		{
			name:    "zero date",
			modify:  func(in *TransactionInput) { in.Date = &model.Date{} },
			wantErr: ErrInvalidTransactionDate,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			input := validTransactionInput()
			tt.modify(&input)

			err := ValidateTransactionInput(input)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

// The first failing field wins, even when later fields are also bad.
func TestValidateTransactionInput_Order(t *testing.T) {
	t.Parallel()

	input := TransactionInput{
		Type:   typePtr("bogus"),
		Amount: moneyPtr(-1),
	}
	if err := ValidateTransactionInput(input); !errors.Is(err, ErrInvalidTransactionType) {
		t.Fatalf("expected type error first, got %v", err)
	}

	input.Type = typePtr(model.TypeIncome)
	if err := ValidateTransactionInput(input); !errors.Is(err, ErrTitleRequired) {
		t.Fatalf("expected title error next, got %v", err)
	}

	input.Title = strPtr("Salary")
	if err := ValidateTransactionInput(input); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected amount error next, got %v", err)
	}
}
