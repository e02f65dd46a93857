package service

import (
	"errors"
	"testing"

	"github.com/expensevault/expensevault/internal/model"
)

func validBudgetInput() BudgetInput {
	return BudgetInput{
		Name:         strPtr("Monthly groceries"),
		BudgetAmount: moneyPtr(model.Money(50000)),
		SpentAmount:  moneyPtr(model.Money(12500)),
	}
}

func TestValidateBudgetInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modify  func(*BudgetInput)
		wantErr error
	}{
		{
			name:   "valid input",
			modify: func(in *BudgetInput) {},
		},
		{
			name:   "spent amount absent",
			modify: func(in *BudgetInput) { in.SpentAmount = nil },
		},
		{
			name:   "spent amount zero",
			modify: func(in *BudgetInput) { in.SpentAmount = moneyPtr(0) },
		},
		{
			name:   "spent exceeds budget is allowed",
			modify: func(in *BudgetInput) { in.SpentAmount = moneyPtr(model.Money(99900)) },
		},
		{
			name:    "missing name",
			modify:  func(in *BudgetInput) { in.Name = nil },
			wantErr: ErrBudgetNameRequired,
		},
		{
			name:    "whitespace name",
			modify:  func(in *BudgetInput) { in.Name = strPtr("  ") },
			wantErr: ErrBudgetNameRequired,
		},
		{
			name:    "missing budget amount",
			modify:  func(in *BudgetInput) { in.BudgetAmount = nil },
			wantErr: ErrInvalidBudgetAmount,
		},
		{
			name:    "zero budget amount",
			modify:  func(in *BudgetInput) { in.BudgetAmount = moneyPtr(0) },
			wantErr: ErrInvalidBudgetAmount,
		},
		{
			name:    "negative spent amount",
			modify:  func(in *BudgetInput) { in.SpentAmount = moneyPtr(-1) },
			wantErr: ErrNegativeSpentAmount,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			input := validBudgetInput()
			tt.modify(&input)

			err := ValidateBudgetInput(input)
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

// Name is reported before a bad budget amount.
func TestValidateBudgetInput_Order(t *testing.T) {
	t.Parallel()

	input := BudgetInput{BudgetAmount: moneyPtr(-5)}
	if err := ValidateBudgetInput(input); !errors.Is(err, ErrBudgetNameRequired) {
		t.Fatalf("expected name error first, got %v", err)
	}
}
