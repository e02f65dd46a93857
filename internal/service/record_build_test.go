package service

import (
	"testing"
	"time"

	"github.com/expensevault/expensevault/internal/model"
)

// Create and Update build records through the same constructor, so an
// omitted optional field always takes its creation default on update
// instead of keeping whatever was stored.

func TestTransactionFromInput_OmittedRecurringResets(t *testing.T) {
	t.Parallel()

	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	now := time.Now().UTC()

	input := validTransactionInput()
	input.Recurring = nil

	tx := transactionFromInput("tx-1", "owner-1", input, created, now)
	if tx.Recurring {
		t.Error("omitted recurring flag should reset to false")
	}
	if !tx.CreatedAt.Equal(created) {
		t.Errorf("created_at = %v, want %v", tx.CreatedAt, created)
	}

	recurring := true
	input.Recurring = &recurring
	tx = transactionFromInput("tx-1", "owner-1", input, created, now)
	if !tx.Recurring {
		t.Error("explicit recurring flag should be stored")
	}
}

func TestTransactionFromInput_TrimsStrings(t *testing.T) {
	t.Parallel()

	input := validTransactionInput()
	input.Title = strPtr("  Groceries  ")
	input.Category = strPtr(" Food ")

	tx := transactionFromInput("tx-1", "owner-1", input, time.Now().UTC(), time.Now().UTC())
	if tx.Title != "Groceries" {
		t.Errorf("title = %q, want trimmed", tx.Title)
	}
	if tx.Category != "Food" {
		t.Errorf("category = %q, want trimmed", tx.Category)
	}
}

func TestBudgetFromInput_OmittedSpentResets(t *testing.T) {
	t.Parallel()

	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	now := time.Now().UTC()

	input := validBudgetInput()
	input.SpentAmount = nil

	b := budgetFromInput("b-1", "owner-1", input, created, now)
	if b.SpentAmount != 0 {
		t.Errorf("omitted spent amount = %d, want 0", b.SpentAmount)
	}

	input.SpentAmount = moneyPtr(model.Money(15000))
	b = budgetFromInput("b-1", "owner-1", input, created, now)
	if b.SpentAmount != 15000 {
		t.Errorf("explicit spent amount = %d, want 15000", b.SpentAmount)
	}
}
