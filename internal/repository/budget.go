package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/expensevault/expensevault/internal/model"
)

// ErrBudgetNotFound is returned when no budget matches both the ID and
// the owner; cross-owner access looks identical to a missing record.
var ErrBudgetNotFound = errors.New("budget not found")

// CreateBudget inserts a new budget.
func (r *Repository) CreateBudget(ctx context.Context, b *model.Budget) error {
	query := `
		INSERT INTO budgets (id, owner_id, name, budget_cents, spent_cents, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		b.ID,
		b.OwnerID,
		b.Name,
		b.BudgetAmount.Cents(),
		b.SpentAmount.Cents(),
		b.CreatedAt,
		b.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create budget: %w", err)
	}

	return nil
}

// ListBudgets returns all budgets for an owner in insertion order.
func (r *Repository) ListBudgets(ctx context.Context, ownerID string) ([]*model.Budget, error) {
	query := `
		SELECT id, owner_id, name, budget_cents, spent_cents, created_at, updated_at
		FROM budgets
		WHERE owner_id = $1
		ORDER BY created_at ASC, id ASC
	`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	defer rows.Close()

	budgets := make([]*model.Budget, 0)
	for rows.Next() {
		b, err := scanBudget(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan budget: %w", err)
		}
		budgets = append(budgets, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating budgets: %w", err)
	}

	return budgets, nil
}

// GetBudget retrieves a budget by ID, scoped to its owner.
func (r *Repository) GetBudget(ctx context.Context, ownerID, id string) (*model.Budget, error) {
	query := `
		SELECT id, owner_id, name, budget_cents, spent_cents, created_at, updated_at
		FROM budgets
		WHERE id = $1 AND owner_id = $2
	`

	b, err := scanBudget(r.pool.QueryRow(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBudgetNotFound
		}
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}

	return b, nil
}

// UpdateBudget replaces a budget's fields in place, scoped to its owner.
func (r *Repository) UpdateBudget(ctx context.Context, b *model.Budget) error {
	query := `
		UPDATE budgets
		SET name = $3, budget_cents = $4, spent_cents = $5, updated_at = $6
		WHERE id = $1 AND owner_id = $2
	`

	result, err := r.pool.Exec(ctx, query,
		b.ID,
		b.OwnerID,
		b.Name,
		b.BudgetAmount.Cents(),
		b.SpentAmount.Cents(),
		b.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to update budget: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrBudgetNotFound
	}

	return nil
}

// DeleteBudget removes a budget, scoped to its owner.
func (r *Repository) DeleteBudget(ctx context.Context, ownerID, id string) error {
	query := `DELETE FROM budgets WHERE id = $1 AND owner_id = $2`

	result, err := r.pool.Exec(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete budget: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrBudgetNotFound
	}

	return nil
}

// scanBudget scans a single row into a Budget model.
func scanBudget(row pgx.Row) (*model.Budget, error) {
	var (
		b           model.Budget
		budgetCents int64
		spentCents  int64
	)

	err := row.Scan(
		&b.ID,
		&b.OwnerID,
		&b.Name,
		&budgetCents,
		&spentCents,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.BudgetAmount = model.Money(budgetCents)
	b.SpentAmount = model.Money(spentCents)
	return &b, nil
}
