package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/expensevault/expensevault/internal/model"
)

// ErrTransactionNotFound is returned when no transaction matches both
// the ID and the owner. A record owned by someone else is
// indistinguishable from one that does not exist.
var ErrTransactionNotFound = errors.New("transaction not found")

// CreateTransaction inserts a new transaction.
func (r *Repository) CreateTransaction(ctx context.Context, tx *model.Transaction) error {
	query := `
		INSERT INTO transactions (id, owner_id, type, title, amount_cents, category, tx_date, recurring, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.pool.Exec(ctx, query,
		tx.ID,
		tx.OwnerID,
		string(tx.Type),
		tx.Title,
		tx.Amount.Cents(),
		tx.Category,
		tx.Date.Time(),
		tx.Recurring,
		tx.CreatedAt,
		tx.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	return nil
}

// ListTransactions returns all transactions for an owner, newest date
// first with ID as a deterministic tiebreak.
func (r *Repository) ListTransactions(ctx context.Context, ownerID string) ([]*model.Transaction, error) {
	query := `
		SELECT id, owner_id, type, title, amount_cents, category, tx_date, recurring, created_at, updated_at
		FROM transactions
		WHERE owner_id = $1
		ORDER BY tx_date DESC, id DESC
	`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	transactions := make([]*model.Transaction, 0)
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}

	return transactions, nil
}

// GetTransaction retrieves a transaction by ID, scoped to its owner.
func (r *Repository) GetTransaction(ctx context.Context, ownerID, id string) (*model.Transaction, error) {
	query := `
		SELECT id, owner_id, type, title, amount_cents, category, tx_date, recurring, created_at, updated_at
		FROM transactions
		WHERE id = $1 AND owner_id = $2
	`

	tx, err := scanTransaction(r.pool.QueryRow(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	return tx, nil
}

// UpdateTransaction replaces a transaction's fields in place.
// The WHERE clause carries both ID and owner, so a foreign-owned ID is
// a no-op reported as not found.
func (r *Repository) UpdateTransaction(ctx context.Context, tx *model.Transaction) error {
	query := `
		UPDATE transactions
		SET type = $3, title = $4, amount_cents = $5, category = $6, tx_date = $7, recurring = $8, updated_at = $9
		WHERE id = $1 AND owner_id = $2
	`

	result, err := r.pool.Exec(ctx, query,
		tx.ID,
		tx.OwnerID,
		string(tx.Type),
		tx.Title,
		tx.Amount.Cents(),
		tx.Category,
		tx.Date.Time(),
		tx.Recurring,
		tx.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrTransactionNotFound
	}

	return nil
}

// DeleteTransaction removes a transaction, scoped to its owner.
func (r *Repository) DeleteTransaction(ctx context.Context, ownerID, id string) error {
	query := `DELETE FROM transactions WHERE id = $1 AND owner_id = $2`

	result, err := r.pool.Exec(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrTransactionNotFound
	}

	return nil
}

// scanTransaction scans a single row into a Transaction model.
func scanTransaction(row pgx.Row) (*model.Transaction, error) {
	var (
		tx      model.Transaction
		txType  string
		cents   int64
		txDate  time.Time
	)

	err := row.Scan(
		&tx.ID,
		&tx.OwnerID,
		&txType,
		&tx.Title,
		&cents,
		&tx.Category,
		&txDate,
		&tx.Recurring,
		&tx.CreatedAt,
		&tx.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	tx.Type = model.TransactionType(txType)
	tx.Amount = model.Money(cents)
	tx.Date = model.DateOf(txDate)
	return &tx, nil
}
