// Package testutil provides helpers for integration tests.
// Integration tests are gated on TEST_DATABASE_URL / TEST_REDIS_URL
// and skip when those are unset.
package testutil

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oklog/ulid/v2"
	"github.com/redis/go-redis/v9"

	"github.com/expensevault/expensevault/internal/model"
)

// RequireEnv returns an environment variable or skips the test if missing.
func RequireEnv(t testing.TB, key string) string {
	t.Helper()
	value := os.Getenv(key)
	if value == "" {
		t.Skipf("%s not set", key)
	}
	return value
}

const advisoryLockID int64 = 731731

// AcquireDBLock grabs a global advisory lock to serialize DB tests.
func AcquireDBLock(ctx context.Context, pool *pgxpool.Pool) (func() error, error) {
	conn, err := pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}

	if _, err := conn.Exec(ctx, "SELECT pg_advisory_lock($1)", advisoryLockID); err != nil {
		conn.Release()
		return nil, fmt.Errorf("acquire advisory lock: %w", err)
	}

	unlock := func() error {
		defer conn.Release()
		if _, err := conn.Exec(ctx, "SELECT pg_advisory_unlock($1)", advisoryLockID); err != nil {
			return fmt.Errorf("release advisory lock: %w", err)
		}
		return nil
	}

	return unlock, nil
}

// DropSchema removes all application tables so Migrate can recreate
// them from scratch.
func DropSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, "DROP TABLE IF EXISTS transactions, budgets, users CASCADE")
	if err != nil {
		return fmt.Errorf("drop schema: %w", err)
	}
	return nil
}

// FlushRedis clears the current Redis database.
func FlushRedis(ctx context.Context, client *redis.Client) error {
	return client.FlushDB(ctx).Err()
}

// NewTestUser creates a test user with sensible defaults.
func NewTestUser(t testing.TB) *model.User {
	t.Helper()
	id := uuid.New().String()
	return &model.User{
		ID:           id,
		FullName:     "Test User",
		Email:        fmt.Sprintf("user-%s@example.com", id[:8]),
		PasswordHash: "$2a$10$not.a.real.hash.for.tests.only",
		CreatedAt:    time.Now().UTC(),
	}
}

// NewTestTransaction creates a test transaction owned by ownerID.
func NewTestTransaction(t testing.TB, ownerID string) *model.Transaction {
	t.Helper()
	now := time.Now().UTC()
	return &model.Transaction{
		ID:        ulid.Make().String(),
		OwnerID:   ownerID,
		Type:      model.TypeExpense,
		Title:     "Coffee",
		Amount:    model.Money(450),
		Category:  "Food",
		Date:      model.DateOf(now),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewTestBudget creates a test budget owned by ownerID.
func NewTestBudget(t testing.TB, ownerID string) *model.Budget {
	t.Helper()
	now := time.Now().UTC()
	return &model.Budget{
		ID:           ulid.Make().String(),
		OwnerID:      ownerID,
		Name:         "Groceries",
		BudgetAmount: model.Money(20000),
		SpentAmount:  model.Money(15000),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
