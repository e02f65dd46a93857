package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/expensevault/expensevault/internal/model"
)

const (
	// transactionsPrefix keys the per-owner transaction list cache.
	transactionsPrefix = "txs:owner:"
	// budgetsPrefix keys the per-owner budget list cache.
	budgetsPrefix = "budgets:owner:"
	// recordListTTL bounds staleness if an invalidation is ever lost.
	recordListTTL = 60 * time.Second
)

// ErrCacheMiss indicates the key was not present.
var ErrCacheMiss = errors.New("cache miss")

// GetTransactionList returns the cached transaction list for an owner.
func (c *Cache) GetTransactionList(ctx context.Context, ownerID string) ([]*model.Transaction, error) {
	data, err := c.client.Get(ctx, transactionsPrefix+ownerID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	var transactions []*model.Transaction
	if err := json.Unmarshal(data, &transactions); err != nil {
		// Corrupted entry - treat as miss
		return nil, ErrCacheMiss
	}
	return transactions, nil
}

// SetTransactionList caches an owner's transaction list.
// OwnerID is not part of the payload; it is implied by the key.
func (c *Cache) SetTransactionList(ctx context.Context, ownerID string, transactions []*model.Transaction) error {
	data, err := json.Marshal(transactions)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, transactionsPrefix+ownerID, data, recordListTTL).Err()
}

// InvalidateTransactions drops the cached transaction list for an owner.
// Called after every mutation so reads never see a stale write.
func (c *Cache) InvalidateTransactions(ctx context.Context, ownerID string) error {
	return c.client.Del(ctx, transactionsPrefix+ownerID).Err()
}

// GetBudgetList returns the cached budget list for an owner.
func (c *Cache) GetBudgetList(ctx context.Context, ownerID string) ([]*model.Budget, error) {
	data, err := c.client.Get(ctx, budgetsPrefix+ownerID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	var budgets []*model.Budget
	if err := json.Unmarshal(data, &budgets); err != nil {
		return nil, ErrCacheMiss
	}
	return budgets, nil
}

// SetBudgetList caches an owner's budget list.
func (c *Cache) SetBudgetList(ctx context.Context, ownerID string, budgets []*model.Budget) error {
	data, err := json.Marshal(budgets)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, budgetsPrefix+ownerID, data, recordListTTL).Err()
}

// InvalidateBudgets drops the cached budget list for an owner.
func (c *Cache) InvalidateBudgets(ctx context.Context, ownerID string) error {
	return c.client.Del(ctx, budgetsPrefix+ownerID).Err()
}
