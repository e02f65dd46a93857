package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/expensevault/expensevault/internal/cache"
	"github.com/expensevault/expensevault/internal/metrics"
	"github.com/expensevault/expensevault/internal/model"
	"github.com/expensevault/expensevault/internal/repository"
)

// Transaction validation errors, checked in declaration order.
var (
	ErrInvalidTransactionType = errors.New("valid type (Expense or Income) is required")
	ErrTitleRequired          = errors.New("title is required")
	ErrInvalidAmount          = errors.New("amount must be greater than 0")
	ErrCategoryRequired       = errors.New("category is required")
	ErrInvalidTransactionDate = errors.New("valid date is required")
)

// TransactionService handles transaction record operations.
type TransactionService struct {
	repo    *repository.Repository
	cache   *cache.Cache
	metrics metrics.Recorder
	logger  *slog.Logger
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(repo *repository.Repository, c *cache.Cache, recorder metrics.Recorder, logger *slog.Logger) *TransactionService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &TransactionService{
		repo:    repo,
		cache:   c,
		metrics: recorder,
		logger:  logger,
	}
}

// TransactionInput defines input for creating or replacing a
// transaction. Pointer fields distinguish absent from zero.
type TransactionInput struct {
	Type      *model.TransactionType
	Title     *string
	Amount    *model.Money
	Category  *string
	Date      *model.Date
	Recurring *bool
}

// ValidateTransactionInput checks fields in a fixed order and stops at
// the first failure: type, title, amount, category, date.
func ValidateTransactionInput(input TransactionInput) error {
	if input.Type == nil || !input.Type.IsValid() {
		return ErrInvalidTransactionType
	}
	if input.Title == nil || strings.TrimSpace(*input.Title) == "" {
		return ErrTitleRequired
	}
	if input.Amount == nil || *input.Amount <= 0 {
		return ErrInvalidAmount
	}
	if input.Category == nil || strings.TrimSpace(*input.Category) == "" {
		return ErrCategoryRequired
	}
	if input.Date == nil || input.Date.IsZero() {
		return ErrInvalidTransactionDate
	}
	return nil
}

// Create validates and stores a new transaction for the owner.
func (s *TransactionService) Create(ctx context.Context, ownerID string, input TransactionInput) (*model.Transaction, error) {
	if err := ValidateTransactionInput(input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	tx := transactionFromInput(ulid.Make().String(), ownerID, input, now, now)

	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}

	s.invalidateList(ctx, ownerID)
	s.metrics.IncTransactionCreated()

	return tx, nil
}

// List returns all of the owner's transactions, newest date first.
// The cached list is served when present; a miss reads the store and
// backfills the cache.
func (s *TransactionService) List(ctx context.Context, ownerID string) ([]*model.Transaction, error) {
	if s.cache != nil {
		cached, err := s.cache.GetTransactionList(ctx, ownerID)
		if err == nil {
			s.metrics.IncRecordListCacheHit()
			return cached, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.logger.Warn("transaction list cache read failed", "error", err)
		}
		s.metrics.IncRecordListCacheMiss()
	}

	transactions, err := s.repo.ListTransactions(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.SetTransactionList(ctx, ownerID, transactions); err != nil {
			s.logger.Warn("transaction list cache write failed", "error", err)
		}
	}

	return transactions, nil
}

// Get returns a single transaction owned by ownerID.
func (s *TransactionService) Get(ctx context.Context, ownerID, id string) (*model.Transaction, error) {
	return s.repo.GetTransaction(ctx, ownerID, id)
}

// Update validates the input and replaces every mutable field of the
// owner's transaction. Fields are never merged with the stored record:
// an omitted recurring flag resets to false, exactly as in Create.
func (s *TransactionService) Update(ctx context.Context, ownerID, id string, input TransactionInput) (*model.Transaction, error) {
	if err := ValidateTransactionInput(input); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetTransaction(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	tx := transactionFromInput(existing.ID, ownerID, input, existing.CreatedAt, time.Now().UTC())

	if err := s.repo.UpdateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	s.invalidateList(ctx, ownerID)
	s.metrics.IncTransactionUpdated()

	return tx, nil
}

// Delete removes the owner's transaction.
func (s *TransactionService) Delete(ctx context.Context, ownerID, id string) error {
	if err := s.repo.DeleteTransaction(ctx, ownerID, id); err != nil {
		return err
	}

	s.invalidateList(ctx, ownerID)
	s.metrics.IncTransactionDeleted()

	return nil
}

// transactionFromInput builds the record both Create and Update store.
// Input must already be validated. Absent optional fields take their
// creation defaults; nothing carries over from a previous version.
func transactionFromInput(id, ownerID string, input TransactionInput, createdAt, updatedAt time.Time) *model.Transaction {
	tx := &model.Transaction{
		ID:        id,
		OwnerID:   ownerID,
		Type:      *input.Type,
		Title:     strings.TrimSpace(*input.Title),
		Amount:    *input.Amount,
		Category:  strings.TrimSpace(*input.Category),
		Date:      *input.Date,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
	if input.Recurring != nil {
		tx.Recurring = *input.Recurring
	}
	return tx
}

func (s *TransactionService) invalidateList(ctx context.Context, ownerID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateTransactions(ctx, ownerID); err != nil {
		s.logger.Warn("transaction list cache invalidation failed", "owner_id", ownerID, "error", err)
	}
}
