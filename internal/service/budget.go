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

// Budget validation errors, checked in declaration order.
var (
	ErrBudgetNameRequired  = errors.New("name is required")
	ErrInvalidBudgetAmount = errors.New("budget amount must be greater than 0")
	ErrNegativeSpentAmount = errors.New("spent amount cannot be negative")
)

// BudgetService handles budget record operations.
type BudgetService struct {
	repo    *repository.Repository
	cache   *cache.Cache
	metrics metrics.Recorder
	logger  *slog.Logger
}

// NewBudgetService creates a new BudgetService.
func NewBudgetService(repo *repository.Repository, c *cache.Cache, recorder metrics.Recorder, logger *slog.Logger) *BudgetService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &BudgetService{
		repo:    repo,
		cache:   c,
		metrics: recorder,
		logger:  logger,
	}
}

// BudgetInput defines input for creating or replacing a budget.
// SpentAmount is optional and defaults to zero.
type BudgetInput struct {
	Name         *string
	BudgetAmount *model.Money
	SpentAmount  *model.Money
}

// ValidateBudgetInput checks fields in a fixed order and stops at the
// first failure: name, budget amount, spent amount.
func ValidateBudgetInput(input BudgetInput) error {
	if input.Name == nil || strings.TrimSpace(*input.Name) == "" {
		return ErrBudgetNameRequired
	}
	if input.BudgetAmount == nil || *input.BudgetAmount <= 0 {
		return ErrInvalidBudgetAmount
	}
	if input.SpentAmount != nil && *input.SpentAmount < 0 {
		return ErrNegativeSpentAmount
	}
	return nil
}

// Create validates and stores a new budget for the owner.
func (s *BudgetService) Create(ctx context.Context, ownerID string, input BudgetInput) (*model.Budget, error) {
	if err := ValidateBudgetInput(input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	b := budgetFromInput(ulid.Make().String(), ownerID, input, now, now)

	if err := s.repo.CreateBudget(ctx, b); err != nil {
		return nil, fmt.Errorf("create budget: %w", err)
	}

	s.invalidateList(ctx, ownerID)
	s.metrics.IncBudgetCreated()

	return b, nil
}

// List returns all of the owner's budgets in insertion order,
// cache-first with store backfill.
func (s *BudgetService) List(ctx context.Context, ownerID string) ([]*model.Budget, error) {
	if s.cache != nil {
		cached, err := s.cache.GetBudgetList(ctx, ownerID)
		if err == nil {
			s.metrics.IncRecordListCacheHit()
			return cached, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.logger.Warn("budget list cache read failed", "error", err)
		}
		s.metrics.IncRecordListCacheMiss()
	}

	budgets, err := s.repo.ListBudgets(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list budgets: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.SetBudgetList(ctx, ownerID, budgets); err != nil {
			s.logger.Warn("budget list cache write failed", "error", err)
		}
	}

	return budgets, nil
}

// Get returns a single budget owned by ownerID.
func (s *BudgetService) Get(ctx context.Context, ownerID, id string) (*model.Budget, error) {
	return s.repo.GetBudget(ctx, ownerID, id)
}

// Update validates the input and replaces every mutable field of the
// owner's budget. Fields are never merged with the stored record: an
// omitted spent amount resets to zero, exactly as in Create.
func (s *BudgetService) Update(ctx context.Context, ownerID, id string, input BudgetInput) (*model.Budget, error) {
	if err := ValidateBudgetInput(input); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetBudget(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	b := budgetFromInput(existing.ID, ownerID, input, existing.CreatedAt, time.Now().UTC())

	if err := s.repo.UpdateBudget(ctx, b); err != nil {
		return nil, err
	}

	s.invalidateList(ctx, ownerID)
	s.metrics.IncBudgetUpdated()

	return b, nil
}

// Delete removes the owner's budget.
func (s *BudgetService) Delete(ctx context.Context, ownerID, id string) error {
	if err := s.repo.DeleteBudget(ctx, ownerID, id); err != nil {
		return err
	}

	s.invalidateList(ctx, ownerID)
	s.metrics.IncBudgetDeleted()

	return nil
}

// budgetFromInput builds the record both Create and Update store.
// Input must already be validated. An absent spent amount takes the
// creation default of zero; nothing carries over from a previous
// version.
func budgetFromInput(id, ownerID string, input BudgetInput, createdAt, updatedAt time.Time) *model.Budget {
	b := &model.Budget{
		ID:           id,
		OwnerID:      ownerID,
		Name:         strings.TrimSpace(*input.Name),
		BudgetAmount: *input.BudgetAmount,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
	if input.SpentAmount != nil {
		b.SpentAmount = *input.SpentAmount
	}
	return b
}

func (s *BudgetService) invalidateList(ctx context.Context, ownerID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateBudgets(ctx, ownerID); err != nil {
		s.logger.Warn("budget list cache invalidation failed", "owner_id", ownerID, "error", err)
	}
}
