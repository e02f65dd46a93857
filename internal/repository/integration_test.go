package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/expensevault/expensevault/internal/model"
	"github.com/expensevault/expensevault/internal/repository"
	"github.com/expensevault/expensevault/internal/testutil"
)

// setupRepo connects to the test database, serializes access, and
// recreates the schema. Skips unless TEST_DATABASE_URL is set.
func setupRepo(t *testing.T) (*repository.Repository, context.Context) {
	t.Helper()

	databaseURL := testutil.RequireEnv(t, "TEST_DATABASE_URL")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)

	repo, err := repository.New(ctx, databaseURL)
	if err != nil {
		t.Fatalf("connect database: %v", err)
	}
	t.Cleanup(repo.Close)

	unlock, err := testutil.AcquireDBLock(ctx, repo.Pool())
	if err != nil {
		t.Fatalf("acquire lock: %v", err)
	}
	t.Cleanup(func() { _ = unlock() })

	if err := testutil.DropSchema(ctx, repo.Pool()); err != nil {
		t.Fatalf("drop schema: %v", err)
	}
	if err := repo.Migrate(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return repo, ctx
}

func TestUserCRUD(t *testing.T) {
	repo, ctx := setupRepo(t)

	user := testutil.NewTestUser(t)
	if err := repo.CreateUser(ctx, user); err != nil {
		t.Fatalf("create user: %v", err)
	}

	byEmail, err := repo.GetUserByEmail(ctx, user.Email)
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if byEmail.ID != user.ID {
		t.Errorf("ID = %q, want %q", byEmail.ID, user.ID)
	}
	if byEmail.PasswordHash != user.PasswordHash {
		t.Error("password hash did not round-trip")
	}

	// Email lookup is exact, case-sensitive
	if _, err := repo.GetUserByEmail(ctx, "nobody@example.com"); !errors.Is(err, repository.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	repo, ctx := setupRepo(t)

	user := testutil.NewTestUser(t)
	if err := repo.CreateUser(ctx, user); err != nil {
		t.Fatalf("create user: %v", err)
	}

	dup := testutil.NewTestUser(t)
	dup.Email = user.Email
	if err := repo.CreateUser(ctx, dup); !errors.Is(err, repository.ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

func TestTransactionRoundTrip(t *testing.T) {
	repo, ctx := setupRepo(t)

	owner := testutil.NewTestUser(t)
	if err := repo.CreateUser(ctx, owner); err != nil {
		t.Fatalf("create user: %v", err)
	}

	tx := testutil.NewTestTransaction(t, owner.ID)
	tx.Amount = model.Money(450) // 4.50
	if err := repo.CreateTransaction(ctx, tx); err != nil {
		t.Fatalf("create transaction: %v", err)
	}

	list, err := repo.ListTransactions(ctx, owner.ID)
	if err != nil {
		t.Fatalf("list transactions: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("got %d transactions, want 1", len(list))
	}

	got := list[0]
	if got.ID != tx.ID {
		t.Errorf("ID = %q, want %q", got.ID, tx.ID)
	}
	if got.Amount != tx.Amount {
		t.Errorf("amount = %d, want %d", got.Amount, tx.Amount)
	}
	if got.Date.String() != tx.Date.String() {
		t.Errorf("date = %s, want %s", got.Date, tx.Date)
	}
	if got.Recurring != tx.Recurring {
		t.Errorf("recurring = %v, want %v", got.Recurring, tx.Recurring)
	}

	if err := repo.DeleteTransaction(ctx, owner.ID, tx.ID); err != nil {
		t.Fatalf("delete transaction: %v", err)
	}

	list, err = repo.ListTransactions(ctx, owner.ID)
	if err != nil {
		t.Fatalf("list after delete: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("got %d transactions after delete, want 0", len(list))
	}
}

func TestTransactionListOrder(t *testing.T) {
	repo, ctx := setupRepo(t)

	owner := testutil.NewTestUser(t)
	if err := repo.CreateUser(ctx, owner); err != nil {
		t.Fatalf("create user: %v", err)
	}

	dates := []string{"2025-01-15", "2025-03-01", "2025-02-10"}
	for _, d := range dates {
		tx := testutil.NewTestTransaction(t, owner.ID)
		parsed, err := model.ParseDate(d)
		if err != nil {
			t.Fatalf("parse date: %v", err)
		}
		tx.Date = parsed
		if err := repo.CreateTransaction(ctx, tx); err != nil {
			t.Fatalf("create transaction: %v", err)
		}
	}

	list, err := repo.ListTransactions(ctx, owner.ID)
	if err != nil {
		t.Fatalf("list transactions: %v", err)
	}

	want := []string{"2025-03-01", "2025-02-10", "2025-01-15"}
	for i, d := range want {
		if list[i].Date.String() != d {
			t.Errorf("position %d date = %s, want %s", i, list[i].Date, d)
		}
	}
}

func TestOwnershipIsolation(t *testing.T) {
	repo, ctx := setupRepo(t)

	alice := testutil.NewTestUser(t)
	bob := testutil.NewTestUser(t)
	for _, u := range []*model.User{alice, bob} {
		if err := repo.CreateUser(ctx, u); err != nil {
			t.Fatalf("create user: %v", err)
		}
	}

	tx := testutil.NewTestTransaction(t, alice.ID)
	if err := repo.CreateTransaction(ctx, tx); err != nil {
		t.Fatalf("create transaction: %v", err)
	}

	// Bob cannot see, update, or delete Alice's record. Every failure
	// reads as not-found, never as permission denied.
	if _, err := repo.GetTransaction(ctx, bob.ID, tx.ID); !errors.Is(err, repository.ErrTransactionNotFound) {
		t.Errorf("get: expected ErrTransactionNotFound, got %v", err)
	}

	foreign := *tx
	foreign.OwnerID = bob.ID
	foreign.Title = "hijacked"
	if err := repo.UpdateTransaction(ctx, &foreign); !errors.Is(err, repository.ErrTransactionNotFound) {
		t.Errorf("update: expected ErrTransactionNotFound, got %v", err)
	}

	if err := repo.DeleteTransaction(ctx, bob.ID, tx.ID); !errors.Is(err, repository.ErrTransactionNotFound) {
		t.Errorf("delete: expected ErrTransactionNotFound, got %v", err)
	}

	// The record is untouched by the failed foreign update.
	got, err := repo.GetTransaction(ctx, alice.ID, tx.ID)
	if err != nil {
		t.Fatalf("owner get: %v", err)
	}
	if got.Title != tx.Title {
		t.Errorf("title = %q, want %q", got.Title, tx.Title)
	}

	list, err := repo.ListTransactions(ctx, bob.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("bob sees %d foreign transactions", len(list))
	}
}

func TestBudgetCRUD(t *testing.T) {
	repo, ctx := setupRepo(t)

	owner := testutil.NewTestUser(t)
	if err := repo.CreateUser(ctx, owner); err != nil {
		t.Fatalf("create user: %v", err)
	}

	b := testutil.NewTestBudget(t, owner.ID)
	if err := repo.CreateBudget(ctx, b); err != nil {
		t.Fatalf("create budget: %v", err)
	}

	got, err := repo.GetBudget(ctx, owner.ID, b.ID)
	if err != nil {
		t.Fatalf("get budget: %v", err)
	}
	if got.BudgetAmount != b.BudgetAmount || got.SpentAmount != b.SpentAmount {
		t.Errorf("amounts = %d/%d, want %d/%d", got.BudgetAmount, got.SpentAmount, b.BudgetAmount, b.SpentAmount)
	}

	got.Name = "Household"
	got.SpentAmount = model.Money(18000)
	got.UpdatedAt = time.Now().UTC()
	if err := repo.UpdateBudget(ctx, got); err != nil {
		t.Fatalf("update budget: %v", err)
	}

	updated, err := repo.GetBudget(ctx, owner.ID, b.ID)
	if err != nil {
		t.Fatalf("get after update: %v", err)
	}
	if updated.Name != "Household" || updated.SpentAmount != 18000 {
		t.Errorf("update not persisted: %+v", updated)
	}

	if err := repo.DeleteBudget(ctx, owner.ID, b.ID); err != nil {
		t.Fatalf("delete budget: %v", err)
	}
	if _, err := repo.GetBudget(ctx, owner.ID, b.ID); !errors.Is(err, repository.ErrBudgetNotFound) {
		t.Fatalf("expected ErrBudgetNotFound after delete, got %v", err)
	}
}
