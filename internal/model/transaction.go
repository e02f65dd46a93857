package model

import "time"

// TransactionType distinguishes money in from money out.
type TransactionType string

const (
	TypeExpense TransactionType = "Expense"
	TypeIncome  TransactionType = "Income"
)

// IsValid checks if the transaction type is one of the two known values.
func (t TransactionType) IsValid() bool {
	return t == TypeExpense || t == TypeIncome
}

// ReportCategories is the fixed label set used by reporting views.
// Records may carry any non-empty category; labels outside this set are
// simply dropped from breakdowns.
var ReportCategories = []string{
	"Food",
	"Shopping",
	"Bills",
	"Entertainment",
	"Salary",
	"Other",
}

// Transaction is a single income or expense record owned by a user.
// OwnerID is fixed at creation and every store operation filters by it.
type Transaction struct {
	ID        string          `json:"id"`
	OwnerID   string          `json:"-"`
	Type      TransactionType `json:"type"`
	Title     string          `json:"title"`
	Amount    Money           `json:"amount"`
	Category  string          `json:"category"`
	Date      Date            `json:"date"`
	Recurring bool            `json:"recurring"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
