package model

import "time"

// Budget is a named spending envelope owned by a user.
// SpentAmount is client-supplied and is not reconciled against
// transactions; whether that linkage should exist is an open product
// question, so the server just stores what it is given.
type Budget struct {
	ID           string    `json:"id"`
	OwnerID      string    `json:"-"`
	Name         string    `json:"name"`
	BudgetAmount Money     `json:"budget_amount"`
	SpentAmount  Money     `json:"spent_amount"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PercentSpent returns how much of the budget is consumed, in percent.
func (b *Budget) PercentSpent() float64 {
	if b.BudgetAmount <= 0 {
		return 0
	}
	return float64(b.SpentAmount) / float64(b.BudgetAmount) * 100
}
