// Package report derives summary views from raw transaction lists.
// Everything here is stateless; each request recomputes from the
// records it is given.
package report

import (
	"time"

	"github.com/expensevault/expensevault/internal/model"
)

// CategoryTotal is one bucket of the expense breakdown.
type CategoryTotal struct {
	Category string      `json:"category"`
	Total    model.Money `json:"total"`
}

// MonthPoint holds income and expense totals for one calendar month.
type MonthPoint struct {
	Month   string      `json:"month"` // YYYY-MM
	Income  model.Money `json:"income"`
	Expense model.Money `json:"expense"`
}

// Summary is the derived view over a user's full transaction list.
type Summary struct {
	TotalIncome  model.Money     `json:"total_income"`
	TotalExpense model.Money     `json:"total_expense"`
	Balance      model.Money     `json:"balance"`
	ByCategory   []CategoryTotal `json:"by_category"`
	Months       []MonthPoint    `json:"months"`
}

// BuildSummary computes totals, the expense breakdown over the fixed
// category set, and a month series from the earliest transaction's
// month through now inclusive. Expenses in categories outside the
// fixed set count toward the totals but are dropped from the
// breakdown, not folded into "Other". Categories with no spending are
// omitted. With no transactions the series is empty.
func BuildSummary(transactions []*model.Transaction, now time.Time) Summary {
	var s Summary

	byCategory := make(map[string]model.Money)
	byMonth := make(map[string]*MonthPoint)
	var earliest time.Time

	for _, tx := range transactions {
		switch tx.Type {
		case model.TypeIncome:
			s.TotalIncome += tx.Amount
		case model.TypeExpense:
			s.TotalExpense += tx.Amount
			byCategory[tx.Category] += tx.Amount
		}

		d := tx.Date.Time()
		if earliest.IsZero() || d.Before(earliest) {
			earliest = d
		}
		key := monthKey(d)
		point, ok := byMonth[key]
		if !ok {
			point = &MonthPoint{Month: key}
			byMonth[key] = point
		}
		if tx.Type == model.TypeIncome {
			point.Income += tx.Amount
		} else {
			point.Expense += tx.Amount
		}
	}

	s.Balance = s.TotalIncome - s.TotalExpense

	s.ByCategory = make([]CategoryTotal, 0, len(model.ReportCategories))
	for _, category := range model.ReportCategories {
		total, ok := byCategory[category]
		if !ok || total == 0 {
			continue
		}
		s.ByCategory = append(s.ByCategory, CategoryTotal{Category: category, Total: total})
	}

	s.Months = monthSeries(byMonth, earliest, now)

	return s
}

// monthSeries walks month by month from the earliest record through
// now, emitting a point for every month even when it has no records.
func monthSeries(byMonth map[string]*MonthPoint, earliest, now time.Time) []MonthPoint {
	if earliest.IsZero() {
		return []MonthPoint{}
	}

	start := time.Date(earliest.Year(), earliest.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	series := make([]MonthPoint, 0)
	for cursor := start; !cursor.After(end); cursor = cursor.AddDate(0, 1, 0) {
		key := monthKey(cursor)
		if point, ok := byMonth[key]; ok {
			series = append(series, *point)
		} else {
			series = append(series, MonthPoint{Month: key})
		}
	}
	return series
}

func monthKey(t time.Time) string {
	return t.Format("2006-01")
}
