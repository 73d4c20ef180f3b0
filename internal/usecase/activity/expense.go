package activity

import (
	"cmp"
	"slices"

	"github.com/shopspring/decimal"
	"github.com/simaogato/wealthflow-tracker/internal/calendar"
	"github.com/simaogato/wealthflow-tracker/internal/domain"
)

// UnspecifiedPaymentMethod groups expenses recorded without a payment method
const UnspecifiedPaymentMethod = "Unspecified"

// ExpenseTotal sums the expenses dated in the given month, in RON
func ExpenseTotal(expenses []domain.Expense, year, month0 int) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		if calendar.MatchesMonth(e.Date, year, month0) {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// ExpenseTrend is the monthly expense total over n months ending at (year, month0)
func ExpenseTrend(expenses []domain.Expense, n, year, month0 int) Series {
	return Trend(n, year, month0, func(m calendar.Month) decimal.Decimal {
		return ExpenseTotal(expenses, m.Year, m.Month0)
	})
}

// Total is an amount grouped under a name
type Total struct {
	Name   string
	Amount decimal.Decimal
	Share  decimal.Decimal // percent of the month total
}

// TopCategories ranks the month's categories by total, largest first.
// Equal totals follow the order of categories; unlisted categories come last, by name.
// A limit <= 0 returns every category.
func TopCategories(expenses []domain.Expense, year, month0 int, categories []string, limit int) []Total {
	settings := domain.Settings{ExpenseCategories: categories}
	totals := groupExpenses(expenses, year, month0, func(e domain.Expense) string { return e.Category })

	slices.SortFunc(totals, func(a, b Total) int {
		if c := b.Amount.Cmp(a.Amount); c != 0 {
			return c
		}
		if c := cmp.Compare(settings.CategoryRank(a.Name), settings.CategoryRank(b.Name)); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})

	if limit > 0 && len(totals) > limit {
		totals = totals[:limit]
	}
	return totals
}

// PaymentMethodTotals groups the month's expenses by payment method, largest first
func PaymentMethodTotals(expenses []domain.Expense, year, month0 int) []Total {
	totals := groupExpenses(expenses, year, month0, func(e domain.Expense) string {
		if e.PaymentMethod == "" {
			return UnspecifiedPaymentMethod
		}
		return e.PaymentMethod
	})
	slices.SortFunc(totals, func(a, b Total) int {
		if c := b.Amount.Cmp(a.Amount); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return totals
}

func groupExpenses(expenses []domain.Expense, year, month0 int, key func(domain.Expense) string) []Total {
	sums := make(map[string]decimal.Decimal)
	var order []string
	total := decimal.Zero
	for _, e := range expenses {
		if !calendar.MatchesMonth(e.Date, year, month0) {
			continue
		}
		k := key(e)
		if _, ok := sums[k]; !ok {
			order = append(order, k)
		}
		sums[k] = sums[k].Add(e.Amount)
		total = total.Add(e.Amount)
	}

	out := make([]Total, 0, len(order))
	for _, k := range order {
		share := decimal.Zero
		if total.IsPositive() {
			share = sums[k].Div(total).Mul(hundred)
		}
		out = append(out, Total{Name: k, Amount: sums[k], Share: share})
	}
	return out
}
