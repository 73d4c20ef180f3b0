// Package activity aggregates deposits and expenses per calendar month:
// net flow, month-over-month comparison, trend series and rankings.
package activity

import (
	"github.com/shopspring/decimal"
	"github.com/simaogato/wealthflow-tracker/internal/calendar"
	"github.com/simaogato/wealthflow-tracker/internal/domain"
	"github.com/simaogato/wealthflow-tracker/internal/usecase/valuation"
)

// Flow is the deposit activity of one month, in EUR
type Flow struct {
	Deposited decimal.Decimal // sum of positive deposits
	Withdrawn decimal.Decimal // sum of |negative deposits|
	NetFlow   decimal.Decimal // Deposited - Withdrawn
}

// MonthlyFlow sums the deposits dated in the given month
func MonthlyFlow(deposits []domain.Deposit, year, month0 int) Flow {
	f := Flow{Deposited: decimal.Zero, Withdrawn: decimal.Zero}
	for _, d := range deposits {
		if !calendar.MatchesMonth(d.Date, year, month0) {
			continue
		}
		if d.Amount.IsPositive() {
			f.Deposited = f.Deposited.Add(d.Amount)
		} else {
			f.Withdrawn = f.Withdrawn.Add(d.Amount.Abs())
		}
	}
	f.NetFlow = f.Deposited.Sub(f.Withdrawn)
	return f
}

// EndOfMonthValue replays the portfolio value as of the last day of the month
func EndOfMonthValue(assets []domain.Asset, deposits []domain.Deposit, snapshots []domain.Snapshot, year, month0 int) decimal.Decimal {
	return valuation.ValuePortfolioAt(assets, deposits, snapshots, calendar.EndOfMonth(year, month0))
}
