package activity

import (
	"slices"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/wealthflow-tracker/internal/calendar"
	"github.com/simaogato/wealthflow-tracker/internal/domain"
)

// DefaultMoverLimit is the number of movers returned when no limit is given
const DefaultMoverLimit = 5

// Mover is the net deposit flow of one asset in a month
type Mover struct {
	Asset  domain.Asset
	Amount decimal.Decimal
}

// TopMovers ranks assets by the signed sum of their deposits in the month,
// largest first. Zero sums and deposits of unknown assets are dropped.
func TopMovers(deposits []domain.Deposit, year, month0 int, assets []domain.Asset, limit int) []Mover {
	if limit <= 0 {
		limit = DefaultMoverLimit
	}

	sums := make(map[uuid.UUID]decimal.Decimal)
	for _, d := range deposits {
		if calendar.MatchesMonth(d.Date, year, month0) {
			sums[d.AssetID] = sums[d.AssetID].Add(d.Amount)
		}
	}

	movers := make([]Mover, 0, len(sums))
	for _, a := range assets {
		sum, ok := sums[a.ID]
		if !ok || sum.IsZero() {
			continue
		}
		movers = append(movers, Mover{Asset: a, Amount: sum})
	}

	// stable: equal sums keep asset order
	slices.SortStableFunc(movers, func(a, b Mover) int {
		return b.Amount.Cmp(a.Amount)
	})

	if len(movers) > limit {
		movers = movers[:limit]
	}
	return movers
}

// NetFlowTrend is the investment net flow over n months ending at (year, month0)
func NetFlowTrend(deposits []domain.Deposit, n, year, month0 int) Series {
	return Trend(n, year, month0, func(m calendar.Month) decimal.Decimal {
		return MonthlyFlow(deposits, m.Year, m.Month0).NetFlow
	})
}
