// Package ledger folds Add/Withdraw transactions into bucket and emergency fund balances.
package ledger

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/wealthflow-tracker/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// RunningBalance folds Add/Withdraw transactions into a balance.
// The type carries the direction: Add contributes +|amount|, Withdraw -|amount|.
// Unknown types contribute nothing. Order does not matter.
func RunningBalance[T domain.LedgerEntry](txs []T) decimal.Decimal {
	balance := decimal.Zero
	for _, tx := range txs {
		typ, amount := tx.Entry()
		switch typ {
		case domain.LedgerTypeAdd:
			balance = balance.Add(amount.Abs())
		case domain.LedgerTypeWithdraw:
			balance = balance.Sub(amount.Abs())
		}
	}
	return balance
}

// Progress returns min(100, balance/target*100).
// ok is false when no positive target is set.
func Progress(balance decimal.Decimal, target decimal.NullDecimal) (percent decimal.Decimal, ok bool) {
	if !target.Valid || !target.Decimal.IsPositive() {
		return decimal.Zero, false
	}
	return decimal.Min(hundred, balance.Div(target.Decimal).Mul(hundred)), true
}

// Balance is the recomputed state of a savings bucket or the emergency fund, in RON
type Balance struct {
	BucketID    uuid.UUID // uuid.Nil for the emergency fund
	Name        string
	Balance     decimal.Decimal
	Target      decimal.NullDecimal
	Progress    decimal.Decimal
	HasProgress bool
}

// Money returns the balance tagged with the cash currency
func (b Balance) Money() domain.Money {
	return domain.NewMoney(b.Balance, domain.CashCurrency)
}

// BucketBalances computes the balance of every bucket from the transactions scoped to it.
// Transactions of deleted buckets are ignored.
func BucketBalances(buckets []domain.SavingsBucket, txs []domain.SavingsTransaction) []Balance {
	byBucket := make(map[uuid.UUID][]domain.SavingsTransaction, len(buckets))
	for _, tx := range txs {
		byBucket[tx.BucketID] = append(byBucket[tx.BucketID], tx)
	}

	out := make([]Balance, 0, len(buckets))
	for _, b := range buckets {
		balance := RunningBalance(byBucket[b.ID])
		progress, ok := Progress(balance, b.Target)
		out = append(out, Balance{
			BucketID:    b.ID,
			Name:        b.Name,
			Balance:     balance,
			Target:      b.Target,
			Progress:    progress,
			HasProgress: ok,
		})
	}
	return out
}

// EmergencyName is the display name of the emergency fund balance
const EmergencyName = "Emergency Fund"

// EmergencyFund computes the single emergency fund balance against its target
func EmergencyFund(txs []domain.EmergencyTransaction, target decimal.NullDecimal) Balance {
	balance := RunningBalance(txs)
	progress, ok := Progress(balance, target)
	return Balance{
		Name:        EmergencyName,
		Balance:     balance,
		Target:      target,
		Progress:    progress,
		HasProgress: ok,
	}
}

// TotalSavings sums the balances of every bucket
func TotalSavings(balances []Balance) decimal.Decimal {
	total := decimal.Zero
	for _, b := range balances {
		total = total.Add(b.Balance)
	}
	return total
}
