package domain

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerType is the direction of a savings or emergency fund transaction
type LedgerType string

const (
	LedgerTypeAdd      LedgerType = "Add"
	LedgerTypeWithdraw LedgerType = "Withdraw"
)

// LedgerEntry is implemented by every Add/Withdraw transaction stream
type LedgerEntry interface {
	Entry() (LedgerType, decimal.Decimal)
}

// SavingsBucket is a named savings goal. Its balance is never stored.
type SavingsBucket struct {
	ID     uuid.UUID           `json:"id"`
	Name   string              `json:"name"`
	Target decimal.NullDecimal `json:"target"`
}

// Validate ensures the bucket adheres to domain rules
func (b *SavingsBucket) Validate() error {
	if b.Name == "" {
		return invalid("bucket name cannot be empty")
	}
	if b.Target.Valid && b.Target.Decimal.IsNegative() {
		return invalid("bucket target cannot be negative")
	}
	return nil
}

// SavingsTransaction moves RON in or out of a savings bucket
type SavingsTransaction struct {
	ID       uuid.UUID       `json:"id"`
	BucketID uuid.UUID       `json:"bucketId"`
	Amount   decimal.Decimal `json:"amount"`
	Date     string          `json:"date"`
	Type     LedgerType      `json:"type"`
	Notes    string          `json:"notes,omitempty"`
}

func (t SavingsTransaction) Entry() (LedgerType, decimal.Decimal) { return t.Type, t.Amount }

// Validate ensures the transaction adheres to domain rules
func (t *SavingsTransaction) Validate() error {
	if t.BucketID == uuid.Nil {
		return invalid("savings transaction must reference a bucket")
	}
	return validateLedger(t.Type, t.Amount, t.Date)
}

// EmergencyTransaction moves RON in or out of the single emergency fund
type EmergencyTransaction struct {
	ID     uuid.UUID       `json:"id"`
	Amount decimal.Decimal `json:"amount"`
	Date   string          `json:"date"`
	Type   LedgerType      `json:"type"`
	Notes  string          `json:"notes,omitempty"`
}

func (t EmergencyTransaction) Entry() (LedgerType, decimal.Decimal) { return t.Type, t.Amount }

// Validate ensures the transaction adheres to domain rules
func (t *EmergencyTransaction) Validate() error {
	return validateLedger(t.Type, t.Amount, t.Date)
}

func validateLedger(typ LedgerType, amount decimal.Decimal, date string) error {
	if typ != LedgerTypeAdd && typ != LedgerTypeWithdraw {
		return invalid("transaction type must be Add or Withdraw")
	}
	if amount.IsZero() {
		return invalid("transaction amount cannot be zero")
	}
	if !IsDate(date) {
		return invalid(fmt.Sprintf("transaction date %q must be YYYY-MM-DD", date))
	}
	return nil
}
