package domain

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense is a single RON spending record
type Expense struct {
	ID            uuid.UUID       `json:"id"`
	Amount        decimal.Decimal `json:"amount"`
	Date          string          `json:"date"`
	Category      string          `json:"category"`
	Merchant      string          `json:"merchant"`
	PaymentMethod string          `json:"paymentMethod,omitempty"`
	Notes         string          `json:"notes,omitempty"`
}

// Validate ensures the expense adheres to domain rules
func (e *Expense) Validate() error {
	if !e.Amount.IsPositive() {
		return invalid("expense amount must be positive")
	}
	if !IsDate(e.Date) {
		return invalid(fmt.Sprintf("expense date %q must be YYYY-MM-DD", e.Date))
	}
	if e.Category == "" {
		return invalid("expense category cannot be empty")
	}
	return nil
}

// Money returns the expense amount tagged with the cash currency
func (e Expense) Money() Money {
	return NewMoney(e.Amount, CashCurrency)
}
