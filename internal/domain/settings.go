package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Settings holds process-wide configuration consumed by the derived metrics
type Settings struct {
	EURRate           decimal.Decimal     `json:"eurRate"` // RON for 1 EUR
	EURRateDate       string              `json:"eurRateDate,omitempty"`
	ExpenseCategories []string            `json:"expenseCategories"`
	EmergencyTarget   decimal.NullDecimal `json:"emergencyTarget"`
	Height            float64             `json:"height,omitempty"` // cm
	TargetWeight      *float64            `json:"targetWeight,omitempty"`
	TargetDate        string              `json:"targetDate,omitempty"`
	StepTarget        *float64            `json:"stepTarget,omitempty"`
	CalorieTarget     *float64            `json:"calorieTarget,omitempty"`
}

// Validate ensures the settings adhere to domain rules
func (s *Settings) Validate() error {
	if s.EURRate.IsNegative() {
		return invalid("eur rate cannot be negative")
	}
	if s.EURRateDate != "" && !IsDate(s.EURRateDate) {
		return invalid(fmt.Sprintf("eur rate date %q must be YYYY-MM-DD", s.EURRateDate))
	}
	if s.TargetDate != "" && !IsDate(s.TargetDate) {
		return invalid(fmt.Sprintf("target date %q must be YYYY-MM-DD", s.TargetDate))
	}
	if s.Height < 0 {
		return invalid("height cannot be negative")
	}
	seen := make(map[string]bool, len(s.ExpenseCategories))
	for _, c := range s.ExpenseCategories {
		if c == "" {
			return invalid("expense category cannot be empty")
		}
		if seen[c] {
			return invalid(fmt.Sprintf("duplicate expense category %q", c))
		}
		seen[c] = true
	}
	return nil
}

// CategoryRank returns the position of category in ExpenseCategories,
// or len(ExpenseCategories) when it is not listed.
func (s *Settings) CategoryRank(category string) int {
	for i, c := range s.ExpenseCategories {
		if c == category {
			return i
		}
	}
	return len(s.ExpenseCategories)
}
