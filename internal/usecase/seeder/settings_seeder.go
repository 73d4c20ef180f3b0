// Package seeder installs default settings into an empty dataset.
package seeder

import (
	"context"
	"fmt"

	"github.com/simaogato/wealthflow-tracker/internal/domain"
)

// DefaultExpenseCategories are installed when a dataset has no category list.
// Their order drives the category ordering of the expense breakdown.
var DefaultExpenseCategories = []string{
	"Housing",
	"Food",
	"Transport",
	"Utilities",
	"Health",
	"Entertainment",
	"Shopping",
	"Other",
}

// SettingsSeeder ensures the settings required by the derived metrics exist
type SettingsSeeder struct {
	SettingsRepo domain.SettingsRepository
}

// NewSettingsSeeder creates a new SettingsSeeder instance
func NewSettingsSeeder(settingsRepo domain.SettingsRepository) *SettingsSeeder {
	return &SettingsSeeder{
		SettingsRepo: settingsRepo,
	}
}

// Seed installs DefaultExpenseCategories when the category list is empty.
// Logic:
// 1. Read the current settings inside the repository mutation
// 2. If categories are already configured, keep them (idempotent)
// 3. Otherwise write the settings back with the default list
// Returns true when the settings were changed.
func (s *SettingsSeeder) Seed(ctx context.Context) (bool, error) {
	changed := false
	err := s.SettingsRepo.MutateSettings(ctx, func(current domain.Settings) (domain.Settings, error) {
		if len(current.ExpenseCategories) > 0 {
			return current, nil
		}
		current.ExpenseCategories = append([]string(nil), DefaultExpenseCategories...)
		changed = true
		return current, nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to seed expense categories: %w", err)
	}
	return changed, nil
}
