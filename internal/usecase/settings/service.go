// Package settings reads and patches the engine settings: the EUR rate,
// expense categories and the savings and health goals.
package settings

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/simaogato/wealthflow-tracker/internal/domain"
)

// Field is one settings value to change. A Field with Set false keeps the current value.
type Field[T any] struct {
	Set   bool
	Value T
}

// Set returns a Field that replaces the current value with v
func Set[T any](v T) Field[T] {
	return Field[T]{Set: true, Value: v}
}

// Update is a partial settings change. Pointer and NullDecimal values clear a goal when nil or invalid.
type Update struct {
	EURRate           Field[decimal.Decimal]
	EURRateDate       Field[string]
	ExpenseCategories Field[[]string]
	EmergencyTarget   Field[decimal.NullDecimal]
	Height            Field[float64]
	TargetWeight      Field[*float64]
	TargetDate        Field[string]
	StepTarget        Field[*float64]
	CalorieTarget     Field[*float64]
}

// Apply returns current with every set field of u replaced
func (u Update) Apply(current domain.Settings) domain.Settings {
	next := current
	apply(&next.EURRate, u.EURRate)
	apply(&next.EURRateDate, u.EURRateDate)
	apply(&next.EmergencyTarget, u.EmergencyTarget)
	apply(&next.Height, u.Height)
	apply(&next.TargetWeight, u.TargetWeight)
	apply(&next.TargetDate, u.TargetDate)
	apply(&next.StepTarget, u.StepTarget)
	apply(&next.CalorieTarget, u.CalorieTarget)
	if u.ExpenseCategories.Set {
		next.ExpenseCategories = append([]string(nil), u.ExpenseCategories.Value...)
	}
	return next
}

func apply[T any](dst *T, f Field[T]) {
	if f.Set {
		*dst = f.Value
	}
}

// SettingsService handles settings reads and updates
type SettingsService struct {
	DataRepo     domain.DatasetRepository
	SettingsRepo domain.SettingsRepository
}

// NewSettingsService creates a new SettingsService instance
func NewSettingsService(dataRepo domain.DatasetRepository, settingsRepo domain.SettingsRepository) *SettingsService {
	return &SettingsService{
		DataRepo:     dataRepo,
		SettingsRepo: settingsRepo,
	}
}

// GetSettings returns the current settings
func (s *SettingsService) GetSettings(ctx context.Context) (*domain.Settings, error) {
	data, err := s.DataRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}
	settings := data.Settings
	return &settings, nil
}

// UpdateSettings applies u atomically and returns the stored result.
// Invalid results (negative rate, duplicate category, malformed date) leave the settings unchanged.
func (s *SettingsService) UpdateSettings(ctx context.Context, u Update) (*domain.Settings, error) {
	var result domain.Settings
	err := s.SettingsRepo.MutateSettings(ctx, func(current domain.Settings) (domain.Settings, error) {
		result = u.Apply(current)
		if err := result.Validate(); err != nil {
			return domain.Settings{}, err
		}
		return result, nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
