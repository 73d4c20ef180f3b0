package seeder

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/simaogato/wealthflow-tracker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockSettingsRepository is a mock implementation of SettingsRepository.
// MutateSettings applies fn to Settings when the expectation returns no error.
type MockSettingsRepository struct {
	mock.Mock
	Settings domain.Settings
}

func (m *MockSettingsRepository) MutateSettings(ctx context.Context, fn func(domain.Settings) (domain.Settings, error)) error {
	args := m.Called(ctx)
	if err := args.Error(0); err != nil {
		return err
	}
	next, err := fn(m.Settings)
	if err != nil {
		return err
	}
	m.Settings = next
	return nil
}

func TestSettingsSeeder_Seed_CategoriesMissing(t *testing.T) {
	ctx := context.Background()
	rate := decimal.RequireFromString("4.97")
	settingsRepo := &MockSettingsRepository{Settings: domain.Settings{EURRate: rate}}
	settingsRepo.On("MutateSettings", ctx).Return(nil)
	seeder := NewSettingsSeeder(settingsRepo)

	changed, err := seeder.Seed(ctx)

	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, DefaultExpenseCategories, settingsRepo.Settings.ExpenseCategories)
	assert.True(t, settingsRepo.Settings.EURRate.Equal(rate))
	settingsRepo.AssertExpectations(t)
}

func TestSettingsSeeder_Seed_CategoriesPresent(t *testing.T) {
	ctx := context.Background()
	settingsRepo := &MockSettingsRepository{Settings: domain.Settings{ExpenseCategories: []string{"Food"}}}
	settingsRepo.On("MutateSettings", ctx).Return(nil)
	seeder := NewSettingsSeeder(settingsRepo)

	changed, err := seeder.Seed(ctx)
	require.NoError(t, err)
	assert.False(t, changed)

	// running again changes nothing either
	changed, err = seeder.Seed(ctx)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, []string{"Food"}, settingsRepo.Settings.ExpenseCategories)
}

func TestSettingsSeeder_Seed_Error(t *testing.T) {
	ctx := context.Background()
	settingsRepo := new(MockSettingsRepository)
	settingsRepo.On("MutateSettings", ctx).Return(errors.New("boom"))

	changed, err := NewSettingsSeeder(settingsRepo).Seed(ctx)

	assert.False(t, changed)
	assert.ErrorContains(t, err, "failed to seed expense categories")
	assert.Empty(t, settingsRepo.Settings.ExpenseCategories)
}

func TestDefaultExpenseCategories_AreValid(t *testing.T) {
	s := domain.Settings{ExpenseCategories: DefaultExpenseCategories}
	assert.NoError(t, s.Validate())
}
