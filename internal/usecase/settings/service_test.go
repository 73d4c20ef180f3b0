package settings

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/simaogato/wealthflow-tracker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockDatasetRepository is a mock implementation of DatasetRepository
type MockDatasetRepository struct {
	mock.Mock
}

func (m *MockDatasetRepository) Load(ctx context.Context) (*domain.AppData, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AppData), args.Error(1)
}

// MockSettingsRepository applies mutations to Settings
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

func ptr(v float64) *float64 { return &v }

func TestUpdate_Apply(t *testing.T) {
	current := domain.Settings{
		EURRate:           decimal.RequireFromString("4.97"),
		ExpenseCategories: []string{"Food"},
		Height:            180,
		TargetWeight:      ptr(80),
		StepTarget:        ptr(8000),
	}

	tests := []struct {
		name   string
		update Update
		check  func(t *testing.T, got domain.Settings)
	}{
		{
			name:   "empty update keeps everything",
			update: Update{},
			check: func(t *testing.T, got domain.Settings) {
				assert.Equal(t, current, got)
			},
		},
		{
			name:   "rate only",
			update: Update{EURRate: Set(decimal.RequireFromString("5.01")), EURRateDate: Set("2024-03-01")},
			check: func(t *testing.T, got domain.Settings) {
				assert.True(t, got.EURRate.Equal(decimal.RequireFromString("5.01")))
				assert.Equal(t, "2024-03-01", got.EURRateDate)
				assert.Equal(t, []string{"Food"}, got.ExpenseCategories)
				assert.Equal(t, 180.0, got.Height)
			},
		},
		{
			name:   "clearing a goal",
			update: Update{TargetWeight: Set[*float64](nil)},
			check: func(t *testing.T, got domain.Settings) {
				assert.Nil(t, got.TargetWeight)
				assert.Equal(t, ptr(8000), got.StepTarget)
			},
		},
		{
			name:   "categories are copied",
			update: Update{ExpenseCategories: Set([]string{"Rent", "Food"})},
			check: func(t *testing.T, got domain.Settings) {
				assert.Equal(t, []string{"Rent", "Food"}, got.ExpenseCategories)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, tt.update.Apply(current))
		})
	}
}

func TestUpdateSettings(t *testing.T) {
	ctx := context.Background()
	repo := &MockSettingsRepository{Settings: domain.Settings{ExpenseCategories: []string{"Food"}}}
	repo.On("MutateSettings", ctx).Return(nil)
	service := NewSettingsService(new(MockDatasetRepository), repo)

	got, err := service.UpdateSettings(ctx, Update{
		EURRate:         Set(decimal.RequireFromString("4.97")),
		EmergencyTarget: Set(decimal.NewNullDecimal(decimal.NewFromInt(10000))),
	})

	require.NoError(t, err)
	assert.True(t, got.EURRate.Equal(decimal.RequireFromString("4.97")))
	assert.Equal(t, *got, repo.Settings)
	assert.Equal(t, []string{"Food"}, repo.Settings.ExpenseCategories)
}

func TestUpdateSettings_Invalid(t *testing.T) {
	ctx := context.Background()
	before := domain.Settings{EURRate: decimal.NewFromInt(5)}

	tests := []struct {
		name   string
		update Update
	}{
		{"negative rate", Update{EURRate: Set(decimal.NewFromInt(-1))}},
		{"duplicate category", Update{ExpenseCategories: Set([]string{"Food", "Food"})}},
		{"bad target date", Update{TargetDate: Set("June")}},
		{"negative height", Update{Height: Set(-1.0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &MockSettingsRepository{Settings: before}
			repo.On("MutateSettings", ctx).Return(nil)
			service := NewSettingsService(new(MockDatasetRepository), repo)

			_, err := service.UpdateSettings(ctx, tt.update)

			assert.ErrorIs(t, err, domain.ErrInvalid)
			assert.Equal(t, before, repo.Settings)
		})
	}
}

func TestGetSettings(t *testing.T) {
	ctx := context.Background()
	data := new(MockDatasetRepository)
	data.On("Load", ctx).Return(&domain.AppData{Settings: domain.Settings{Height: 172}}, nil)
	service := NewSettingsService(data, new(MockSettingsRepository))

	got, err := service.GetSettings(ctx)

	require.NoError(t, err)
	assert.Equal(t, 172.0, got.Height)
}
