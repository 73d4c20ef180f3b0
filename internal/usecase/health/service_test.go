package health

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/simaogato/wealthflow-tracker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockDatasetRepository is a mock implementation of DatasetRepository for testing
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

// MockHealthLogRepository is a mock implementation of HealthLogRepository for testing
type MockHealthLogRepository struct {
	mock.Mock
}

func (m *MockHealthLogRepository) AddHealthLog(ctx context.Context, log *domain.HealthLog) error {
	args := m.Called(ctx, log)
	if args.Error(0) == nil {
		log.ID = uuid.New()
	}
	return args.Error(0)
}

func TestGetSummary(t *testing.T) {
	ctx := context.Background()
	repo := new(MockDatasetRepository)
	service := NewHealthService(repo, new(MockHealthLogRepository))
	service.Now = func() time.Time { return time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC) }

	data := &domain.AppData{
		HealthLogs: []domain.HealthLog{
			weight("2024-02-18", 90),
			weight("2024-02-25", 88),
			weight("2024-03-03", 86),
			weight("2024-03-10", 85),
			{ID: uuid.New(), Date: "2024-03-10", Type: domain.HealthLogSteps, Value: 5000},
			{ID: uuid.New(), Date: "2024-03-10", Type: domain.HealthLogSteps, Value: 3000},
			{ID: uuid.New(), Date: "2024-03-09", Type: domain.HealthLogCalories, Value: 700},
		},
		Settings: domain.Settings{
			Height:       180,
			TargetWeight: ptr(80),
			TargetDate:   "2024-04-09",
			StepTarget:   ptr(10000),
		},
	}
	repo.On("Load", ctx).Return(data, nil)

	sum, err := service.GetSummary(ctx)
	require.NoError(t, err)

	assert.Equal(t, "2024-03-10", sum.Date)
	assert.True(t, sum.HasWeight)
	assert.Equal(t, 85.0, sum.LatestWeight)
	assert.True(t, sum.HasBMI)
	assert.InDelta(t, 26.23, sum.BMI, 0.01)
	assert.Equal(t, BMIOverweight, sum.Category)
	assert.InDelta(t, -1.25, sum.Trend, 1e-9)
	assert.InDelta(t, 80.0, sum.ProjectedWeight, 1e-9)
	assert.True(t, sum.HasWeightGoal)
	assert.InDelta(t, 50.0, sum.WeightGoalProgress, 1e-9)
	assert.True(t, sum.HasTargetDate)
	assert.Equal(t, 30, sum.DaysRemaining)
	assert.Equal(t, 8000.0, sum.Steps)
	assert.True(t, sum.HasStepGoal)
	assert.Equal(t, 80, sum.StepProgress)
	assert.Zero(t, sum.Calories)
	assert.False(t, sum.HasCalorieGoal)
	repo.AssertExpectations(t)
}

func TestGetSummary_NoData(t *testing.T) {
	sum := Summarize(nil, domain.Settings{}, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	assert.False(t, sum.HasWeight)
	assert.False(t, sum.HasBMI)
	assert.Empty(t, sum.Category)
	assert.False(t, sum.HasTargetDate)
	assert.False(t, sum.HasStepGoal)
}

func TestGetSummary_RepositoryError(t *testing.T) {
	ctx := context.Background()
	repo := new(MockDatasetRepository)
	service := NewHealthService(repo, new(MockHealthLogRepository))
	repo.On("Load", ctx).Return(nil, errors.New("store unavailable"))

	sum, err := service.GetSummary(ctx)
	assert.Nil(t, sum)
	assert.ErrorContains(t, err, "store unavailable")
}

func TestLogHealth(t *testing.T) {
	ctx := context.Background()
	logRepo := new(MockHealthLogRepository)
	service := NewHealthService(new(MockDatasetRepository), logRepo)
	service.Now = func() time.Time { return time.Date(2024, 3, 10, 21, 0, 0, 0, time.UTC) }
	logRepo.On("AddHealthLog", ctx, mock.MatchedBy(func(l *domain.HealthLog) bool {
		return l.Date == "2024-03-10" && l.Type == domain.HealthLogSteps
	})).Return(nil).Once()

	got, err := service.LogHealth(ctx, domain.HealthLog{Type: domain.HealthLogSteps, Value: 9000})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.Equal(t, "2024-03-10", got.Date)

	logRepo.On("AddHealthLog", ctx, mock.Anything).Return(domain.ErrInvalid).Once()
	_, err = service.LogHealth(ctx, domain.HealthLog{Type: "Mood", Date: "2024-03-10"})
	assert.ErrorIs(t, err, domain.ErrInvalid)
	assert.ErrorContains(t, err, "failed to log Mood")
}
