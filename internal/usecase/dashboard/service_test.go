package dashboard

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
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

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

// sampleData: investments 1000 EUR, savings 2500 RON, emergency 500 RON, rate 5
func sampleData() *domain.AppData {
	asset := domain.Asset{ID: uuid.New(), Name: "VWCE", Type: domain.AssetTypeETF}
	bucket := domain.SavingsBucket{ID: uuid.New(), Name: "Vacation", Target: decimal.NewNullDecimal(dec(5000))}
	return &domain.AppData{
		Assets:         []domain.Asset{asset},
		Deposits:       []domain.Deposit{{ID: uuid.New(), AssetID: asset.ID, Date: "2024-01-01", Amount: dec(800)}},
		Snapshots:      []domain.Snapshot{{ID: uuid.New(), AssetID: asset.ID, Date: "2024-02-01", Price: dec(1000)}},
		SavingsBuckets: []domain.SavingsBucket{bucket},
		SavingsTransactions: []domain.SavingsTransaction{
			{ID: uuid.New(), BucketID: bucket.ID, Amount: dec(3000), Date: "2024-01-01", Type: domain.LedgerTypeAdd},
			{ID: uuid.New(), BucketID: bucket.ID, Amount: dec(500), Date: "2024-01-05", Type: domain.LedgerTypeWithdraw},
		},
		EmergencyTransactions: []domain.EmergencyTransaction{
			{ID: uuid.New(), Amount: dec(500), Date: "2024-01-01", Type: domain.LedgerTypeAdd},
		},
		Settings: domain.Settings{EURRate: dec(5), EmergencyTarget: decimal.NewNullDecimal(dec(1000))},
	}
}

func TestGetNetWorth(t *testing.T) {
	tests := []struct {
		name        string
		currency    domain.Currency
		total       int64
		investments int64
		savings     int64
		emergency   int64
	}{
		{name: "in RON", currency: domain.RON, total: 8000, investments: 5000, savings: 2500, emergency: 500},
		{name: "in EUR", currency: domain.EUR, total: 1600, investments: 1000, savings: 500, emergency: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			mockRepo := new(MockDatasetRepository)
			service := NewDashboardService(mockRepo)
			mockRepo.On("Load", ctx).Return(sampleData(), nil)

			result, err := service.GetNetWorth(ctx, tt.currency)
			require.NoError(t, err)

			assert.Equal(t, tt.currency, result.Total.Currency)
			assert.True(t, result.Total.Amount.Equal(dec(tt.total)), "total %s", result.Total.Amount)
			assert.True(t, result.Investments.Amount.Equal(dec(tt.investments)))
			assert.True(t, result.Savings.Amount.Equal(dec(tt.savings)))
			assert.True(t, result.Emergency.Amount.Equal(dec(tt.emergency)))
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestGetNetWorth_MissingRate(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockDatasetRepository)
	service := NewDashboardService(mockRepo)
	data := sampleData()
	data.Settings.EURRate = decimal.Zero
	mockRepo.On("Load", ctx).Return(data, nil)

	_, err := service.GetNetWorth(ctx, domain.RON)

	assert.ErrorIs(t, err, domain.ErrMissingRate)
}

func TestGetNetWorth_NoRateNeeded(t *testing.T) {
	tests := []struct {
		name     string
		data     *domain.AppData
		currency domain.Currency
		total    int64
	}{
		{name: "empty dataset in RON", data: &domain.AppData{}, currency: domain.RON, total: 0},
		{name: "empty dataset in EUR", data: &domain.AppData{}, currency: domain.EUR, total: 0},
		{
			name: "no investments in RON",
			data: &domain.AppData{EmergencyTransactions: []domain.EmergencyTransaction{
				{ID: uuid.New(), Amount: dec(500), Date: "2024-01-01", Type: domain.LedgerTypeAdd},
			}},
			currency: domain.RON,
			total:    500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			mockRepo := new(MockDatasetRepository)
			service := NewDashboardService(mockRepo)
			mockRepo.On("Load", ctx).Return(tt.data, nil)

			result, err := service.GetNetWorth(ctx, tt.currency)
			require.NoError(t, err)

			assert.Equal(t, tt.currency, result.Total.Currency)
			assert.True(t, result.Total.Amount.Equal(dec(tt.total)), "total %s", result.Total.Amount)
			assert.Equal(t, tt.currency, result.Investments.Currency)
		})
	}
}

func TestGetNetWorth_UnsupportedCurrency(t *testing.T) {
	mockRepo := new(MockDatasetRepository)
	service := NewDashboardService(mockRepo)

	_, err := service.GetNetWorth(context.Background(), domain.Currency("USD"))

	assert.ErrorIs(t, err, domain.ErrInvalid)
	mockRepo.AssertNotCalled(t, "Load")
}

func TestGetBalances(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockDatasetRepository)
	service := NewDashboardService(mockRepo)
	mockRepo.On("Load", ctx).Return(sampleData(), nil)

	result, err := service.GetBalances(ctx)
	require.NoError(t, err)

	require.Len(t, result.Buckets, 1)
	assert.True(t, result.Buckets[0].Balance.Equal(dec(2500)))
	assert.True(t, result.Buckets[0].Progress.Equal(dec(50)))
	assert.True(t, result.Emergency.Balance.Equal(dec(500)))
	assert.True(t, result.Emergency.Progress.Equal(dec(50)))
	assert.True(t, result.Total.Equal(dec(2500)))
}
