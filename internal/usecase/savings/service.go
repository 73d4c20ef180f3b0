// Package savings records savings buckets and their transactions.
package savings

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/simaogato/wealthflow-tracker/internal/domain"
)

// SavingsService records savings bucket and emergency fund movements.
// Balances are never stored; dashboard.DashboardService folds them on read.
type SavingsService struct {
	SavingsRepo domain.SavingsRepository
}

// NewSavingsService creates a new SavingsService instance
func NewSavingsService(savingsRepo domain.SavingsRepository) *SavingsService {
	return &SavingsService{
		SavingsRepo: savingsRepo,
	}
}

// CreateBucket registers a savings goal. The repository assigns its id.
func (s *SavingsService) CreateBucket(ctx context.Context, bucket domain.SavingsBucket) (*domain.SavingsBucket, error) {
	bucket.ID = uuid.Nil
	if err := s.SavingsRepo.AddSavingsBucket(ctx, &bucket); err != nil {
		return nil, fmt.Errorf("failed to create savings bucket: %w", err)
	}
	return &bucket, nil
}

// DeleteBucket removes a bucket and every transaction recorded against it
func (s *SavingsService) DeleteBucket(ctx context.Context, id uuid.UUID) error {
	return s.SavingsRepo.DeleteSavingsBucket(ctx, id)
}

// RecordSavings adds an Add or Withdraw movement to a bucket
func (s *SavingsService) RecordSavings(ctx context.Context, tx domain.SavingsTransaction) (*domain.SavingsTransaction, error) {
	tx.ID = uuid.Nil
	if err := s.SavingsRepo.AddSavingsTransaction(ctx, &tx); err != nil {
		return nil, fmt.Errorf("failed to record savings transaction: %w", err)
	}
	return &tx, nil
}

// RecordEmergency adds an Add or Withdraw movement to the emergency fund
func (s *SavingsService) RecordEmergency(ctx context.Context, tx domain.EmergencyTransaction) (*domain.EmergencyTransaction, error) {
	tx.ID = uuid.Nil
	if err := s.SavingsRepo.AddEmergencyTransaction(ctx, &tx); err != nil {
		return nil, fmt.Errorf("failed to record emergency transaction: %w", err)
	}
	return &tx, nil
}
