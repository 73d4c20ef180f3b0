package memory

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/simaogato/wealthflow-tracker/internal/domain"
)

// AddExpense stores an expense
func (s *Store) AddExpense(ctx context.Context, expense *domain.Expense) error {
	if err := expense.Validate(); err != nil {
		return err
	}
	if expense.ID == uuid.Nil {
		expense.ID = uuid.New()
	}
	return s.replace(ctx, func(next *domain.AppData) error {
		next.Expenses = appended(next.Expenses, *expense)
		return nil
	})
}

// DeleteExpense removes an expense by its ID
func (s *Store) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	return s.replace(ctx, func(next *domain.AppData) error {
		n := len(next.Expenses)
		next.Expenses = without(next.Expenses, func(e domain.Expense) bool { return e.ID == id })
		if len(next.Expenses) == n {
			return fmt.Errorf("expense %s: %w", id, domain.ErrNotFound)
		}
		return nil
	})
}

// AddSavingsBucket stores a new savings bucket
func (s *Store) AddSavingsBucket(ctx context.Context, bucket *domain.SavingsBucket) error {
	if err := bucket.Validate(); err != nil {
		return err
	}
	if bucket.ID == uuid.Nil {
		bucket.ID = uuid.New()
	}
	return s.replace(ctx, func(next *domain.AppData) error {
		next.SavingsBuckets = appended(next.SavingsBuckets, *bucket)
		return nil
	})
}

// DeleteSavingsBucket removes a bucket and its transactions
func (s *Store) DeleteSavingsBucket(ctx context.Context, id uuid.UUID) error {
	return s.replace(ctx, func(next *domain.AppData) error {
		n := len(next.SavingsBuckets)
		next.SavingsBuckets = without(next.SavingsBuckets, func(b domain.SavingsBucket) bool { return b.ID == id })
		if len(next.SavingsBuckets) == n {
			return fmt.Errorf("savings bucket %s: %w", id, domain.ErrNotFound)
		}
		next.SavingsTransactions = without(next.SavingsTransactions, func(t domain.SavingsTransaction) bool { return t.BucketID == id })
		return nil
	})
}

// AddSavingsTransaction stores a transaction against an existing bucket
func (s *Store) AddSavingsTransaction(ctx context.Context, tx *domain.SavingsTransaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}
	if tx.ID == uuid.Nil {
		tx.ID = uuid.New()
	}
	return s.replace(ctx, func(next *domain.AppData) error {
		found := false
		for _, b := range next.SavingsBuckets {
			if b.ID == tx.BucketID {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("savings bucket %s: %w", tx.BucketID, domain.ErrNotFound)
		}
		next.SavingsTransactions = appended(next.SavingsTransactions, *tx)
		return nil
	})
}

// AddEmergencyTransaction stores an emergency fund transaction
func (s *Store) AddEmergencyTransaction(ctx context.Context, tx *domain.EmergencyTransaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}
	if tx.ID == uuid.Nil {
		tx.ID = uuid.New()
	}
	return s.replace(ctx, func(next *domain.AppData) error {
		next.EmergencyTransactions = appended(next.EmergencyTransactions, *tx)
		return nil
	})
}

// AddHealthLog stores a health measurement
func (s *Store) AddHealthLog(ctx context.Context, log *domain.HealthLog) error {
	if err := log.Validate(); err != nil {
		return err
	}
	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}
	return s.replace(ctx, func(next *domain.AppData) error {
		next.HealthLogs = appended(next.HealthLogs, *log)
		return nil
	})
}

// MutateSettings replaces the settings with the result of fn
func (s *Store) MutateSettings(ctx context.Context, fn func(domain.Settings) (domain.Settings, error)) error {
	return s.replace(ctx, func(next *domain.AppData) error {
		settings, err := fn(next.Settings)
		if err != nil {
			return err
		}
		if err := settings.Validate(); err != nil {
			return err
		}
		next.Settings = settings
		return nil
	})
}
