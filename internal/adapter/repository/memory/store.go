// Package memory holds the dataset in process memory.
//
// Every mutation builds new collections and swaps the dataset pointer under
// the write lock, so a *domain.AppData returned by Load never changes.
package memory

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/simaogato/wealthflow-tracker/internal/domain"
)

// Store implements the domain repositories over an in-memory dataset
type Store struct {
	mu     sync.RWMutex
	data   *domain.AppData
	subs   map[int]func(*domain.AppData)
	nextID int
}

// NewStore creates a store seeded with data. A nil data starts empty.
func NewStore(data *domain.AppData) *Store {
	if data == nil {
		data = &domain.AppData{}
	}
	return &Store{
		data: data,
		subs: make(map[int]func(*domain.AppData)),
	}
}

// OpenFile seeds a store from a dataset document on disk
func OpenFile(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset file: %w", err)
	}
	defer f.Close()

	data, err := domain.DecodeAppData(f)
	if err != nil {
		return nil, err
	}
	if err := data.Settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings in %s: %w", path, err)
	}
	return NewStore(data), nil
}

// Load returns the current dataset. Callers must not mutate it.
func (s *Store) Load(ctx context.Context) (*domain.AppData, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data, nil
}

// Subscribe registers fn to receive every new dataset after a mutation.
// The returned function removes the subscription.
func (s *Store) Subscribe(fn func(*domain.AppData)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// replace applies fn to a copy of the dataset and publishes the result.
// fn must assign new slices rather than writing into the existing ones.
func (s *Store) replace(ctx context.Context, fn func(next *domain.AppData) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	next := s.data.Clone()
	if err := fn(next); err != nil {
		s.mu.Unlock()
		return err
	}
	s.data = next
	subs := make([]func(*domain.AppData), 0, len(s.subs))
	for _, sub := range s.subs {
		subs = append(subs, sub)
	}
	s.mu.Unlock()

	for _, sub := range subs {
		sub(next)
	}
	return nil
}

// without returns a new slice holding the elements of in for which drop is false
func without[T any](in []T, drop func(T) bool) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		if !drop(v) {
			out = append(out, v)
		}
	}
	return out
}

// appended returns a new slice with v after the elements of in
func appended[T any](in []T, v T) []T {
	out := make([]T, len(in), len(in)+1)
	copy(out, in)
	return append(out, v)
}
