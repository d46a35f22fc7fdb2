// Package budget stores budget and savings-goal definitions keyed by
// sender+period. The in-memory implementation guards concurrent updates with
// compare-and-swap instead of last-write-wins.
package budget

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/nazhif/duitbot/internal/domain"
)

// Key identifies one budget definition.
type Key struct {
	Sender string
	Period domain.Period
}

// Entry is one stored budget or goal. Version increments on every write and
// drives compare-and-swap.
type Entry struct {
	Key       Key
	Params    domain.BudgetParams
	Version   int64
	UpdatedAt time.Time
}

// ErrNotFound is returned when no entry exists for a key.
var ErrNotFound = fmt.Errorf("budget entry not found")

// ErrVersionConflict is returned by CompareAndSwap when the stored version no
// longer matches the expected one.
var ErrVersionConflict = fmt.Errorf("budget entry version conflict")

// Store defines the budget store contract. A durable implementation can back
// this with a database; the interface is deliberately get/set/CAS/delete only.
type Store interface {
	Get(ctx context.Context, key Key) (*Entry, error)
	Set(ctx context.Context, key Key, params domain.BudgetParams) (*Entry, error)
	CompareAndSwap(ctx context.Context, key Key, params domain.BudgetParams, expectedVersion int64) (*Entry, error)
	Delete(ctx context.Context, key Key) error
}

// MemoryStore is an in-memory implementation of Store. It is safe for
// concurrent use; data is lost on restart.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[Key]*Entry
}

// NewMemoryStore creates an empty in-memory budget store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[Key]*Entry),
	}
}

// Get retrieves an entry by key. It returns a copy to avoid external
// modifications.
func (s *MemoryStore) Get(ctx context.Context, key Key) (*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, exists := s.entries[key]
	if !exists {
		return nil, fmt.Errorf("Get %s/%s: %w", key.Sender, key.Period, ErrNotFound)
	}

	cp := *entry
	return &cp, nil
}

// Set writes an entry unconditionally, bumping the version.
func (s *MemoryStore) Set(ctx context.Context, key Key, params domain.BudgetParams) (*Entry, error) {
	if key.Sender == "" {
		return nil, fmt.Errorf("Set: sender is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.writeLocked(key, params), nil
}

// CompareAndSwap writes only when the stored version matches expectedVersion.
// Use expectedVersion 0 to require that no entry exists yet.
func (s *MemoryStore) CompareAndSwap(ctx context.Context, key Key, params domain.BudgetParams, expectedVersion int64) (*Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var current int64
	if entry, exists := s.entries[key]; exists {
		current = entry.Version
	}
	if current != expectedVersion {
		return nil, fmt.Errorf("CompareAndSwap %s/%s: have v%d, want v%d: %w",
			key.Sender, key.Period, current, expectedVersion, ErrVersionConflict)
	}

	return s.writeLocked(key, params), nil
}

// Delete removes an entry. Deleting a missing key is not an error.
func (s *MemoryStore) Delete(ctx context.Context, key Key) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
	return nil
}

func (s *MemoryStore) writeLocked(key Key, params domain.BudgetParams) *Entry {
	var version int64 = 1
	if existing, exists := s.entries[key]; exists {
		version = existing.Version + 1
	}
	entry := &Entry{
		Key:       key,
		Params:    params,
		Version:   version,
		UpdatedAt: time.Now(),
	}
	s.entries[key] = entry

	cp := *entry
	return &cp
}

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)
