package repository

import (
	"context"
	"sync"

	"github.com/reelfolio/core/internal/domain/entities"
	"github.com/reelfolio/core/internal/ports"
)

// MemoryStore keeps the database in process. Load and Save copy, so callers
// observe the same whole-database semantics as FileStore.
type MemoryStore struct {
	mu      sync.Mutex
	db      *entities.DB
	saveErr error
	saves   int
}

var (
	_ ports.RecordStore   = (*MemoryStore)(nil)
	_ ports.StatsReporter = (*MemoryStore)(nil)
)

// NewMemoryStore creates a store seeded with db, or empty when db is nil
func NewMemoryStore(db *entities.DB) *MemoryStore {
	if db == nil {
		db = entities.NewDB()
	}
	return &MemoryStore{db: db.Clone().Normalize()}
}

// Load returns a copy of the stored database
func (s *MemoryStore) Load(ctx context.Context) *entities.DB {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Clone().Normalize()
}

// Save replaces the stored database with a copy of db
func (s *MemoryStore) Save(ctx context.Context, db *entities.DB) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.saveErr != nil {
		return s.saveErr
	}
	if db == nil {
		db = entities.NewDB()
	}
	s.db = db.Clone().Normalize()
	s.saves++
	return nil
}

// FailSaves makes every following Save return err. Pass nil to recover.
func (s *MemoryStore) FailSaves(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveErr = err
}

// Saves returns how many successful saves happened
func (s *MemoryStore) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

// Stats reports the size of each stored collection
func (s *MemoryStore) Stats(ctx context.Context) ports.StoreStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ports.StoreStats{
		Projects: len(s.db.Projects),
		Incomes:  len(s.db.Incomes),
	}
}
