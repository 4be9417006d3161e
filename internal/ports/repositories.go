package ports

import (
	"context"

	"github.com/reelfolio/core/internal/domain/entities"
)

// RecordStore is the durable home of both collections. It is addressed only
// as whole-database read and whole-database write; callers mutate in memory
// between the two.
type RecordStore interface {
	// Load returns the current database. A missing or unreadable backing
	// file yields an empty database, never an error.
	Load(ctx context.Context) *entities.DB
	// Save replaces the persisted database with db.
	Save(ctx context.Context, db *entities.DB) error
}

// StoreStats describes the size of the persisted collections
type StoreStats struct {
	Projects int `json:"projects"`
	Incomes  int `json:"incomes"`
}

// StatsReporter is implemented by stores able to describe themselves
type StatsReporter interface {
	Stats(ctx context.Context) StoreStats
}
