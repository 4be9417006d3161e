package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/reelfolio/core/internal/domain/entities"
	"github.com/reelfolio/core/internal/infrastructure/logger"
	"github.com/reelfolio/core/internal/ports"
)

// FileStore persists the database as one pretty-printed JSON document.
//
// The mutex only makes a single Load or Save atomic with respect to other
// calls on the same store. A handler's load, mutate, save sequence is not
// serialized, so two concurrent writers can still lose an update.
type FileStore struct {
	path   string
	mu     sync.Mutex
	logger *logger.Logger
}

var (
	_ ports.RecordStore   = (*FileStore)(nil)
	_ ports.StatsReporter = (*FileStore)(nil)
)

// NewFileStore creates a store backed by the file at path. The file does
// not need to exist yet.
func NewFileStore(path string, logger *logger.Logger) *FileStore {
	return &FileStore{
		path:   path,
		logger: logger.WithComponent("file_store"),
	}
}

// Path returns the backing file location
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the backing file. A missing or corrupt file is logged and
// replaced by an empty database.
func (s *FileStore) Load(ctx context.Context) *entities.DB {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logger.LogStorageEvent("file_missing", s.path, nil)
		} else {
			s.logger.LogStorageEvent("read_failed", s.path, err)
		}
		return entities.NewDB()
	}

	var db entities.DB
	if err := json.Unmarshal(data, &db); err != nil {
		s.logger.LogStorageEvent("parse_failed", s.path, err)
		return entities.NewDB()
	}

	return db.Normalize()
}

// Save writes db to a temporary file next to the backing file and renames
// it into place.
func (s *FileStore) Save(ctx context.Context, db *entities.DB) error {
	if db == nil {
		db = entities.NewDB()
	}

	data, err := json.MarshalIndent(db.Clone().Normalize(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode database: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create storage directory: %w", err)
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write database: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace database: %w", err)
	}

	s.logger.Debugw("Database saved", "path", s.path, "bytes", len(data))
	return nil
}

// Stats reports the size of each persisted collection
func (s *FileStore) Stats(ctx context.Context) ports.StoreStats {
	db := s.Load(ctx)
	return ports.StoreStats{
		Projects: len(db.Projects),
		Incomes:  len(db.Incomes),
	}
}

// Init writes an empty database if the backing file does not exist yet. It
// reports whether a file was created.
func (s *FileStore) Init(ctx context.Context) (bool, error) {
	if _, err := os.Stat(s.path); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("failed to inspect database file: %w", err)
	}

	if err := s.Save(ctx, entities.NewDB()); err != nil {
		return false, err
	}
	return true, nil
}
