package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/reelfolio/core/internal/domain/entities"
	"github.com/reelfolio/core/internal/infrastructure/logger"
	"github.com/reelfolio/core/internal/ports"
)

// IncomeService handles income tracking operations. Entries are only ever
// added or removed, never edited.
type IncomeService struct {
	store  ports.RecordStore
	logger *logger.Logger
	newID  func() string
}

var _ ports.IncomeService = (*IncomeService)(nil)

// NewIncomeService creates a new income service
func NewIncomeService(store ports.RecordStore, logger *logger.Logger) *IncomeService {
	return &IncomeService{
		store:  store,
		logger: logger,
		newID:  func() string { return uuid.New().String() },
	}
}

// ListIncomes returns every entry, newest date first
func (s *IncomeService) ListIncomes(ctx context.Context) ([]entities.IncomeEntry, error) {
	return s.store.Load(ctx).Incomes, nil
}

// CreateIncome stores a new entry and re-sorts the collection by date
func (s *IncomeService) CreateIncome(ctx context.Context, req ports.IncomeRequest) (*entities.IncomeEntry, error) {
	db := s.store.Load(ctx)

	entry := req.ToIncome(s.newID())
	db.Incomes = entities.InsertIncome(db.Incomes, entry)

	if err := s.store.Save(ctx, db); err != nil {
		return nil, fmt.Errorf("failed to create income entry: %w: %w", entities.ErrStorageWriteFailed, err)
	}

	s.logger.LogRecordChange("incomes", "create", entry.ID)

	return &entry, nil
}

// DeleteIncome removes the entry stored under id
func (s *IncomeService) DeleteIncome(ctx context.Context, id string) error {
	db := s.store.Load(ctx)

	index := db.IncomeIndex(id)
	if index == -1 {
		return fmt.Errorf("delete income %s: %w", id, entities.ErrIncomeNotFound)
	}

	db.Incomes = append(db.Incomes[:index], db.Incomes[index+1:]...)

	if err := s.store.Save(ctx, db); err != nil {
		return fmt.Errorf("failed to delete income entry: %w: %w", entities.ErrStorageWriteFailed, err)
	}

	s.logger.LogRecordChange("incomes", "delete", id)

	return nil
}

// Summary totals the collection and groups it by month
func (s *IncomeService) Summary(ctx context.Context) (*entities.IncomeSummary, error) {
	summary := entities.SummarizeIncomes(s.store.Load(ctx).Incomes)
	return &summary, nil
}
