package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/reelfolio/core/internal/domain/entities"
	"github.com/reelfolio/core/internal/infrastructure/logger"
	"github.com/reelfolio/core/internal/ports"
)

// ProjectService handles portfolio project operations
type ProjectService struct {
	store  ports.RecordStore
	logger *logger.Logger
	newID  func() string
}

var _ ports.ProjectService = (*ProjectService)(nil)

// NewProjectService creates a new project service
func NewProjectService(store ports.RecordStore, logger *logger.Logger) *ProjectService {
	return &ProjectService{
		store:  store,
		logger: logger,
		newID:  func() string { return uuid.New().String() },
	}
}

// ListProjects returns every project, most recent first
func (s *ProjectService) ListProjects(ctx context.Context) ([]entities.Project, error) {
	return s.store.Load(ctx).Projects, nil
}

// GetProject returns the project stored under id
func (s *ProjectService) GetProject(ctx context.Context, id string) (*entities.Project, error) {
	db := s.store.Load(ctx)

	index := db.ProjectIndex(id)
	if index == -1 {
		return nil, fmt.Errorf("get project %s: %w", id, entities.ErrProjectNotFound)
	}

	project := db.Projects[index]
	return &project, nil
}

// CreateProject stores a new project at the front of the collection
func (s *ProjectService) CreateProject(ctx context.Context, req ports.ProjectRequest) (*entities.Project, error) {
	db := s.store.Load(ctx)

	project := req.ToProject(s.newID())
	db.Projects = append([]entities.Project{project}, db.Projects...)

	if err := s.store.Save(ctx, db); err != nil {
		return nil, fmt.Errorf("failed to create project: %w: %w", entities.ErrStorageWriteFailed, err)
	}

	s.logger.LogRecordChange("projects", "create", project.ID)

	return &project, nil
}

// UpdateProject replaces the project stored under id. The id never changes.
func (s *ProjectService) UpdateProject(ctx context.Context, id string, req ports.ProjectRequest) (*entities.Project, error) {
	db := s.store.Load(ctx)

	index := db.ProjectIndex(id)
	if index == -1 {
		return nil, fmt.Errorf("update project %s: %w", id, entities.ErrProjectNotFound)
	}

	project := req.ToProject(id)
	db.Projects[index] = project

	if err := s.store.Save(ctx, db); err != nil {
		return nil, fmt.Errorf("failed to update project: %w: %w", entities.ErrStorageWriteFailed, err)
	}

	s.logger.LogRecordChange("projects", "update", id)

	return &project, nil
}

// DeleteProject removes the project stored under id
func (s *ProjectService) DeleteProject(ctx context.Context, id string) error {
	db := s.store.Load(ctx)

	index := db.ProjectIndex(id)
	if index == -1 {
		return fmt.Errorf("delete project %s: %w", id, entities.ErrProjectNotFound)
	}

	db.Projects = append(db.Projects[:index], db.Projects[index+1:]...)

	if err := s.store.Save(ctx, db); err != nil {
		return fmt.Errorf("failed to delete project: %w: %w", entities.ErrStorageWriteFailed, err)
	}

	s.logger.LogRecordChange("projects", "delete", id)

	return nil
}
