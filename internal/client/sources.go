package client

import (
	"context"

	"github.com/reelfolio/core/internal/domain/entities"
)

// ProjectSource exposes the project endpoints as a cache source
type ProjectSource struct {
	client *Client
}

// Projects returns the project collection endpoints
func (c *Client) Projects() *ProjectSource {
	return &ProjectSource{client: c}
}

func (s *ProjectSource) List(ctx context.Context) ([]entities.Project, error) {
	return s.client.ListProjects(ctx)
}

func (s *ProjectSource) Create(ctx context.Context, project entities.Project) (entities.Project, error) {
	return s.client.CreateProject(ctx, project)
}

func (s *ProjectSource) Update(ctx context.Context, project entities.Project) (entities.Project, error) {
	return s.client.UpdateProject(ctx, project)
}

func (s *ProjectSource) Delete(ctx context.Context, id string) error {
	return s.client.DeleteProject(ctx, id)
}

// IncomeSource exposes the income endpoints as a cache source. Income
// entries cannot be updated.
type IncomeSource struct {
	client *Client
}

// Incomes returns the income collection endpoints
func (c *Client) Incomes() *IncomeSource {
	return &IncomeSource{client: c}
}

func (s *IncomeSource) List(ctx context.Context) ([]entities.IncomeEntry, error) {
	return s.client.ListIncomes(ctx)
}

func (s *IncomeSource) Create(ctx context.Context, entry entities.IncomeEntry) (entities.IncomeEntry, error) {
	return s.client.CreateIncome(ctx, entry)
}

func (s *IncomeSource) Delete(ctx context.Context, id string) error {
	return s.client.DeleteIncome(ctx, id)
}
