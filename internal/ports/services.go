package ports

import (
	"context"

	"github.com/reelfolio/core/internal/domain/entities"
)

// ProjectService interface for portfolio project operations
type ProjectService interface {
	ListProjects(ctx context.Context) ([]entities.Project, error)
	GetProject(ctx context.Context, id string) (*entities.Project, error)
	CreateProject(ctx context.Context, req ProjectRequest) (*entities.Project, error)
	UpdateProject(ctx context.Context, id string, req ProjectRequest) (*entities.Project, error)
	DeleteProject(ctx context.Context, id string) error
}

// IncomeService interface for income tracking operations
type IncomeService interface {
	ListIncomes(ctx context.Context) ([]entities.IncomeEntry, error)
	CreateIncome(ctx context.Context, req IncomeRequest) (*entities.IncomeEntry, error)
	DeleteIncome(ctx context.Context, id string) error
	Summary(ctx context.Context) (*entities.IncomeSummary, error)
}

// Request/Response Types

// ProjectRequest is the body of project create and update calls. Any id in
// the body is ignored.
type ProjectRequest struct {
	Title       string   `json:"title" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	Description string   `json:"description" validate:"required"`
	ImageURL    string   `json:"imageUrl" validate:"required"`
	VideoURL    string   `json:"videoUrl,omitempty"`
	Client      string   `json:"client,omitempty"`
	Year        *int     `json:"year,omitempty" validate:"omitempty,gte=0"`
	Duration    string   `json:"duration,omitempty"`
	Tools       []string `json:"tools,omitempty"`
}

// ToProject builds the stored project for the given id
func (r ProjectRequest) ToProject(id string) entities.Project {
	return entities.Project{
		ID:          id,
		Title:       r.Title,
		Category:    r.Category,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		VideoURL:    r.VideoURL,
		Client:      r.Client,
		Year:        r.Year,
		Duration:    r.Duration,
		Tools:       r.Tools,
	}
}

// IncomeRequest is the body of an income create call
type IncomeRequest struct {
	Project string  `json:"project" validate:"required"`
	Client  string  `json:"client"`
	Amount  float64 `json:"amount" validate:"gte=0"`
	Date    string  `json:"date" validate:"required,datetime=2006-01-02"`
}

// ToIncome builds the stored income entry for the given id
func (r IncomeRequest) ToIncome(id string) entities.IncomeEntry {
	return entities.IncomeEntry{
		ID:      id,
		Project: r.Project,
		Client:  r.Client,
		Amount:  r.Amount,
		Date:    r.Date,
	}
}
