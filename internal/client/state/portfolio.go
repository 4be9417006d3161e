package state

import (
	"sort"

	"github.com/reelfolio/core/internal/client"
	"github.com/reelfolio/core/internal/domain/entities"
	"github.com/reelfolio/core/internal/infrastructure/logger"
)

// Projects is the client cache of the project collection
type Projects = Collection[entities.Project]

// Incomes is the client cache of the income collection
type Incomes = Collection[entities.IncomeEntry]

// NewProjects builds the project cache. New projects are shown first.
func NewProjects(c *client.Client, log *logger.Logger) *Projects {
	return New[entities.Project](c.Projects(),
		WithLogger[entities.Project](log.WithComponent("projects-cache")),
	)
}

// NewIncomes builds the income cache. Entries stay ordered by date, newest
// first, as they are on the server.
func NewIncomes(c *client.Client, log *logger.Logger) *Incomes {
	return New[entities.IncomeEntry](c.Incomes(),
		WithPlacement[entities.IncomeEntry](entities.InsertIncome),
		WithLogger[entities.IncomeEntry](log.WithComponent("incomes-cache")),
	)
}

// Summary aggregates the cached income entries
func Summary(incomes *Incomes) entities.IncomeSummary {
	return entities.SummarizeIncomes(incomes.Items())
}

// AllCategories is the category that matches every project
const AllCategories = "All"

// Categories lists the distinct project categories in alphabetical order,
// led by AllCategories
func Categories(projects *Projects) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, p := range projects.Items() {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		names = append(names, p.Category)
	}
	sort.Strings(names)
	return append([]string{AllCategories}, names...)
}

// FilterByCategory returns the cached projects in category, in cache order.
// AllCategories or an empty category returns every project.
func FilterByCategory(projects *Projects, category string) []entities.Project {
	items := projects.Items()
	if category == "" || category == AllCategories {
		return items
	}

	out := make([]entities.Project, 0, len(items))
	for _, p := range items {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}
