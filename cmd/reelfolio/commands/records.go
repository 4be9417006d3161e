package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/reelfolio/core/internal/client"
	"github.com/reelfolio/core/internal/client/state"
	"github.com/reelfolio/core/internal/domain/entities"
	"github.com/reelfolio/core/internal/infrastructure/logger"
)

func newClient(load configLoader) (*client.Client, error) {
	cfg, err := load()
	if err != nil {
		return nil, err
	}
	return client.New(client.Config{BaseURL: cfg.Client.BaseURL, Timeout: cfg.Client.Timeout}), nil
}

// NewProjectsCommand manages projects through a running server
func NewProjectsCommand(load configLoader) *cobra.Command {
	projectsCmd := &cobra.Command{
		Use:   "projects",
		Short: "Manage portfolio projects on a running server",
	}

	open := func(cmd *cobra.Command) (*state.Projects, error) {
		c, err := newClient(load)
		if err != nil {
			return nil, err
		}
		projects := state.NewProjects(c, logger.NewNop())
		if err := projects.Activate(cmd.Context()); err != nil {
			return nil, err
		}
		return projects, nil
	}

	var category string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := open(cmd)
			if err != nil {
				return err
			}
			printProjects(cmd.OutOrStdout(), state.FilterByCategory(projects, category))
			return nil
		},
	}
	listCmd.Flags().StringVar(&category, "category", state.AllCategories, "only list projects in this category")
	projectsCmd.AddCommand(listCmd)

	projectsCmd.AddCommand(&cobra.Command{
		Use:   "categories",
		Short: "List project categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := open(cmd)
			if err != nil {
				return err
			}
			for _, name := range state.Categories(projects) {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	})

	var project entities.Project
	var year int
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := open(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("year") {
				project.Year = &year
			}

			created, err := projects.Create(cmd.Context(), project)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created project %s\n", created.ID)
			return nil
		},
	}
	projectFlags(addCmd, &project, &year)
	projectsCmd.AddCommand(addCmd)

	var changes entities.Project
	var newYear int
	updateCmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change fields of a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := open(cmd)
			if err != nil {
				return err
			}

			current, ok := findProject(projects.Items(), args[0])
			if !ok {
				return fmt.Errorf("project %s not found", args[0])
			}
			merged := mergeProject(cmd, current, changes)
			if cmd.Flags().Changed("year") {
				merged.Year = &newYear
			}

			updated, err := projects.Update(cmd.Context(), merged)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated project %s\n", updated.ID)
			return nil
		},
	}
	projectFlags(updateCmd, &changes, &newYear)
	projectsCmd.AddCommand(updateCmd)

	projectsCmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := open(cmd)
			if err != nil {
				return err
			}
			if err := projects.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted project %s\n", args[0])
			return nil
		},
	})

	return projectsCmd
}

func projectFlags(cmd *cobra.Command, p *entities.Project, year *int) {
	f := cmd.Flags()
	f.StringVar(&p.Title, "title", "", "project title")
	f.StringVar(&p.Category, "category", "", "project category")
	f.StringVar(&p.Description, "description", "", "project description")
	f.StringVar(&p.ImageURL, "image-url", "", "thumbnail image URL")
	f.StringVar(&p.VideoURL, "video-url", "", "video URL")
	f.StringVar(&p.Client, "client", "", "client name")
	f.IntVar(year, "year", 0, "release year")
	f.StringVar(&p.Duration, "duration", "", "running time, e.g. 3:45")
	f.StringSliceVar(&p.Tools, "tools", nil, "tools used, comma separated")
}

func findProject(projects []entities.Project, id string) (entities.Project, bool) {
	for _, p := range projects {
		if p.ID == id {
			return p, true
		}
	}
	return entities.Project{}, false
}

// mergeProject copies the flags that were set onto current
func mergeProject(cmd *cobra.Command, current, changes entities.Project) entities.Project {
	set := func(name string, dst *string, value string) {
		if cmd.Flags().Changed(name) {
			*dst = value
		}
	}
	set("title", &current.Title, changes.Title)
	set("category", &current.Category, changes.Category)
	set("description", &current.Description, changes.Description)
	set("image-url", &current.ImageURL, changes.ImageURL)
	set("video-url", &current.VideoURL, changes.VideoURL)
	set("client", &current.Client, changes.Client)
	set("duration", &current.Duration, changes.Duration)
	if cmd.Flags().Changed("tools") {
		current.Tools = changes.Tools
	}
	return current
}

func printProjects(w io.Writer, projects []entities.Project) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tCATEGORY\tCLIENT\tYEAR")
	for _, p := range projects {
		year := ""
		if p.Year != nil {
			year = fmt.Sprint(*p.Year)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", p.ID, p.Title, p.Category, p.Client, year)
	}
	tw.Flush()
}

// NewIncomesCommand manages income entries through a running server
func NewIncomesCommand(load configLoader) *cobra.Command {
	incomesCmd := &cobra.Command{
		Use:   "incomes",
		Short: "Manage income entries on a running server",
	}

	open := func(cmd *cobra.Command) (*state.Incomes, error) {
		c, err := newClient(load)
		if err != nil {
			return nil, err
		}
		incomes := state.NewIncomes(c, logger.NewNop())
		if err := incomes.Activate(cmd.Context()); err != nil {
			return nil, err
		}
		return incomes, nil
	}

	incomesCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List income entries, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			incomes, err := open(cmd)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tDATE\tPROJECT\tCLIENT\tAMOUNT")
			for _, e := range incomes.Items() {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%.2f\n", e.ID, e.Date, e.Project, e.Client, e.Amount)
			}
			return tw.Flush()
		},
	})

	var entry entities.IncomeEntry
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Record income",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(entry.Project) == "" {
				return errors.New("--project is required")
			}

			incomes, err := open(cmd)
			if err != nil {
				return err
			}
			created, err := incomes.Create(cmd.Context(), entry)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded income %s\n", created.ID)
			return nil
		},
	}
	addCmd.Flags().StringVar(&entry.Project, "project", "", "project name")
	addCmd.Flags().StringVar(&entry.Client, "client", "", "client name")
	addCmd.Flags().Float64Var(&entry.Amount, "amount", 0, "amount earned")
	addCmd.Flags().StringVar(&entry.Date, "date", "", "date earned, YYYY-MM-DD")
	incomesCmd.AddCommand(addCmd)

	incomesCmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an income entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			incomes, err := open(cmd)
			if err != nil {
				return err
			}
			if err := incomes.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted income %s\n", args[0])
			return nil
		},
	})

	incomesCmd.AddCommand(&cobra.Command{
		Use:   "summary",
		Short: "Print total and monthly income",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			incomes, err := open(cmd)
			if err != nil {
				return err
			}

			summary := state.Summary(incomes)
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "MONTH\tINCOME")
			for _, m := range summary.Months {
				fmt.Fprintf(tw, "%s\t%.2f\n", m.Label, m.Income)
			}
			fmt.Fprintf(tw, "Total\t%.2f\n", summary.Total)
			return tw.Flush()
		},
	})

	return incomesCmd
}
