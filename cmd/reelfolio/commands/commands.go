package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/reelfolio/core/internal/adapters/repository"
	"github.com/reelfolio/core/internal/infrastructure/config"
	"github.com/reelfolio/core/internal/infrastructure/logger"
	"github.com/reelfolio/core/internal/infrastructure/server"
)

// Set at build time with -ldflags
var (
	Version   = "1.0.0"
	GitCommit = "development"
)

// NewRootCommand assembles the reelfolio command tree
func NewRootCommand() *cobra.Command {
	var configFile string

	rootCmd := &cobra.Command{
		Use:           "reelfolio",
		Short:         "Reelfolio portfolio backend",
		Long:          `Reelfolio serves the portfolio site together with the project and income records behind it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "path to a config file (yaml, json or toml)")

	load := func() (*config.Config, error) {
		cfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		return cfg, nil
	}

	rootCmd.AddCommand(NewServeCommand(load))
	rootCmd.AddCommand(NewDBCommand(load))
	rootCmd.AddCommand(NewProjectsCommand(load))
	rootCmd.AddCommand(NewIncomesCommand(load))
	rootCmd.AddCommand(NewVersionCommand())

	return rootCmd
}

type configLoader func() (*config.Config, error)

// NewServeCommand creates the serve command
func NewServeCommand(load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the Reelfolio server",
		Long:  "Start the record API and, in production, the static site",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runServer(ctx, cfg)
		},
	}
}

func runServer(ctx context.Context, cfg *config.Config) error {
	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer appLogger.Close()

	store := repository.NewFileStore(cfg.Storage.Path, appLogger)

	srv, err := server.New(cfg, store, appLogger)
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	appLogger.Infow("Server stopped")
	return nil
}

// NewDBCommand creates the db command with subcommands
func NewDBCommand(load configLoader) *cobra.Command {
	dbCmd := &cobra.Command{
		Use:   "db",
		Short: "Database file commands",
		Long:  "Create and inspect the JSON database file",
	}

	dbCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create an empty database file if none exists",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}

			store := repository.NewFileStore(cfg.Storage.Path, logger.NewNop())
			created, err := store.Init(cmd.Context())
			if err != nil {
				return err
			}

			if created {
				fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", store.Path())
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s already exists\n", store.Path())
			}
			return nil
		},
	})

	dbCmd.AddCommand(&cobra.Command{
		Use:   "stats",
		Short: "Print the number of stored records",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}

			store := repository.NewFileStore(cfg.Storage.Path, logger.NewNop())
			stats := store.Stats(cmd.Context())

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Database: %s\n", store.Path())
			fmt.Fprintf(out, "  Projects: %d\n", stats.Projects)
			fmt.Fprintf(out, "  Incomes:  %d\n", stats.Incomes)
			return nil
		},
	})

	return dbCmd
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print Reelfolio version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "Reelfolio v%s\n", Version)
			fmt.Fprintf(cmd.OutOrStdout(), "Git Commit: %s\n", GitCommit)
		},
	}
}
