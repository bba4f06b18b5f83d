package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pkordes/field-notes/backend/internal/config"
	"github.com/pkordes/field-notes/backend/internal/repo"
	"github.com/pkordes/field-notes/backend/internal/server"
	"github.com/pkordes/field-notes/backend/internal/service"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notes-api",
		Short: "In-memory field notes HTTP API",
		Long: `notes-api serves create, read, update and delete operations over
field notes held in process memory. Notes live until the process exits.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}

			// JSON handler writes machine-readable output suitable for log aggregators.
			logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: cfg.SlogLevel(),
			}))
			slog.SetDefault(logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return run(ctx, cfg, logger)
		},
	}
	config.RegisterFlags(cmd.Flags())
	return cmd
}

// run wires store → service → router and serves until ctx is cancelled.
func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	notes := service.NewNoteService(repo.NewNoteRepo(repo.SeedNotes()...))
	router := server.NewRouter(cfg, logger, notes)

	if err := server.New(cfg, logger, router).ListenAndServe(ctx); err != nil {
		logger.Error("server error", "error", err)
		return err
	}
	return nil
}
