package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/fedcourts/docket-engine/internal/infra/config"
	"github.com/fedcourts/docket-engine/internal/infra/logging"
	"github.com/fedcourts/docket-engine/internal/migrations"
)

func main() {
	ctx := context.Background()

	handler := logging.NewContextHandler(
		slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}),
	)
	slog.SetDefault(slog.New(handler))

	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		cfg := config.MustLoad()
		if err := migrations.Run(&cfg.Database); err != nil {
			slog.ErrorContext(ctx, "migration failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		slog.InfoContext(ctx, "migrations applied")
		return
	}

	slog.InfoContext(ctx, "starting docket-engine service")

	app, err := InitializeApp()
	if err != nil {
		slog.ErrorContext(ctx, "failed to initialize application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := app.Run(); err != nil {
		slog.ErrorContext(ctx, "application error", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.InfoContext(ctx, "docket-engine service stopped")
}
