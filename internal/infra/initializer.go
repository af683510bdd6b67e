package infra

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"

	"github.com/fedcourts/docket-engine/internal/adapters/secondary/database/postgres"
	riverjobs "github.com/fedcourts/docket-engine/internal/adapters/secondary/jobs"
	"github.com/fedcourts/docket-engine/internal/infra/scheduler"
	"github.com/fedcourts/docket-engine/internal/infra/server"
)

// Initializer holds all components that need to be started and stopped.
type Initializer struct {
	httpServer  *server.HTTPServer
	dbPool      *pgxpool.Pool
	scheduler   *scheduler.Scheduler
	riverClient *river.Client[pgx.Tx]
}

// NewInitializer creates a new initializer with all required components.
func NewInitializer(
	httpServer *server.HTTPServer,
	dbPool *pgxpool.Pool,
	scheduler *scheduler.Scheduler,
	riverClient *river.Client[pgx.Tx],
) *Initializer {
	return &Initializer{
		httpServer:  httpServer,
		dbPool:      dbPool,
		scheduler:   scheduler,
		riverClient: riverClient,
	}
}

// Run starts all services and waits for shutdown signal.
func (i *Initializer) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	i.scheduler.Start(ctx)

	if err := riverjobs.Start(ctx, i.riverClient); err != nil {
		return err
	}

	errChan := make(chan error, 1)
	go func() {
		if err := i.httpServer.Start(ctx); err != nil {
			errChan <- err
		}
	}()

	select {
	case sig := <-sigChan:
		slog.InfoContext(ctx, "received shutdown signal", slog.String("signal", sig.String()))
		cancel()
	case err := <-errChan:
		slog.ErrorContext(ctx, "server error", slog.String("error", err.Error()))
		return err
	}

	i.cleanup()

	return nil
}

// cleanup performs graceful cleanup of all resources.
func (i *Initializer) cleanup() {
	ctx := context.Background()
	slog.InfoContext(ctx, "cleaning up resources")

	i.scheduler.Stop()

	if err := riverjobs.Stop(ctx, i.riverClient); err != nil {
		slog.ErrorContext(ctx, "stopping river client", slog.String("error", err.Error()))
	}

	postgres.Close(i.dbPool)

	slog.InfoContext(ctx, "cleanup complete")
}
