package jobs

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"

	"github.com/fedcourts/docket-engine/internal/core/port"
	"github.com/fedcourts/docket-engine/internal/infra/config"
)

// NewClient builds the river client and worker set for the process. The
// returned client doubles as a job enqueuer (used by filingrepo inside the
// submission transaction) and, once Start is called, as the in-process
// worker pool that runs NefDeliveryWorker.
func NewClient(pool *pgxpool.Pool, cfg config.JobsConfig, nefs port.NefRepository, email port.EmailSender, sms port.SMSSender) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, &NefDeliveryWorker{Nefs: nefs, Email: email, SMS: sms})

	client, err := river.NewClient(riverpgxv5.New(pool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: cfg.MaxWorkers},
		},
		Workers:     workers,
		MaxAttempts: cfg.MaxAttempts,
	})
	if err != nil {
		return nil, fmt.Errorf("building river client: %w", err)
	}
	return client, nil
}

// Start runs the river client's worker pool until ctx is cancelled.
func Start(ctx context.Context, client *river.Client[pgx.Tx]) error {
	if err := client.Start(ctx); err != nil {
		return fmt.Errorf("starting river client: %w", err)
	}
	return nil
}

// Stop waits for in-flight jobs to finish and shuts the worker pool down.
func Stop(ctx context.Context, client *river.Client[pgx.Tx]) error {
	if err := client.Stop(ctx); err != nil {
		return fmt.Errorf("stopping river client: %w", err)
	}
	return nil
}
