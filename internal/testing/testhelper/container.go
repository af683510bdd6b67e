//go:build integration

package testhelper

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/fedcourts/docket-engine/internal/infra/config"
	"github.com/fedcourts/docket-engine/internal/migrations"
)

var (
	testContainer *postgres.PostgresContainer
	testPool      *pgxpool.Pool
	once          sync.Once
	initErr       error
)

// GetTestPool returns a connection pool to a PostgreSQL testcontainer with
// the docket schema migrated. The container is shared across all tests in a
// process; tests are responsible for cleaning up their own rows.
func GetTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	once.Do(func() {
		testContainer, testPool, initErr = setupTestContainer()
	})

	if initErr != nil {
		t.Skipf("skipping integration test: %v", initErr)
	}

	return testPool
}

func setupTestContainer() (*postgres.PostgresContainer, *pgxpool.Pool, error) {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("docket_engine_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.WithSQLDriver("pgx"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("starting postgres: %w", err)
	}

	host, err := pgContainer.Host(ctx)
	if err != nil {
		pgContainer.Terminate(ctx)
		return nil, nil, fmt.Errorf("getting host: %w", err)
	}

	port, err := pgContainer.MappedPort(ctx, "5432/tcp")
	if err != nil {
		pgContainer.Terminate(ctx)
		return nil, nil, fmt.Errorf("getting port: %w", err)
	}

	dbCfg := &config.DatabaseConfig{
		Host:     host,
		Port:     port.Int(),
		User:     "test",
		Password: "test",
		Name:     "docket_engine_test",
		SSLMode:  "disable",
	}
	if err := migrations.Run(dbCfg); err != nil {
		pgContainer.Terminate(ctx)
		return nil, nil, fmt.Errorf("running migrations: %w", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		pgContainer.Terminate(ctx)
		return nil, nil, fmt.Errorf("getting connection string: %w", err)
	}

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		pgContainer.Terminate(ctx)
		return nil, nil, fmt.Errorf("creating pool: %w", err)
	}

	return pgContainer, pool, nil
}

// CleanupContainers terminates the shared test container. Call from
// TestMain or a package-level t.Cleanup().
func CleanupContainers(ctx context.Context) {
	if testPool != nil {
		testPool.Close()
	}
	if testContainer != nil {
		testContainer.Terminate(ctx)
	}
}
