// Package pgtest starts a throwaway Postgres container for integration tests.
//
// Tests are skipped when no container provider (Docker, Podman, ...) is reachable.
package pgtest

import (
	"context"
	"database/sql"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // postgres driver
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

const (
	image        = "postgres:17-alpine"
	databaseName = "dragons"
	user         = "test"
	password     = "test"
	startTimeout = 2 * time.Minute
)

var (
	startOnce sync.Once
	dsn       string
	startErr  error
)

// DSN returns the connection string of a Postgres container shared by all tests of the test binary.
// The container is terminated by the testcontainers reaper when the test binary exits.
func DSN(t *testing.T) string {
	t.Helper()

	testcontainers.SkipIfProviderIsNotHealthy(t)

	startOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), startTimeout)
		defer cancel()

		dsn, startErr = start(ctx)
	})

	require.NoError(t, startErr, "starting the postgres container failed")

	return dsn
}

func start(ctx context.Context) (string, error) {
	container, err := postgres.Run(
		ctx,
		image,
		postgres.WithDatabase(databaseName),
		postgres.WithUsername(user),
		postgres.WithPassword(password),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		return "", err
	}

	return container.ConnectionString(ctx, "sslmode=disable")
}

// PGXPool opens a pgx pool on the shared container, closed on test cleanup.
func PGXPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	pool, err := pgxpool.New(t.Context(), DSN(t))
	require.NoError(t, err, "error connecting to DB pool in test setup")
	t.Cleanup(pool.Close)

	return pool
}

// SQLX opens a sqlx DB (lib/pq driver) on the shared container, closed on test cleanup.
func SQLX(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := sqlx.Open("postgres", DSN(t))
	require.NoError(t, err, "error opening sqlx DB in test setup")
	t.Cleanup(func() { _ = db.Close() })

	return db
}

// SQLDB opens a database/sql DB (lib/pq driver) on the shared container, closed on test cleanup.
func SQLDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("postgres", DSN(t))
	require.NoError(t, err, "error opening sql DB in test setup")
	t.Cleanup(func() { _ = db.Close() })

	return db
}

// UniqueTableName returns a fresh table name so that tests sharing the container don't see each other's rows.
func UniqueTableName(prefix string) string {
	return prefix + "_" + strings.ReplaceAll(uuid.NewString(), "-", "")
}
