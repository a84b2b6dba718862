package config

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrConnectingFailed is returned when a connection pool can't be created or the database can't be reached.
var ErrConnectingFailed = errors.New("connecting to the database failed")

// PGXPoolConfig creates a pgxpool.Config for the given DSN.
func PGXPoolConfig(dsn string, maxConns int32) (*pgxpool.Config, error) {
	const defaultMinConnections = int32(2)
	const defaultMaxConnLifetime = time.Hour
	const defaultMaxConnIdleTime = time.Minute * 5
	const defaultHealthCheckPeriod = time.Minute
	const defaultConnectTimeout = time.Second * 5

	if dsn == "" {
		return nil, ErrMissingDSN
	}

	dbConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, errors.Join(ErrConnectingFailed, err)
	}

	dbConfig.MaxConns = maxConns
	dbConfig.MinConns = min(defaultMinConnections, maxConns)
	dbConfig.MaxConnLifetime = defaultMaxConnLifetime
	dbConfig.MaxConnIdleTime = defaultMaxConnIdleTime
	dbConfig.HealthCheckPeriod = defaultHealthCheckPeriod
	dbConfig.ConnConfig.ConnectTimeout = defaultConnectTimeout

	return dbConfig, nil
}

// NewPGXPool creates a pgx pool on the primary DSN.
func NewPGXPool(ctx context.Context, db DatabaseConfig) (*pgxpool.Pool, error) {
	return newPGXPool(ctx, db.DSN, db.MaxConns)
}

// NewPGXReplicaPool creates a pgx pool on the replica DSN.
func NewPGXReplicaPool(ctx context.Context, db DatabaseConfig) (*pgxpool.Pool, error) {
	return newPGXPool(ctx, db.ReplicaDSN, db.MaxConns)
}

func newPGXPool(ctx context.Context, dsn string, maxConns int32) (*pgxpool.Pool, error) {
	dbConfig, err := PGXPoolConfig(dsn, maxConns)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, dbConfig)
	if err != nil {
		return nil, errors.Join(ErrConnectingFailed, err)
	}

	if pingErr := pool.Ping(ctx); pingErr != nil {
		pool.Close()

		return nil, errors.Join(ErrConnectingFailed, pingErr)
	}

	return pool, nil
}
