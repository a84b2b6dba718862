package config

import (
	"context"
	"database/sql"
	"errors"
	"time"

	_ "github.com/lib/pq" // postgres driver
)

const driverNamePostgres = "postgres"

// NewSQLDB creates a configured *sql.DB on the primary DSN.
func NewSQLDB(ctx context.Context, db DatabaseConfig) (*sql.DB, error) {
	if db.DSN == "" {
		return nil, ErrMissingDSN
	}

	sqlDB, err := sql.Open(driverNamePostgres, db.DSN)
	if err != nil {
		return nil, errors.Join(ErrConnectingFailed, err)
	}

	configureSQLPool(sqlDB, int(db.MaxConns))

	if pingErr := sqlDB.PingContext(ctx); pingErr != nil {
		_ = sqlDB.Close()

		return nil, errors.Join(ErrConnectingFailed, pingErr)
	}

	return sqlDB, nil
}

func configureSQLPool(db *sql.DB, maxOpenConnections int) {
	const defaultMaxIdleConnections = 2
	const defaultMaxConnLifetime = time.Hour
	const defaultMaxConnIdleTime = time.Minute * 5

	db.SetMaxOpenConns(maxOpenConnections)
	db.SetMaxIdleConns(min(defaultMaxIdleConnections, maxOpenConnections))
	db.SetConnMaxLifetime(defaultMaxConnLifetime)
	db.SetConnMaxIdleTime(defaultMaxConnIdleTime)
}
