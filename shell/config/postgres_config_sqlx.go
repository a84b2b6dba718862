package config

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // postgres driver
)

// NewSQLX creates a configured *sqlx.DB on the primary DSN.
func NewSQLX(ctx context.Context, db DatabaseConfig) (*sqlx.DB, error) {
	if db.DSN == "" {
		return nil, ErrMissingDSN
	}

	sqlxDB, err := sqlx.Open(driverNamePostgres, db.DSN)
	if err != nil {
		return nil, errors.Join(ErrConnectingFailed, err)
	}

	configureSQLPool(sqlxDB.DB, int(db.MaxConns))

	if pingErr := sqlxDB.PingContext(ctx); pingErr != nil {
		_ = sqlxDB.Close()

		return nil, errors.Join(ErrConnectingFailed, pingErr)
	}

	return sqlxDB, nil
}
