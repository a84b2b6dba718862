package main

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"github.com/AntonStoeckl/recently-seen-dragons/eventstore/postgresengine"
	"github.com/AntonStoeckl/recently-seen-dragons/recentlyseen"
	"github.com/AntonStoeckl/recently-seen-dragons/shell/config"
	"github.com/AntonStoeckl/recently-seen-dragons/shell/dragons"
	"github.com/AntonStoeckl/recently-seen-dragons/shell/sightings"
)

const (
	driverNamePGX      = "pgx"
	driverNamePostgres = "postgres"
)

// stores bundles the repositories on top of one configured database connection.
type stores struct {
	eventStore postgresengine.EventStore
	dragons    dragons.SQLRepository
	sightings  sightings.EventLogRepository
	close      func()
}

func openStores(ctx context.Context, opts *rootOptions) (stores, error) {
	cfg := opts.cfg

	var (
		eventStore postgresengine.EventStore
		dragonsDB  *sqlx.DB
		closers    []func()
		err        error
	)

	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	eventStoreOptions := []postgresengine.Option{
		postgresengine.WithTableName(cfg.EventStore.Table),
		postgresengine.WithLogger(opts.logger),
	}

	switch cfg.Database.Driver {
	case config.DriverPGX:
		var pool *pgxpool.Pool
		if pool, err = config.NewPGXPool(ctx, cfg.Database); err != nil {
			return stores{}, err
		}
		closers = append(closers, pool.Close)

		if cfg.Database.ReplicaDSN != "" {
			var replica *pgxpool.Pool
			if replica, err = config.NewPGXReplicaPool(ctx, cfg.Database); err != nil {
				closeAll()
				return stores{}, err
			}
			closers = append(closers, replica.Close)

			eventStore, err = postgresengine.NewEventStoreFromPGXPoolAndReplica(pool, replica, eventStoreOptions...)
		} else {
			eventStore, err = postgresengine.NewEventStoreFromPGXPool(pool, eventStoreOptions...)
		}

		dragonsDB = sqlx.NewDb(stdlib.OpenDBFromPool(pool), driverNamePGX)
		closers = append(closers, closeDB(dragonsDB.DB))

	case config.DriverSQLX:
		if dragonsDB, err = config.NewSQLX(ctx, cfg.Database); err != nil {
			return stores{}, err
		}
		closers = append(closers, closeDB(dragonsDB.DB))

		eventStore, err = postgresengine.NewEventStoreFromSQLX(dragonsDB, eventStoreOptions...)

	case config.DriverSQL:
		var db *sql.DB
		if db, err = config.NewSQLDB(ctx, cfg.Database); err != nil {
			return stores{}, err
		}
		closers = append(closers, closeDB(db))

		eventStore, err = postgresengine.NewEventStoreFromSQLDB(db, eventStoreOptions...)
		dragonsDB = sqlx.NewDb(db, driverNamePostgres)

	default:
		return stores{}, config.ErrUnknownDriver
	}

	if err != nil {
		closeAll()
		return stores{}, err
	}

	dragonRepo, err := dragons.NewSQLRepository(
		dragonsDB,
		dragons.WithTableName(cfg.Dragons.Table),
		dragons.WithLogger(opts.logger),
	)
	if err != nil {
		closeAll()
		return stores{}, err
	}

	sightingRepo, err := sightings.NewEventLogRepository(eventStore)
	if err != nil {
		closeAll()
		return stores{}, err
	}

	return stores{
		eventStore: eventStore,
		dragons:    dragonRepo,
		sightings:  sightingRepo,
		close:      closeAll,
	}, nil
}

// dragonSource is the dragons table plus the configured evergreen dragons.
func (s stores) dragonSource(evergreen []string) (recentlyseen.FindsDragonsByRealm, error) {
	if len(evergreen) == 0 {
		return s.dragons, nil
	}

	return dragons.WithEvergreen(s.dragons, evergreen...)
}

func (s stores) createTables(ctx context.Context) error {
	return errors.Join(s.eventStore.CreateTable(ctx), s.dragons.CreateTable(ctx))
}

func closeDB(db *sql.DB) func() {
	return func() { _ = db.Close() }
}
