// Package postgresengine provides a PostgreSQL implementation of the event log described by package eventstore.
//
// Key features:
//   - Multiple database adapter support (pgx.Pool with optional read replica, sql.DB, sqlx.DB)
//   - Atomic append of one or many events in a single INSERT
//   - Filtering by event type and JSON payload containment, backed by a GIN index
//   - Configurable table name and an optional slog-compatible logger
//
// Usage:
//
//	pool, _ := pgxpool.New(ctx, dsn)
//	store, _ := postgresengine.NewEventStoreFromPGXPool(
//		pool,
//		postgresengine.WithTableName("sightings"),
//		postgresengine.WithLogger(slog.Default()),
//	)
//	_ = store.CreateTable(ctx)
//
//	err := store.Append(ctx, storableEvent)
//	events, maxSeq, err := store.Query(ctx, filter)
package postgresengine
