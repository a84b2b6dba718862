// Package adapters hides the differences between pgxpool.Pool, sql.DB and sqlx.DB behind DBAdapter,
// so the event store builds its SQL once and runs it on whichever connection type the caller has.
//
// The PGX adapter can additionally route eventually consistent reads to a replica pool.
package adapters
