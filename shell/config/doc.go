// Package config loads the configuration of the recentlyseen command and builds
// database connections from it.
//
// Values come from, in order of precedence: explicitly set values (e.g. bound command line flags),
// environment variables prefixed with RECENTLYSEEN_ (dots become underscores, e.g. RECENTLYSEEN_DATABASE_DSN),
// an optional recentlyseen.yaml, and the defaults.
//
// Connections can be opened with three different PostgreSQL drivers (pgx.Pool, sql.DB, sqlx.DB).
//
// This package is part of the shell (infrastructure) layer.
package config
