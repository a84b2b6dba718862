package postgresengine

import (
	"errors"
	"regexp"

	"github.com/AntonStoeckl/recently-seen-dragons/eventstore"
)

// ErrInvalidEventsTableName is returned for table names that are not plain lowercase SQL identifiers.
var ErrInvalidEventsTableName = errors.New("events table name must be a plain lowercase identifier")

var tableNamePattern = regexp.MustCompile(`^[a-z_][a-z0-9_]{0,62}$`)

// Logger interface for SQL query logging, operational information and error reporting.
// It is satisfied by *slog.Logger.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Option defines a functional option for configuring EventStore.
type Option func(*EventStore) error

// WithTableName sets the table name for the EventStore.
// The name ends up in DDL and is therefore restricted to lowercase identifiers.
func WithTableName(tableName string) Option {
	return func(es *EventStore) error {
		if tableName == "" {
			return eventstore.ErrEmptyEventsTableName
		}

		if !tableNamePattern.MatchString(tableName) {
			return ErrInvalidEventsTableName
		}

		es.eventTableName = tableName

		return nil
	}
}

// WithLogger sets the logger for the EventStore:
//
// Debug level: SQL statements with execution timing
// Info level: event counts and durations
// Warn level: cleanup failures
// Error level: failures that make an operation fail.
func WithLogger(logger Logger) Option {
	return func(es *EventStore) error {
		es.logger = logger
		return nil
	}
}
