package eventstore

import "context"

// ConsistencyLevel tells an engine whether a read must hit the primary database.
type ConsistencyLevel int

const (
	// StrongConsistency reads from the primary. It is the default when nothing is set on the context.
	StrongConsistency ConsistencyLevel = iota

	// EventualConsistency allows reads from a replica, if the engine has one.
	EventualConsistency
)

type contextKey string

const consistencyLevelKey contextKey = "eventstore.consistency_level"

// WithStrongConsistency returns a context that forces reads onto the primary database.
func WithStrongConsistency(ctx context.Context) context.Context {
	return context.WithValue(ctx, consistencyLevelKey, StrongConsistency)
}

// WithEventualConsistency returns a context that allows reads from a replica database.
//
// Pure read paths, like looking up sightings for a realm, can tolerate slightly stale data.
func WithEventualConsistency(ctx context.Context) context.Context {
	return context.WithValue(ctx, consistencyLevelKey, EventualConsistency)
}

// GetConsistencyLevel extracts the consistency level from the context, defaulting to StrongConsistency.
func GetConsistencyLevel(ctx context.Context) ConsistencyLevel {
	if level, ok := ctx.Value(consistencyLevelKey).(ConsistencyLevel); ok {
		return level
	}

	return StrongConsistency
}

// String provides a string representation of ConsistencyLevel for logging.
func (c ConsistencyLevel) String() string {
	switch c {
	case StrongConsistency:
		return "strong"
	case EventualConsistency:
		return "eventual"
	default:
		return "unknown"
	}
}
