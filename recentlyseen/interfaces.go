package recentlyseen

import (
	"context"

	"github.com/AntonStoeckl/recently-seen-dragons/core"
)

// FindsDragonsByRealm is the capability to look up all dragons known in a realm.
// An unknown realm yields an empty result, not an error. Names are unique within one result.
type FindsDragonsByRealm interface {
	FindDragonsByRealm(ctx context.Context, realmID core.RealmID) (core.Dragons, error)
}

// FindsSightingsByRealm is the capability to look up all sightings recorded in a realm.
// An unknown realm yields an empty result, not an error.
type FindsSightingsByRealm interface {
	FindSightingsByRealm(ctx context.Context, realmID core.RealmID) ([]core.DragonSighting, error)
}

// DragonsByRealmFunc adapts a plain function to FindsDragonsByRealm.
type DragonsByRealmFunc func(ctx context.Context, realmID core.RealmID) (core.Dragons, error)

// FindDragonsByRealm calls f(ctx, realmID).
func (f DragonsByRealmFunc) FindDragonsByRealm(ctx context.Context, realmID core.RealmID) (core.Dragons, error) {
	return f(ctx, realmID)
}

// SightingsByRealmFunc adapts a plain function to FindsSightingsByRealm.
type SightingsByRealmFunc func(ctx context.Context, realmID core.RealmID) ([]core.DragonSighting, error)

// FindSightingsByRealm calls f(ctx, realmID).
func (f SightingsByRealmFunc) FindSightingsByRealm(ctx context.Context, realmID core.RealmID) ([]core.DragonSighting, error) {
	return f(ctx, realmID)
}

// Logger is the logging capability the Service needs. It is satisfied by *slog.Logger.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Error(msg string, args ...any)
}
