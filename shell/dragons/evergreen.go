package dragons

import (
	"context"
	"slices"

	"github.com/AntonStoeckl/recently-seen-dragons/core"
	"github.com/AntonStoeckl/recently-seen-dragons/recentlyseen"
)

// EvergreenRepository decorates a dragon source with dragons that are known in every realm.
type EvergreenRepository struct {
	inner     recentlyseen.FindsDragonsByRealm
	evergreen []core.DragonNameString
}

// WithEvergreen wraps inner so that the evergreen dragons are appended to the result of every realm.
// A name already returned by inner is not added a second time.
func WithEvergreen(inner recentlyseen.FindsDragonsByRealm, evergreen ...core.DragonNameString) (EvergreenRepository, error) {
	for _, name := range evergreen {
		if name == "" {
			return EvergreenRepository{}, ErrEmptyDragonName
		}
	}

	return EvergreenRepository{inner: inner, evergreen: slices.Clone(evergreen)}, nil
}

// FindDragonsByRealm returns the dragons of inner followed by the evergreen dragons.
func (r EvergreenRepository) FindDragonsByRealm(ctx context.Context, realmID core.RealmID) (core.Dragons, error) {
	found, err := r.inner.FindDragonsByRealm(ctx, realmID)
	if err != nil {
		return nil, err
	}

	result := slices.Clone(found)
	if result == nil {
		result = make(core.Dragons, 0, len(r.evergreen))
	}

	for _, name := range r.evergreen {
		if slices.ContainsFunc(result, func(d core.Dragon) bool { return d.Name == name }) {
			continue
		}

		result = append(result, core.BuildDragon(name))
	}

	return result, nil
}
