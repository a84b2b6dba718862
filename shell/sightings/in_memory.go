package sightings

import (
	"context"
	"slices"

	"github.com/AntonStoeckl/recently-seen-dragons/core"
)

// InMemoryRepository serves sightings from a fixed set that is copied at construction.
type InMemoryRepository struct {
	sightings []core.DragonSighting
}

// NewInMemoryRepository creates a new InMemoryRepository from the given sightings.
func NewInMemoryRepository(sightings ...core.DragonSighting) (InMemoryRepository, error) {
	for _, sighting := range sightings {
		if sighting.DragonName == "" {
			return InMemoryRepository{}, ErrEmptyDragonName
		}
	}

	return InMemoryRepository{sightings: slices.Clone(sightings)}, nil
}

// FindSightingsByRealm returns the sightings of the realm in their original order.
func (r InMemoryRepository) FindSightingsByRealm(ctx context.Context, realmID core.RealmID) ([]core.DragonSighting, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	found := make([]core.DragonSighting, 0)
	for _, sighting := range r.sightings {
		if sighting.RealmID == realmID {
			found = append(found, sighting)
		}
	}

	return found, nil
}
