package core

import (
	"time"

	"github.com/google/uuid"
)

// DragonSightedEventType is the event type identifier of a sighting in the event log.
const DragonSightedEventType = "DragonSighted"

// DragonSighting represents one observation of a dragon at a point in time.
type DragonSighting struct {
	SightingID string
	DragonName DragonNameString
	RealmID    RealmID
	SeenOn     SeenOn
}

// BuildDragonSighting creates a new DragonSighting.
func BuildDragonSighting(sightingID uuid.UUID, dragonName DragonNameString, realmID RealmID, seenOn time.Time) DragonSighting {
	return DragonSighting{
		SightingID: sightingID.String(),
		DragonName: dragonName,
		RealmID:    realmID,
		SeenOn:     ToSeenOn(seenOn),
	}
}

// IsEventType returns the event type identifier.
func (s DragonSighting) IsEventType() string {
	return DragonSightedEventType
}

// HasOccurredAt returns when the dragon was seen.
func (s DragonSighting) HasOccurredAt() time.Time {
	return s.SeenOn
}
