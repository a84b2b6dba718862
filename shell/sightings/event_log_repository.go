package sightings

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/recently-seen-dragons/core"
	"github.com/AntonStoeckl/recently-seen-dragons/eventstore"
)

// ErrNilEventLog is returned when the EventLogRepository is created without an event log.
var ErrNilEventLog = errors.New("event log must not be nil")

const payloadKeyRealmID = "RealmID"

// QueriesEvents is the read side of the event log.
type QueriesEvents interface {
	Query(ctx context.Context, filter eventstore.Filter) (
		eventstore.StorableEvents,
		eventstore.MaxSequenceNumberUint,
		error,
	)
}

// AppendsEvents is the write side of the event log.
type AppendsEvents interface {
	Append(ctx context.Context, event eventstore.StorableEvent, additionalEvents ...eventstore.StorableEvent) error
}

// EventLog is satisfied by postgresengine.EventStore.
type EventLog interface {
	QueriesEvents
	AppendsEvents
}

// EventLogRepository stores and finds sightings as DragonSighted events.
type EventLogRepository struct {
	eventLog EventLog
}

// NewEventLogRepository creates a new EventLogRepository.
func NewEventLogRepository(eventLog EventLog) (EventLogRepository, error) {
	if eventLog == nil {
		return EventLogRepository{}, ErrNilEventLog
	}

	return EventLogRepository{eventLog: eventLog}, nil
}

// BuildEventFilter creates the filter for querying the sightings of one realm.
func BuildEventFilter(realmID core.RealmID) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(core.DragonSightedEventType).
		AndAnyPredicateOf(eventstore.P(payloadKeyRealmID, realmID)).
		Finalize()
}

// FindSightingsByRealm returns all sightings of the realm in the order they were recorded.
// Sightings are an append-only log, so reading with eventual consistency is good enough.
func (r EventLogRepository) FindSightingsByRealm(ctx context.Context, realmID core.RealmID) ([]core.DragonSighting, error) {
	storableEvents, _, err := r.eventLog.Query(eventstore.WithEventualConsistency(ctx), BuildEventFilter(realmID))
	if err != nil {
		return nil, err
	}

	return SightingsFrom(storableEvents)
}

// Record appends one or multiple sightings atomically to the event log.
func (r EventLogRepository) Record(ctx context.Context, sighting core.DragonSighting, moreSightings ...core.DragonSighting) error {
	storableEvents := make(eventstore.StorableEvents, 0, 1+len(moreSightings))

	for _, s := range append([]core.DragonSighting{sighting}, moreSightings...) {
		storableEvent, err := StorableEventFrom(s, BuildEventMetadata(uuid.New()))
		if err != nil {
			return err
		}

		storableEvents = append(storableEvents, storableEvent)
	}

	return r.eventLog.Append(ctx, storableEvents[0], storableEvents[1:]...)
}
