package sightings

import (
	"errors"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/recently-seen-dragons/core"
	"github.com/AntonStoeckl/recently-seen-dragons/eventstore"
)

var (
	// ErrMappingToStorableEventFailed is returned when a sighting can't be serialized.
	ErrMappingToStorableEventFailed = errors.New("mapping to storable event failed for sighting")

	// ErrMappingToSightingFailed is returned when a stored event can't be turned back into a sighting.
	ErrMappingToSightingFailed = errors.New("mapping to sighting failed")

	// ErrUnknownEventType is returned for stored events that are not sightings.
	ErrUnknownEventType = errors.New("unknown event type")

	// ErrEmptyDragonName is returned for sightings that don't name a dragon.
	ErrEmptyDragonName = errors.New("sighting must name a dragon")
)

// EventMetadata contains event tracking information.
type EventMetadata struct {
	MessageID string
}

// BuildEventMetadata creates EventMetadata from a UUID.
func BuildEventMetadata(messageID uuid.UUID) EventMetadata {
	return EventMetadata{MessageID: messageID.String()}
}

// StorableEventFrom converts a DragonSighting and EventMetadata to a StorableEvent.
func StorableEventFrom(sighting core.DragonSighting, metadata EventMetadata) (eventstore.StorableEvent, error) {
	if sighting.DragonName == "" {
		return eventstore.StorableEvent{}, errors.Join(ErrMappingToStorableEventFailed, ErrEmptyDragonName)
	}

	payloadJSON, err := jsoniter.ConfigFastest.Marshal(sighting)
	if err != nil {
		return eventstore.StorableEvent{}, errors.Join(ErrMappingToStorableEventFailed, err)
	}

	metadataJSON, err := jsoniter.ConfigFastest.Marshal(metadata)
	if err != nil {
		return eventstore.StorableEvent{}, errors.Join(ErrMappingToStorableEventFailed, err)
	}

	storableEvent, err := eventstore.BuildStorableEvent(
		sighting.IsEventType(),
		sighting.HasOccurredAt(),
		payloadJSON,
		metadataJSON,
	)
	if err != nil {
		return eventstore.StorableEvent{}, errors.Join(ErrMappingToStorableEventFailed, err)
	}

	return storableEvent, nil
}

// SightingsFrom converts multiple StorableEvents to DragonSightings.
func SightingsFrom(storableEvents eventstore.StorableEvents) ([]core.DragonSighting, error) {
	sightings := make([]core.DragonSighting, 0, len(storableEvents))

	for _, storableEvent := range storableEvents {
		sighting, err := SightingFrom(storableEvent)
		if err != nil {
			return nil, err
		}

		sightings = append(sightings, sighting)
	}

	return sightings, nil
}

// SightingFrom converts a StorableEvent to a DragonSighting.
func SightingFrom(storableEvent eventstore.StorableEvent) (core.DragonSighting, error) {
	if storableEvent.EventType != core.DragonSightedEventType {
		return core.DragonSighting{}, errors.Join(ErrMappingToSightingFailed, ErrUnknownEventType)
	}

	payload := new(core.DragonSighting)
	if err := jsoniter.ConfigFastest.Unmarshal(storableEvent.PayloadJSON, payload); err != nil {
		return core.DragonSighting{}, errors.Join(ErrMappingToSightingFailed, err)
	}

	if payload.DragonName == "" {
		return core.DragonSighting{}, errors.Join(ErrMappingToSightingFailed, ErrEmptyDragonName)
	}

	return core.DragonSighting{
		SightingID: payload.SightingID,
		DragonName: payload.DragonName,
		RealmID:    payload.RealmID,
		SeenOn:     core.ToSeenOn(payload.SeenOn),
	}, nil
}
