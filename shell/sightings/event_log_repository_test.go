package sightings_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/recently-seen-dragons/core"
	"github.com/AntonStoeckl/recently-seen-dragons/eventstore"
	"github.com/AntonStoeckl/recently-seen-dragons/shell/sightings"
	"github.com/AntonStoeckl/recently-seen-dragons/testutil/fixtures"
)

type eventLogSpy struct {
	queryResult      eventstore.StorableEvents
	queryErr         error
	appendErr        error
	queriedFilter    eventstore.Filter
	queriedLevel     eventstore.ConsistencyLevel
	appendedEvents   eventstore.StorableEvents
	appendCallsCount int
}

func (s *eventLogSpy) Query(ctx context.Context, filter eventstore.Filter) (
	eventstore.StorableEvents,
	eventstore.MaxSequenceNumberUint,
	error,
) {

	s.queriedFilter = filter
	s.queriedLevel = eventstore.GetConsistencyLevel(ctx)

	return s.queryResult, eventstore.MaxSequenceNumberUint(len(s.queryResult)), s.queryErr
}

func (s *eventLogSpy) Append(_ context.Context, event eventstore.StorableEvent, additionalEvents ...eventstore.StorableEvent) error {
	s.appendCallsCount++
	s.appendedEvents = append(append(s.appendedEvents, event), additionalEvents...)

	return s.appendErr
}

func toStorable(t *testing.T, sighting core.DragonSighting) eventstore.StorableEvent {
	t.Helper()

	storableEvent, err := sightings.StorableEventFrom(sighting, sightings.BuildEventMetadata(uuid.New()))
	require.NoError(t, err)

	return storableEvent
}

func Test_EventLogRepository_FindSightingsByRealm_QueriesTheRealmWithEventualConsistency(t *testing.T) {
	// arrange
	now := time.Now()
	spy := &eventLogSpy{queryResult: eventstore.StorableEvents{toStorable(t, fixtures.Sightings(now)[0])}}
	repo, err := sightings.NewEventLogRepository(spy)
	require.NoError(t, err)

	// act
	found, err := repo.FindSightingsByRealm(t.Context(), core.MainRealmID)

	// assert
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, fixtures.NivMizzet, found[0].DragonName)
	assert.Equal(t, core.MainRealmID, found[0].RealmID)
	assert.True(t, core.ToSeenOn(now.Add(-time.Hour)).Equal(found[0].SeenOn))
	assert.Equal(t, sightings.BuildEventFilter(core.MainRealmID), spy.queriedFilter)
	assert.Equal(t, eventstore.EventualConsistency, spy.queriedLevel)
}

func Test_EventLogRepository_FindSightingsByRealm_PropagatesQueryErrorUnchanged(t *testing.T) {
	// arrange
	errLogUnavailable := errors.New("event log unavailable")
	repo, err := sightings.NewEventLogRepository(&eventLogSpy{queryErr: errLogUnavailable})
	require.NoError(t, err)

	// act
	found, err := repo.FindSightingsByRealm(t.Context(), core.MainRealmID)

	// assert
	assert.Same(t, errLogUnavailable, err)
	assert.Nil(t, found)
}

func Test_EventLogRepository_FindSightingsByRealm_WithMalformedEvent_Fails(t *testing.T) {
	// arrange
	malformed, err := eventstore.BuildStorableEventWithEmptyMetadata(core.DragonSightedEventType, time.Now(), []byte(`{"RealmID":1}`))
	require.NoError(t, err)
	repo, err := sightings.NewEventLogRepository(&eventLogSpy{queryResult: eventstore.StorableEvents{malformed}})
	require.NoError(t, err)

	// act
	_, err = repo.FindSightingsByRealm(t.Context(), core.MainRealmID)

	// assert
	assert.ErrorIs(t, err, sightings.ErrMappingToSightingFailed)
	assert.ErrorIs(t, err, sightings.ErrEmptyDragonName)
}

func Test_EventLogRepository_Record_AppendsAllSightingsInOneCall(t *testing.T) {
	// arrange
	now := time.Now()
	spy := &eventLogSpy{}
	repo, err := sightings.NewEventLogRepository(spy)
	require.NoError(t, err)
	first := core.BuildDragonSighting(uuid.New(), fixtures.NivMizzet, core.MainRealmID, now)
	second := core.BuildDragonSighting(uuid.New(), fixtures.Balthazar, core.MainRealmID, now)

	// act
	err = repo.Record(t.Context(), first, second)

	// assert
	require.NoError(t, err)
	assert.Equal(t, 1, spy.appendCallsCount)
	require.Len(t, spy.appendedEvents, 2)
	assert.Equal(t, core.DragonSightedEventType, spy.appendedEvents[0].EventType)
	assert.Contains(t, string(spy.appendedEvents[0].PayloadJSON), fixtures.NivMizzet)
	assert.Contains(t, string(spy.appendedEvents[1].PayloadJSON), fixtures.Balthazar)
	assert.Contains(t, string(spy.appendedEvents[0].MetadataJSON), "MessageID")
}

func Test_EventLogRepository_Record_WithEmptyDragonName_AppendsNothing(t *testing.T) {
	// arrange
	spy := &eventLogSpy{}
	repo, err := sightings.NewEventLogRepository(spy)
	require.NoError(t, err)
	valid := core.BuildDragonSighting(uuid.New(), fixtures.NivMizzet, core.MainRealmID, time.Now())
	invalid := core.BuildDragonSighting(uuid.New(), "", core.MainRealmID, time.Now())

	// act
	err = repo.Record(t.Context(), valid, invalid)

	// assert
	assert.ErrorIs(t, err, sightings.ErrMappingToStorableEventFailed)
	assert.ErrorIs(t, err, sightings.ErrEmptyDragonName)
	assert.Zero(t, spy.appendCallsCount)
}

func Test_NewEventLogRepository_WithNilEventLog_Fails(t *testing.T) {
	_, err := sightings.NewEventLogRepository(nil)

	assert.ErrorIs(t, err, sightings.ErrNilEventLog)
}

func Test_SightingFrom_WithOtherEventType_Fails(t *testing.T) {
	// arrange
	other, err := eventstore.BuildStorableEventWithEmptyMetadata("DragonSlain", time.Now(), []byte(`{}`))
	require.NoError(t, err)

	// act
	_, err = sightings.SightingFrom(other)

	// assert
	assert.ErrorIs(t, err, sightings.ErrMappingToSightingFailed)
	assert.ErrorIs(t, err, sightings.ErrUnknownEventType)
}

func Test_SightingFrom_RoundTripsAStorableEvent(t *testing.T) {
	// arrange
	sighting := core.BuildDragonSighting(uuid.New(), fixtures.NivMizzet, core.MainRealmID, time.Now())

	// act
	mapped, err := sightings.SightingFrom(toStorable(t, sighting))

	// assert
	require.NoError(t, err)
	assert.Equal(t, sighting.SightingID, mapped.SightingID)
	assert.Equal(t, sighting.DragonName, mapped.DragonName)
	assert.Equal(t, sighting.RealmID, mapped.RealmID)
	assert.True(t, sighting.SeenOn.Equal(mapped.SeenOn))
}
