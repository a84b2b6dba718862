package postgresengine_test

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/recently-seen-dragons/eventstore"
	"github.com/AntonStoeckl/recently-seen-dragons/eventstore/postgresengine"
	"github.com/AntonStoeckl/recently-seen-dragons/testutil/pgtest"
)

type eventStoreFactory func(t *testing.T, tableName string) postgresengine.EventStore

func eventStoreFactories() map[string]eventStoreFactory {
	return map[string]eventStoreFactory{
		"pgx.Pool": func(t *testing.T, tableName string) postgresengine.EventStore {
			es, err := postgresengine.NewEventStoreFromPGXPool(pgtest.PGXPool(t), postgresengine.WithTableName(tableName))
			require.NoError(t, err, "creating the event store failed")

			return es
		},
		"pgx.Pool with replica": func(t *testing.T, tableName string) postgresengine.EventStore {
			es, err := postgresengine.NewEventStoreFromPGXPoolAndReplica(
				pgtest.PGXPool(t),
				pgtest.PGXPool(t),
				postgresengine.WithTableName(tableName),
			)
			require.NoError(t, err, "creating the event store failed")

			return es
		},
		"sql.DB": func(t *testing.T, tableName string) postgresengine.EventStore {
			es, err := postgresengine.NewEventStoreFromSQLDB(pgtest.SQLDB(t), postgresengine.WithTableName(tableName))
			require.NoError(t, err, "creating the event store failed")

			return es
		},
		"sqlx.DB": func(t *testing.T, tableName string) postgresengine.EventStore {
			es, err := postgresengine.NewEventStoreFromSQLX(pgtest.SQLX(t), postgresengine.WithTableName(tableName))
			require.NoError(t, err, "creating the event store failed")

			return es
		},
	}
}

func givenEventStoreWithTable(t *testing.T, factory eventStoreFactory) postgresengine.EventStore {
	t.Helper()

	es := factory(t, pgtest.UniqueTableName("events"))
	require.NoError(t, es.CreateTable(t.Context()), "creating the events table failed")

	return es
}

func givenSighting(t *testing.T, dragonName string, realmID int, occurredAt time.Time) eventstore.StorableEvent {
	t.Helper()

	payload := `{"DragonName":"` + dragonName + `","RealmID":` + strconv.Itoa(realmID) + `}`
	event, err := eventstore.BuildStorableEventWithEmptyMetadata("DragonSighted", occurredAt, []byte(payload))
	require.NoError(t, err)

	return event
}

func Test_EventStore_AppendAndQuery_RoundTrip(t *testing.T) {
	for name, factory := range eventStoreFactories() {
		t.Run(name, func(t *testing.T) {
			// arrange
			es := givenEventStoreWithTable(t, factory)
			occurredAt := time.Date(2025, 6, 1, 12, 0, 0, 123456000, time.UTC)
			event := givenSighting(t, "Niv-Mizzet", 1, occurredAt)

			// act
			err := es.Append(t.Context(), event)
			require.NoError(t, err, "appending the event failed")

			events, maxSequenceNumber, err := es.Query(t.Context(), eventstore.BuildEventFilter().MatchingAnyEvent())

			// assert
			require.NoError(t, err, "querying the events failed")
			require.Len(t, events, 1)
			assert.Equal(t, "DragonSighted", events[0].EventType)
			assert.True(t, occurredAt.Equal(events[0].OccurredAt), "occurredAt must survive the round trip")
			assert.JSONEq(t, string(event.PayloadJSON), string(events[0].PayloadJSON))
			assert.JSONEq(t, `{}`, string(events[0].MetadataJSON))
			assert.Equal(t, eventstore.MaxSequenceNumberUint(1), maxSequenceNumber)
		})
	}
}

func Test_EventStore_Query_MatchesPayloadPredicates(t *testing.T) {
	for name, factory := range eventStoreFactories() {
		t.Run(name, func(t *testing.T) {
			// arrange
			es := givenEventStoreWithTable(t, factory)
			now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
			err := es.Append(
				t.Context(),
				givenSighting(t, "Niv-Mizzet", 1, now),
				givenSighting(t, "Ben", 9999, now),
				givenSighting(t, "Balthazar", 1, now.Add(time.Minute)),
			)
			require.NoError(t, err, "appending the events failed")

			filter := eventstore.BuildEventFilter().
				Matching().
				AnyEventTypeOf("DragonSighted").
				AndAnyPredicateOf(eventstore.P("RealmID", 1)).
				Finalize()

			// act
			events, maxSequenceNumber, err := es.Query(eventstore.WithEventualConsistency(t.Context()), filter)

			// assert
			require.NoError(t, err, "querying the events failed")
			require.Len(t, events, 2)
			assert.Contains(t, string(events[0].PayloadJSON), "Niv-Mizzet")
			assert.Contains(t, string(events[1].PayloadJSON), "Balthazar")
			assert.Equal(t, eventstore.MaxSequenceNumberUint(3), maxSequenceNumber)
		})
	}
}

func Test_EventStore_Query_WithoutMatches_ReturnsEmptyResult(t *testing.T) {
	// arrange
	es := givenEventStoreWithTable(t, eventStoreFactories()["pgx.Pool"])
	filter := eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf("DragonSighted").
		AndAnyPredicateOf(eventstore.P("RealmID", 42)).
		Finalize()

	// act
	events, maxSequenceNumber, err := es.Query(t.Context(), filter)

	// assert
	require.NoError(t, err)
	assert.Empty(t, events)
	assert.NotNil(t, events)
	assert.Equal(t, eventstore.MaxSequenceNumberUint(0), maxSequenceNumber)
}

func Test_EventStore_Query_WithCanceledContext_Fails(t *testing.T) {
	// arrange
	es := givenEventStoreWithTable(t, eventStoreFactories()["pgx.Pool"])
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	// act
	_, _, err := es.Query(ctx, eventstore.BuildEventFilter().MatchingAnyEvent())

	// assert
	assert.ErrorIs(t, err, eventstore.ErrQueryingEventsFailed)
	assert.ErrorIs(t, err, context.Canceled)
}

func Test_EventStore_Append_WithoutTable_Fails(t *testing.T) {
	// arrange
	es, err := postgresengine.NewEventStoreFromPGXPool(
		pgtest.PGXPool(t),
		postgresengine.WithTableName(pgtest.UniqueTableName("missing")),
	)
	require.NoError(t, err)

	// act
	err = es.Append(t.Context(), givenSighting(t, "Bahamut", 1, time.Now()))

	// assert
	assert.ErrorIs(t, err, eventstore.ErrAppendingEventFailed)
}

func Test_NewEventStore_WithNilConnection_Fails(t *testing.T) {
	_, err := postgresengine.NewEventStoreFromPGXPool(nil)
	assert.ErrorIs(t, err, eventstore.ErrNilDatabaseConnection)

	_, err = postgresengine.NewEventStoreFromPGXPoolAndReplica(nil, nil)
	assert.ErrorIs(t, err, eventstore.ErrNilDatabaseConnection)

	_, err = postgresengine.NewEventStoreFromSQLDB(nil)
	assert.ErrorIs(t, err, eventstore.ErrNilDatabaseConnection)

	_, err = postgresengine.NewEventStoreFromSQLX(nil)
	assert.ErrorIs(t, err, eventstore.ErrNilDatabaseConnection)
}
