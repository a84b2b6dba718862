// Package eventstore provides the engine-agnostic types of an append-only event log.
//
// Dragon sightings are stored as events in such a log. This package defines how a query
// against the log is described (Filter), what is stored and returned (StorableEvent),
// and the sentinel errors shared by all engines.
//
// A Filter matches events by event type and by JSON payload predicates:
//
//	filter := eventstore.BuildEventFilter().
//		Matching().
//		AnyEventTypeOf(core.DragonSightedEventType).
//		AndAllPredicatesOf(eventstore.P("RealmID", 1)).
//		Finalize()
//
//	events, maxSeq, err := store.Query(ctx, filter)
//
// Predicate values are any JSON-encodable scalar, so numeric payload fields like a
// realm id are matched as numbers, not as strings.
package eventstore
