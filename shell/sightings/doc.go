// Package sightings provides sources of dragon sightings.
//
// EventLogRepository keeps sightings as DragonSighted events in an append-only event log
// and finds them with a filter on the realm. InMemoryRepository serves an immutable set
// of sightings handed over at construction.
package sightings
