// Package dragons provides sources of the dragons known in a realm.
//
// SQLRepository reads them from a relational table, InMemoryRepository from an immutable
// set of records handed over at construction. WithEvergreen decorates any source with
// dragons that are known in every realm.
//
// In Hexagonal Architecture terminology, these are driven adapters.
package dragons
