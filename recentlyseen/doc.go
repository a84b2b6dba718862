// Package recentlyseen implements the Recently Seen Dragons query use case.
//
// It answers one question: which dragons of a realm were sighted within a recency window?
// Two independent sources are asked for the realm's data, one for the dragons known in the realm
// and one for the sightings in the realm. Their results are joined by the pure FilterByLastSeen function.
//
// The Service depends on two capabilities only, FindsDragonsByRealm and FindsSightingsByRealm.
// Both can be satisfied by a plain function (DragonsByRealmFunc, SightingsByRealmFunc)
// or by a named collaborator such as a repository. Both shapes go through the same constructor.
//
// Errors from either source are returned unchanged; there are no partial results.
package recentlyseen
