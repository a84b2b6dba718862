// Package core contains the domain types of the recently-seen-dragons query:
// dragons living in realms, and sightings of those dragons.
//
// The types are plain immutable values without behavior beyond their factories.
// They know nothing about where dragons or sightings are stored.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the 'domain' layer.
package core
