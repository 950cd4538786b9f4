// Package services provides domain services that work across several aggregates
// of the parcel locker domain.
//
// The package includes:
//   - SiteRanker: orders parcel-locker sites by haversine distance from a client
package services
