// Package kernel holds the value objects shared by every aggregate of the parcel
// locker domain.
//
// The package includes:
//   - ID: the database-assigned numeric identity of an entity
//   - GeoPoint: a validated WGS-84 coordinate with haversine distance
//   - Size: the S/M/L size class of compartments and packages
//
// Values are immutable and safe for concurrent use.
package kernel
