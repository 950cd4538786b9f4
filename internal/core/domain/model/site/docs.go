// Package site models parcel-locker sites: the physical installations that hold
// compartments.
//
// A site is identified by the database, placed at a GeoPoint and described by
// its city and postal code. Sites are ranked by distance from a client when a
// package is sent.
package site
