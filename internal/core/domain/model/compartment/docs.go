// Package compartment models the individually addressable storage slots of a
// parcel-locker site ("lockers").
//
// The package includes:
//   - Compartment: a slot of fixed size that holds at most one package at a time
//   - Status: the Available/Occupied state machine driving Occupy and Release
//
// A compartment is eligible for a new package only while Available. Occupy and
// Release are the only operations that change its state.
package compartment
