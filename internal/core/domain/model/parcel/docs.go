// Package parcel models packages sent between clients through parcel lockers.
//
// The package includes:
//   - Parcel: the aggregate pinned to one compartment from allocation to collection
//   - Status: the InLocker -> Received state machine
//
// Key business rules:
//   - A package is created InLocker with its creation time set
//   - Receiving moves it to Received and sets the delivery time exactly once
//   - Receiving a Received package fails with ErrAlreadyReceived
package parcel
