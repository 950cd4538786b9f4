package compartment

import (
	"fmt"

	"parcellocker/internal/pkg/errs"
)

// Status is the occupancy state of a compartment.
//
// State transitions:
//
//	Available ──Occupy──> Occupied ──Release──> Available
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota

	// Available compartments can be assigned a new package.
	Available

	// Occupied compartments hold exactly one package that has not been received.
	Occupied
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Available: "Available",
		Occupied:  "Occupied",
	}
}

// ParseStatus converts the stored name back into a Status.
func ParseStatus(name string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != Unknown && str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", name))
}

// Validate checks that the Status is Available or Occupied.
func (s Status) Validate() error {
	if s != Available && s != Occupied {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Occupy transitions Available to Occupied. Any other source state yields
// ErrCompartmentIsNotAvailable.
func (s Status) Occupy() (Status, error) {
	if s != Available {
		return Unknown, fmt.Errorf("%w: status is %s", ErrCompartmentIsNotAvailable, s)
	}
	return Occupied, nil
}

// Release transitions Occupied to Available. Any other source state yields
// ErrCompartmentIsNotOccupied.
func (s Status) Release() (Status, error) {
	if s != Occupied {
		return Unknown, fmt.Errorf("%w: status is %s", ErrCompartmentIsNotOccupied, s)
	}
	return Available, nil
}
