package parcel

import (
	"fmt"

	"parcellocker/internal/pkg/errs"
)

// Status is the lifecycle state of a package.
//
// State transitions:
//
//	InLocker ──Receive──> Received (terminal)
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota

	// InLocker packages sit in their compartment waiting for the receiver.
	InLocker

	// Received is terminal: the package was collected.
	Received
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "Unknown",
		InLocker: "InLocker",
		Received: "Received",
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

// Validate checks that the Status is InLocker or Received.
func (s Status) Validate() error {
	if s != InLocker && s != Received {
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

// Receive transitions InLocker to Received. A Received package yields
// ErrAlreadyReceived so repeated collection is rejected rather than ignored.
func (s Status) Receive() (Status, error) {
	switch s {
	case InLocker:
		return Received, nil
	case Received:
		return Unknown, ErrAlreadyReceived
	default:
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to receive", s),
		)
	}
}
