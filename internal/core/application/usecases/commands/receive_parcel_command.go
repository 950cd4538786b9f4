package commands

import (
	"errors"

	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/pkg/errs"
	"parcellocker/internal/pkg/guard"
)

var ErrReceiveParcelCommandIsNotConstructed = errors.New(
	"ReceiveParcelCommand must be created via NewReceiveParcelCommand constructor",
)

// ReceiveParcelCommand records that the receiver collected a package.
type ReceiveParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.ID

	guard guard.ConstructorGuard
}

// NewReceiveParcelCommand validates the package id.
func NewReceiveParcelCommand(parcelID int64) (ReceiveParcelCommand, error) {
	id, err := kernel.NewID(parcelID)
	if err != nil {
		return ReceiveParcelCommand{}, errs.NewValueIsInvalidErrorWithCause("package id", err)
	}

	return ReceiveParcelCommand{
		parcelID: id,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReceiveParcelCommand) Validate() error {
	return c.guard.Validate(ErrReceiveParcelCommandIsNotConstructed)
}

func (c ReceiveParcelCommand) ParcelID() kernel.ID {
	return c.parcelID
}
