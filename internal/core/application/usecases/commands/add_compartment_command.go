package commands

import (
	"errors"

	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/pkg/errs"
	"parcellocker/internal/pkg/guard"
)

var ErrAddCompartmentCommandIsNotConstructed = errors.New(
	"AddCompartmentCommand must be created via NewAddCompartmentCommand constructor",
)

// AddCompartmentCommand installs a new, empty compartment at an existing site.
type AddCompartmentCommand struct { //nolint:recvcheck //using for validation
	siteID kernel.ID
	size   kernel.Size

	guard guard.ConstructorGuard
}

// NewAddCompartmentCommand validates the site id and the size code.
func NewAddCompartmentCommand(siteID int64, size string) (AddCompartmentCommand, error) {
	command := AddCompartmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	id, idErr := kernel.NewID(siteID)
	if idErr != nil {
		idErr = errs.NewValueIsInvalidErrorWithCause("site id", idErr)
	}
	parsed, sizeErr := kernel.ParseSize(size)
	if err := errors.Join(idErr, sizeErr); err != nil {
		return AddCompartmentCommand{}, err
	}

	command.siteID = id
	command.size = parsed
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AddCompartmentCommand) Validate() error {
	return c.guard.Validate(ErrAddCompartmentCommandIsNotConstructed)
}

func (c AddCompartmentCommand) SiteID() kernel.ID {
	return c.siteID
}

func (c AddCompartmentCommand) Size() kernel.Size {
	return c.size
}
