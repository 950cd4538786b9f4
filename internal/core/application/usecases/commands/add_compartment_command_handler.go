package commands

import (
	"context"

	"parcellocker/internal/core/domain/model/compartment"
	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/core/ports"
)

// AddCompartmentCommandHandler persists new compartments. The owning site must
// exist; an unknown site yields errs.ErrObjectNotFound.
type AddCompartmentCommandHandler struct {
	uowFactory CompartmentUoWFactory
}

func NewAddCompartmentCommandHandler(uowFactory CompartmentUoWFactory) AddCompartmentCommandHandler {
	return AddCompartmentCommandHandler{uowFactory: uowFactory}
}

// Handle creates an Available compartment and returns its database identity.
func (h AddCompartmentCommandHandler) Handle(ctx context.Context, command AddCompartmentCommand) (kernel.ID, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	return ports.InTransaction(ctx, uow, func(ctx context.Context) (kernel.ID, error) {
		s, err := uow.SiteRepository().Get(ctx, command.SiteID())
		if err != nil {
			return 0, err
		}

		c, err := compartment.NewCompartment(s.ID(), command.Size())
		if err != nil {
			return 0, err
		}

		if err = uow.CompartmentRepository().Add(ctx, c); err != nil {
			return 0, err
		}

		return c.ID(), nil
	})
}
