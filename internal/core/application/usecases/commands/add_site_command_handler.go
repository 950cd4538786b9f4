package commands

import (
	"context"

	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/core/domain/model/site"
	"parcellocker/internal/core/ports"
)

// AddSiteCommandHandler persists new parcel-locker sites.
type AddSiteCommandHandler struct {
	uowFactory SiteUoWFactory
}

func NewAddSiteCommandHandler(uowFactory SiteUoWFactory) AddSiteCommandHandler {
	return AddSiteCommandHandler{uowFactory: uowFactory}
}

// Handle creates the site and returns its database identity.
func (h AddSiteCommandHandler) Handle(ctx context.Context, command AddSiteCommand) (kernel.ID, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	return ports.InTransaction(ctx, uow, func(ctx context.Context) (kernel.ID, error) {
		s, err := site.NewSite(command.City(), command.PostalCode(), command.Location())
		if err != nil {
			return 0, err
		}

		if err = uow.SiteRepository().Add(ctx, s); err != nil {
			return 0, err
		}

		return s.ID(), nil
	})
}
