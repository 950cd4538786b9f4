package queries

import (
	"context"

	"parcellocker/internal/core/domain/services"
	"parcellocker/internal/core/ports"
)

// ReadUoW exposes the repositories the ranking query reads from.
type ReadUoW interface {
	ports.TxManager
	ClientRepository() ports.ClientRepository
	SiteRepository() ports.SiteRepository
}

type ReadUoWFactory interface {
	Create() ReadUoW
}

// NearestSitesQueryHandler ranks sites by haversine distance from the client's
// stored location. Only sites strictly inside the radius are returned, nearest
// first, ties broken by site id.
type NearestSitesQueryHandler struct {
	uowFactory ReadUoWFactory
	ranker     services.SiteRanker
}

func NewNearestSitesQueryHandler(uowFactory ReadUoWFactory) NearestSitesQueryHandler {
	return NearestSitesQueryHandler{
		uowFactory: uowFactory,
		ranker:     services.NewSiteRanker(),
	}
}

// Handle returns errs.ErrObjectNotFound for an unknown client. An empty slice
// means no site is in range.
func (h NearestSitesQueryHandler) Handle(ctx context.Context, query NearestSitesQuery) ([]NearestSite, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	return ports.InTransaction(ctx, uow, func(ctx context.Context) ([]NearestSite, error) {
		c, err := uow.ClientRepository().Get(ctx, query.ClientID())
		if err != nil {
			return nil, err
		}

		sites, err := uow.SiteRepository().GetAll(ctx)
		if err != nil {
			return nil, err
		}

		ranked, err := h.ranker.Rank(c.Location(), sites, query.MaxDistanceKm())
		if err != nil {
			return nil, err
		}

		result := make([]NearestSite, 0, len(ranked))
		for _, r := range ranked {
			result = append(result, NearestSite{
				SiteID:     r.Site.ID(),
				City:       r.Site.City(),
				PostalCode: r.Site.PostalCode(),
				Location:   r.Site.Location(),
				DistanceKm: r.DistanceKm,
			})
		}
		return result, nil
	})
}
