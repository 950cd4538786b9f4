package ports

import (
	"context"

	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/core/domain/model/site"
)

// SiteRepository reads and writes parcel-locker sites.
type SiteRepository interface {
	// Add persists a new site and assigns its identity.
	Add(ctx context.Context, s *site.Site) error

	// Get returns the site or errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.ID) (*site.Site, error)

	// GetAll returns a snapshot of every site ordered by id.
	GetAll(ctx context.Context) ([]*site.Site, error)
}
