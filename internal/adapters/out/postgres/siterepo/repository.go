package siterepo

import (
	"context"

	"parcellocker/internal/adapters/out/postgres/crud"
	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/core/domain/model/site"

	"gorm.io/gorm"
)

// GormSiteRepository implements ports.SiteRepository using GORM.
type GormSiteRepository struct {
	table crud.Table[SiteDTO]
}

// NewGormSiteRepository creates a repository bound to db.
func NewGormSiteRepository(db *gorm.DB) *GormSiteRepository {
	return &GormSiteRepository{
		table: crud.NewTable[SiteDTO](db, "parcel locker"),
	}
}

// Add inserts the site and assigns the generated id to it.
func (r *GormSiteRepository) Add(ctx context.Context, s *site.Site) error {
	if err := s.Validate(); err != nil {
		return err
	}

	dto := fromDomain(s)
	id, err := r.table.Insert(ctx, &dto)
	if err != nil {
		return err
	}

	return s.Identify(kernel.ID(id))
}

// Get retrieves a site by id.
func (r *GormSiteRepository) Get(ctx context.Context, id kernel.ID) (*site.Site, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	dto, err := r.table.FindByID(ctx, id.Int64())
	if err != nil {
		return nil, err
	}

	return toDomain(dto)
}

// GetAll returns every site ordered by id.
func (r *GormSiteRepository) GetAll(ctx context.Context) ([]*site.Site, error) {
	dtos, err := r.table.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	sites := make([]*site.Site, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		sites = append(sites, s)
	}

	return sites, nil
}
