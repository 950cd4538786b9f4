package parcelrepo

import (
	"context"
	"errors"

	"parcellocker/internal/adapters/out/postgres/crud"
	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/core/domain/model/parcel"
	"parcellocker/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormParcelRepository implements ports.ParcelRepository using GORM.
type GormParcelRepository struct {
	db    *gorm.DB
	table crud.Table[ParcelDTO]
}

// NewGormParcelRepository creates a repository bound to db.
func NewGormParcelRepository(db *gorm.DB) *GormParcelRepository {
	return &GormParcelRepository{
		db:    db,
		table: crud.NewTable[ParcelDTO](db, "package"),
	}
}

// Add inserts the package and assigns the generated id to it.
func (r *GormParcelRepository) Add(ctx context.Context, p *parcel.Parcel) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := fromDomain(p)
	id, err := r.table.Insert(ctx, &dto)
	if err != nil {
		return err
	}

	return p.Identify(kernel.ID(id))
}

// Update saves the package state.
func (r *GormParcelRepository) Update(ctx context.Context, p *parcel.Parcel) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := fromDomain(p)
	return r.table.Update(ctx, dto.ID, &dto)
}

// Get retrieves a package by id.
func (r *GormParcelRepository) Get(ctx context.Context, id kernel.ID) (*parcel.Parcel, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	dto, err := r.table.FindByID(ctx, id.Int64())
	if err != nil {
		return nil, err
	}

	return toDomain(dto)
}

// GetForUpdate retrieves a package with SELECT ... FOR UPDATE. The row lock is
// held until the surrounding transaction ends, so it must run inside one.
func (r *GormParcelRepository) GetForUpdate(ctx context.Context, id kernel.ID) (*parcel.Parcel, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ParcelDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id.Int64()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundErrorWithCause("package", id, err)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll returns every package ordered by id.
func (r *GormParcelRepository) GetAll(ctx context.Context) ([]*parcel.Parcel, error) {
	dtos, err := r.table.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	parcels := make([]*parcel.Parcel, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		parcels = append(parcels, p)
	}

	return parcels, nil
}
