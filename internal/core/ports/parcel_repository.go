package ports

import (
	"context"

	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/core/domain/model/parcel"
)

// ParcelRepository reads and writes packages.
type ParcelRepository interface {
	// Add persists a new package and assigns its identity.
	Add(ctx context.Context, p *parcel.Parcel) error

	// Update persists the state of an existing package.
	Update(ctx context.Context, p *parcel.Parcel) error

	// Get returns the package or errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.ID) (*parcel.Parcel, error)

	// GetForUpdate is Get with a row lock held until the transaction ends.
	GetForUpdate(ctx context.Context, id kernel.ID) (*parcel.Parcel, error)

	// GetAll returns a snapshot of every package ordered by id.
	GetAll(ctx context.Context) ([]*parcel.Parcel, error)
}
