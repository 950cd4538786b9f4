package ports

import (
	"context"

	"parcellocker/internal/core/domain/model/compartment"
	"parcellocker/internal/core/domain/model/kernel"
)

// CompartmentRepository reads and writes compartments.
//
// Claim and Release are conditional writes: they only succeed if the stored row
// is still in the state the caller observed, which is how concurrent senders
// are kept from assigning two packages to one compartment.
type CompartmentRepository interface {
	// Add persists a new compartment and assigns its identity.
	Add(ctx context.Context, c *compartment.Compartment) error

	// Get returns the compartment or errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.ID) (*compartment.Compartment, error)

	// GetAll returns a snapshot of every compartment ordered by id.
	GetAll(ctx context.Context) ([]*compartment.Compartment, error)

	// FindAvailable returns ids of Available compartments of the given size at
	// the site, ascending. An empty result is not an error.
	FindAvailable(ctx context.Context, siteID kernel.ID, size kernel.Size) ([]kernel.ID, error)

	// Claim stores an Occupied compartment only if its row is still Available.
	// A lost race yields compartment.ErrCompartmentIsNotAvailable.
	Claim(ctx context.Context, c *compartment.Compartment) error

	// Release stores an Available compartment only if its row is still Occupied
	// by parcelID. Otherwise it yields errs.ErrDataIntegrityFault.
	Release(ctx context.Context, c *compartment.Compartment, parcelID kernel.ID) error
}
