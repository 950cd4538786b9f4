// Package ports defines the persistence contracts of the parcel locker domain.
// The interfaces decouple the domain and application layers from the storage
// adapters, which keeps command handlers testable with mocks.
package ports

import (
	"context"

	"parcellocker/internal/core/domain/model/client"
	"parcellocker/internal/core/domain/model/kernel"
)

// ClientRepository reads and writes client aggregates.
// The allocation flow only reads clients; Add exists for registration and seeding.
type ClientRepository interface {
	// Add persists a new client and assigns its identity.
	// A duplicate email yields errs.ErrConstraintViolation.
	Add(ctx context.Context, c *client.Client) error

	// Get returns the client or errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.ID) (*client.Client, error)
}
