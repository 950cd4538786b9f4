package clientrepo

import (
	"context"

	"parcellocker/internal/adapters/out/postgres/crud"
	"parcellocker/internal/core/domain/model/client"
	"parcellocker/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormClientRepository implements ports.ClientRepository using GORM.
type GormClientRepository struct {
	table crud.Table[ClientDTO]
}

// NewGormClientRepository creates a repository bound to db.
func NewGormClientRepository(db *gorm.DB) *GormClientRepository {
	return &GormClientRepository{
		table: crud.NewTable[ClientDTO](db, "client"),
	}
}

// Add inserts the client and assigns the generated id to it.
func (r *GormClientRepository) Add(ctx context.Context, c *client.Client) error {
	if err := c.Validate(); err != nil {
		return err
	}

	dto := fromDomain(c)
	id, err := r.table.Insert(ctx, &dto)
	if err != nil {
		return err
	}

	return c.Identify(kernel.ID(id))
}

// Get retrieves a client by id.
func (r *GormClientRepository) Get(ctx context.Context, id kernel.ID) (*client.Client, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	dto, err := r.table.FindByID(ctx, id.Int64())
	if err != nil {
		return nil, err
	}

	return toDomain(dto)
}
