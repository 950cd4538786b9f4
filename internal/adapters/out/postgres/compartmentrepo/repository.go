package compartmentrepo

import (
	"context"
	"fmt"

	"parcellocker/internal/adapters/out/postgres/crud"
	"parcellocker/internal/core/domain/model/compartment"
	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCompartmentRepository implements ports.CompartmentRepository using GORM.
type GormCompartmentRepository struct {
	table crud.Table[CompartmentDTO]
}

// NewGormCompartmentRepository creates a repository bound to db.
func NewGormCompartmentRepository(db *gorm.DB) *GormCompartmentRepository {
	return &GormCompartmentRepository{
		table: crud.NewTable[CompartmentDTO](db, "compartment"),
	}
}

// Add inserts the compartment and assigns the generated id to it.
func (r *GormCompartmentRepository) Add(ctx context.Context, c *compartment.Compartment) error {
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

// Get retrieves a compartment by id.
func (r *GormCompartmentRepository) Get(ctx context.Context, id kernel.ID) (*compartment.Compartment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	dto, err := r.table.FindByID(ctx, id.Int64())
	if err != nil {
		return nil, err
	}

	return toDomain(dto)
}

// GetAll returns every compartment ordered by id.
func (r *GormCompartmentRepository) GetAll(ctx context.Context) ([]*compartment.Compartment, error) {
	dtos, err := r.table.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	compartments := make([]*compartment.Compartment, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		compartments = append(compartments, c)
	}

	return compartments, nil
}

// FindAvailable returns the ids of Available compartments of size at siteID in
// ascending order. It reads without locking; Claim settles races.
func (r *GormCompartmentRepository) FindAvailable(
	ctx context.Context,
	siteID kernel.ID,
	size kernel.Size,
) ([]kernel.ID, error) {
	if err := size.Validate(); err != nil {
		return nil, err
	}

	raw := make([]int64, 0)
	err := r.table.Scope(ctx).
		Where("parcel_locker_id = ? AND size = ? AND status = ?",
			siteID.Int64(), size.String(), compartment.Available.String()).
		Order("id").
		Pluck("id", &raw).Error
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.ID, 0, len(raw))
	for _, id := range raw {
		ids = append(ids, kernel.ID(id))
	}
	return ids, nil
}

// Claim writes the Occupied compartment only while its row is still Available.
func (r *GormCompartmentRepository) Claim(ctx context.Context, c *compartment.Compartment) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Status() != compartment.Occupied {
		return errs.NewValueIsInvalidErrorWithCause(
			"compartment status",
			fmt.Errorf("claim requires %s, got %s", compartment.Occupied, c.Status()),
		)
	}

	dto := fromDomain(c)
	matched, err := r.table.UpdateIf(ctx, dto.ID, &dto, "status = ?", compartment.Available.String())
	if err != nil {
		return err
	}
	if !matched {
		return compartment.ErrCompartmentIsNotAvailable
	}

	return nil
}

// Release writes the Available compartment only while its row is still
// Occupied by parcelID.
func (r *GormCompartmentRepository) Release(
	ctx context.Context,
	c *compartment.Compartment,
	parcelID kernel.ID,
) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Status() != compartment.Available {
		return errs.NewValueIsInvalidErrorWithCause(
			"compartment status",
			fmt.Errorf("release requires %s, got %s", compartment.Available, c.Status()),
		)
	}

	dto := fromDomain(c)
	matched, err := r.table.UpdateIf(ctx, dto.ID, &dto,
		"status = ? AND package_id = ?", compartment.Occupied.String(), parcelID.Int64())
	if err != nil {
		return err
	}
	if !matched {
		return errs.NewDataIntegrityFaultError(
			"compartment",
			c.ID(),
			fmt.Sprintf("row is not occupied by package %s", parcelID),
		)
	}

	return nil
}
