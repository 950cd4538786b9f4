// Package compartmentrepo persists compartments and implements the conditional
// claim and release writes that keep one package per compartment.
package compartmentrepo

import (
	"parcellocker/internal/core/domain/model/compartment"
	"parcellocker/internal/core/domain/model/kernel"
)

// CompartmentDTO is the row layout of the compartments table. Status and size
// are stored by name.
type CompartmentDTO struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	ParcelLockerID int64  `gorm:"not null;index:idx_compartments_lookup,priority:1"`
	Size           string `gorm:"type:varchar(1);not null;index:idx_compartments_lookup,priority:2"`
	Status         string `gorm:"type:varchar(16);not null;index:idx_compartments_lookup,priority:3"`
	PackageID      *int64 `gorm:"index"`
	ClientID       *int64
}

func (CompartmentDTO) TableName() string {
	return "compartments"
}

func (d CompartmentDTO) Identity() int64 {
	return d.ID
}

func fromDomain(c *compartment.Compartment) CompartmentDTO {
	return CompartmentDTO{
		ID:             c.ID().Int64(),
		ParcelLockerID: c.SiteID().Int64(),
		Size:           c.Size().String(),
		Status:         c.Status().String(),
		PackageID:      optionalInt64(c.ParcelID()),
		ClientID:       optionalInt64(c.ClientID()),
	}
}

func toDomain(dto CompartmentDTO) (*compartment.Compartment, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	size, err := kernel.ParseSize(dto.Size)
	if err != nil {
		return nil, err
	}

	status, err := compartment.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return compartment.RestoreCompartment(
		id,
		kernel.ID(dto.ParcelLockerID),
		size,
		status,
		optionalID(dto.PackageID),
		optionalID(dto.ClientID),
	)
}

func optionalInt64(id *kernel.ID) *int64 {
	if id == nil {
		return nil
	}
	raw := id.Int64()
	return &raw
}

func optionalID(raw *int64) *kernel.ID {
	if raw == nil {
		return nil
	}
	id := kernel.ID(*raw)
	return &id
}
