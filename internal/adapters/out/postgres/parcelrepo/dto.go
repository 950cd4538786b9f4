// Package parcelrepo persists packages in the packages table.
package parcelrepo

import (
	"time"

	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/core/domain/model/parcel"
)

// ParcelDTO is the row layout of the packages table.
type ParcelDTO struct {
	ID             int64      `gorm:"primaryKey;autoIncrement"`
	SenderID       int64      `gorm:"not null;index"`
	ReceiverID     int64      `gorm:"not null;index"`
	ParcelLockerID int64      `gorm:"not null"`
	CompartmentID  int64      `gorm:"not null;index"`
	Status         string     `gorm:"type:varchar(16);not null"`
	Size           string     `gorm:"type:varchar(1);not null"`
	CreatedAt      time.Time  `gorm:"type:timestamptz;not null;autoCreateTime:false"`
	DeliveredAt    *time.Time `gorm:"type:timestamptz"`
}

func (ParcelDTO) TableName() string {
	return "packages"
}

func (d ParcelDTO) Identity() int64 {
	return d.ID
}

func fromDomain(p *parcel.Parcel) ParcelDTO {
	return ParcelDTO{
		ID:             p.ID().Int64(),
		SenderID:       p.SenderID().Int64(),
		ReceiverID:     p.ReceiverID().Int64(),
		ParcelLockerID: p.SiteID().Int64(),
		CompartmentID:  p.CompartmentID().Int64(),
		Status:         p.Status().String(),
		Size:           p.Size().String(),
		CreatedAt:      p.CreatedAt(),
		DeliveredAt:    p.DeliveredAt(),
	}
}

func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	size, err := kernel.ParseSize(dto.Size)
	if err != nil {
		return nil, err
	}

	status, err := parcel.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return parcel.RestoreParcel(
		id,
		kernel.ID(dto.SenderID),
		kernel.ID(dto.ReceiverID),
		kernel.ID(dto.ParcelLockerID),
		kernel.ID(dto.CompartmentID),
		size,
		status,
		dto.CreatedAt,
		dto.DeliveredAt,
	)
}
