// Package clientrepo persists client aggregates in the clients table.
package clientrepo

import (
	"parcellocker/internal/core/domain/model/client"
	"parcellocker/internal/core/domain/model/kernel"
)

// ClientDTO is the row layout of the clients table.
type ClientDTO struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	FirstName   string  `gorm:"type:varchar(100);not null"`
	LastName    string  `gorm:"type:varchar(100);not null"`
	Email       string  `gorm:"type:varchar(255);not null;uniqueIndex"`
	PhoneNumber string  `gorm:"type:varchar(32)"`
	Latitude    float64 `gorm:"type:double precision;not null"`
	Longitude   float64 `gorm:"type:double precision;not null"`
}

func (ClientDTO) TableName() string {
	return "clients"
}

func (d ClientDTO) Identity() int64 {
	return d.ID
}

func fromDomain(c *client.Client) ClientDTO {
	return ClientDTO{
		ID:          c.ID().Int64(),
		FirstName:   c.FirstName(),
		LastName:    c.LastName(),
		Email:       c.Email(),
		PhoneNumber: c.Phone(),
		Latitude:    c.Location().Latitude(),
		Longitude:   c.Location().Longitude(),
	}
}

func toDomain(dto ClientDTO) (*client.Client, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewGeoPoint(dto.Latitude, dto.Longitude)
	if err != nil {
		return nil, err
	}

	return client.RestoreClient(id, dto.FirstName, dto.LastName, dto.Email, dto.PhoneNumber, location)
}
