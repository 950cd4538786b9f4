// Package siterepo persists parcel-locker sites in the parcel_lockers table.
package siterepo

import (
	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/core/domain/model/site"
)

// SiteDTO is the row layout of the parcel_lockers table.
type SiteDTO struct {
	ID         int64   `gorm:"primaryKey;autoIncrement"`
	City       string  `gorm:"type:varchar(100);not null"`
	PostalCode string  `gorm:"type:varchar(16);not null"`
	Latitude   float64 `gorm:"type:double precision;not null"`
	Longitude  float64 `gorm:"type:double precision;not null"`
}

func (SiteDTO) TableName() string {
	return "parcel_lockers"
}

func (d SiteDTO) Identity() int64 {
	return d.ID
}

func fromDomain(s *site.Site) SiteDTO {
	return SiteDTO{
		ID:         s.ID().Int64(),
		City:       s.City(),
		PostalCode: s.PostalCode(),
		Latitude:   s.Location().Latitude(),
		Longitude:  s.Location().Longitude(),
	}
}

func toDomain(dto SiteDTO) (*site.Site, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewGeoPoint(dto.Latitude, dto.Longitude)
	if err != nil {
		return nil, err
	}

	return site.RestoreSite(id, dto.City, dto.PostalCode, location)
}
