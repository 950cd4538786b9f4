package postgres

import (
	"context"

	"parcellocker/internal/adapters/out/postgres/clientrepo"
	"parcellocker/internal/adapters/out/postgres/compartmentrepo"
	"parcellocker/internal/adapters/out/postgres/parcelrepo"
	"parcellocker/internal/adapters/out/postgres/siterepo"

	"gorm.io/gorm"
)

// Tables lists every table owned by the service.
var Tables = []string{"clients", "parcel_lockers", "compartments", "packages"}

// Migrate creates or alters the tables to match the repository DTOs.
func Migrate(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).AutoMigrate(
		&clientrepo.ClientDTO{},
		&siterepo.SiteDTO{},
		&compartmentrepo.CompartmentDTO{},
		&parcelrepo.ParcelDTO{},
	)
}
