package queries

import (
	"context"

	"parcellocker/internal/core/domain/model/compartment"
	"parcellocker/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// CompartmentOccupancyQueryHandler aggregates the compartments table.
// Buckets without compartments are omitted.
type CompartmentOccupancyQueryHandler struct {
	db *gorm.DB
}

func NewCompartmentOccupancyQueryHandler(db *gorm.DB) CompartmentOccupancyQueryHandler {
	return CompartmentOccupancyQueryHandler{db: db}
}

// Handle returns the buckets ordered by status, then size.
func (h CompartmentOccupancyQueryHandler) Handle(
	ctx context.Context,
	query CompartmentOccupancyQuery,
) ([]CompartmentOccupancy, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	buckets := make([]CompartmentOccupancy, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			size,
			COUNT(*)
		FROM compartments
		GROUP BY status, size
		ORDER BY status, size
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var bucket CompartmentOccupancy
		var status, size string

		if err = rows.Scan(&status, &size, &bucket.Count); err != nil {
			return nil, err
		}

		if bucket.Status, err = compartment.ParseStatus(status); err != nil {
			return nil, err
		}
		if bucket.Size, err = kernel.ParseSize(size); err != nil {
			return nil, err
		}
		buckets = append(buckets, bucket)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return buckets, nil
}
