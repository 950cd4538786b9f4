package queries

import (
	"context"

	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetClientLocationQueryHandler reads client coordinates with a direct SQL query.
type GetClientLocationQueryHandler struct {
	db *gorm.DB
}

func NewGetClientLocationQueryHandler(db *gorm.DB) GetClientLocationQueryHandler {
	return GetClientLocationQueryHandler{db: db}
}

// Handle returns errs.ErrObjectNotFound when the client does not exist.
func (h GetClientLocationQueryHandler) Handle(
	ctx context.Context,
	query GetClientLocationQuery,
) (GetClientLocationQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetClientLocationQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			latitude,
			longitude
		FROM clients
		WHERE id = ?
	`, query.ClientID().Int64()).Rows()
	if err != nil {
		return GetClientLocationQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetClientLocationQueryResponse{}, err
		}
		return GetClientLocationQueryResponse{}, errs.NewObjectNotFoundError("clientId", query.ClientID())
	}

	var latitude, longitude float64
	if err = rows.Scan(&latitude, &longitude); err != nil {
		return GetClientLocationQueryResponse{}, err
	}

	location, err := kernel.NewGeoPoint(latitude, longitude)
	if err != nil {
		return GetClientLocationQueryResponse{}, err
	}

	return GetClientLocationQueryResponse{
		ClientID: query.ClientID(),
		Location: location,
	}, nil
}
