// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models for specific use cases and never mutate state.
package queries

import (
	"errors"

	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/core/domain/services"
	"parcellocker/internal/pkg/errs"
	"parcellocker/internal/pkg/guard"
)

var ErrNearestSitesQueryIsNotConstructed = errors.New(
	"NearestSitesQuery must be created via NewNearestSitesQuery constructor",
)

// NearestSitesQuery lists the parcel-locker sites within a radius of a client.
//
// Example:
//
//	query, err := NewNearestSitesQuery(clientID, 5)
//	if err != nil {
//	    return err
//	}
//	sites, err := handler.Handle(ctx, query)
type NearestSitesQuery struct {
	clientID      kernel.ID
	maxDistanceKm float64

	guard guard.ConstructorGuard
}

// NewNearestSitesQuery validates the client id and requires a finite radius >= 0.
func NewNearestSitesQuery(clientID int64, maxDistanceKm float64) (NearestSitesQuery, error) {
	id, idErr := kernel.NewID(clientID)
	if idErr != nil {
		idErr = errs.NewValueIsInvalidErrorWithCause("client id", idErr)
	}
	if err := errors.Join(idErr, services.ValidateRadius(maxDistanceKm)); err != nil {
		return NearestSitesQuery{}, err
	}

	return NearestSitesQuery{
		clientID:      id,
		maxDistanceKm: maxDistanceKm,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q NearestSitesQuery) Validate() error {
	return q.guard.Validate(ErrNearestSitesQueryIsNotConstructed)
}

func (q NearestSitesQuery) ClientID() kernel.ID {
	return q.clientID
}

func (q NearestSitesQuery) MaxDistanceKm() float64 {
	return q.maxDistanceKm
}

// NearestSite is one ranked site in the read model.
type NearestSite struct {
	SiteID     kernel.ID
	City       string
	PostalCode string
	Location   kernel.GeoPoint
	DistanceKm float64
}
