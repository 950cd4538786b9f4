package queries

import (
	"errors"

	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/pkg/errs"
	"parcellocker/internal/pkg/guard"
)

var ErrGetClientLocationQueryIsNotConstructed = errors.New(
	"GetClientLocationQuery must be created via NewGetClientLocationQuery constructor",
)

// GetClientLocationQuery reads the stored coordinates of one client.
type GetClientLocationQuery struct {
	clientID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetClientLocationQuery(clientID int64) (GetClientLocationQuery, error) {
	id, err := kernel.NewID(clientID)
	if err != nil {
		return GetClientLocationQuery{}, errs.NewValueIsInvalidErrorWithCause("client id", err)
	}
	return GetClientLocationQuery{
		clientID: id,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetClientLocationQuery) Validate() error {
	return q.guard.Validate(ErrGetClientLocationQueryIsNotConstructed)
}

func (q GetClientLocationQuery) ClientID() kernel.ID {
	return q.clientID
}

// GetClientLocationQueryResponse is the client's position.
type GetClientLocationQueryResponse struct {
	ClientID kernel.ID
	Location kernel.GeoPoint
}
