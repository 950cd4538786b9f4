package queries

import (
	"errors"

	"parcellocker/internal/core/domain/model/compartment"
	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/pkg/guard"
)

var ErrCompartmentOccupancyQueryIsNotConstructed = errors.New(
	"CompartmentOccupancyQuery must be created via NewCompartmentOccupancyQuery constructor",
)

// CompartmentOccupancyQuery counts compartments per status and size across all sites.
type CompartmentOccupancyQuery struct {
	guard guard.ConstructorGuard
}

func NewCompartmentOccupancyQuery() CompartmentOccupancyQuery {
	return CompartmentOccupancyQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q CompartmentOccupancyQuery) Validate() error {
	return q.guard.Validate(ErrCompartmentOccupancyQueryIsNotConstructed)
}

// CompartmentOccupancy is the number of compartments in one status/size bucket.
type CompartmentOccupancy struct {
	Status compartment.Status
	Size   kernel.Size
	Count  int64
}
