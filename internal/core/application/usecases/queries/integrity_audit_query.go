package queries

import (
	"errors"

	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/pkg/guard"
)

var ErrIntegrityAuditQueryIsNotConstructed = errors.New(
	"IntegrityAuditQuery must be created via NewIntegrityAuditQuery constructor",
)

// IntegrityAuditQuery looks for rows that break the one-package-per-compartment
// invariant:
//   - Occupied compartments whose package is missing or already Received
//   - InLocker packages whose compartment is missing or holds something else
type IntegrityAuditQuery struct {
	guard guard.ConstructorGuard
}

func NewIntegrityAuditQuery() IntegrityAuditQuery {
	return IntegrityAuditQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q IntegrityAuditQuery) Validate() error {
	return q.guard.Validate(ErrIntegrityAuditQueryIsNotConstructed)
}

// Finding entities.
const (
	FindingCompartment = "compartment"
	FindingPackage     = "package"
)

// IntegrityFinding names one inconsistent row.
type IntegrityFinding struct {
	Entity string
	ID     kernel.ID
	Reason string
}
