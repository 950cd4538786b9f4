package kernel

import (
	"fmt"
	"strconv"

	"parcellocker/internal/pkg/errs"
)

// ID is the numeric identity of a persisted entity. Identities are assigned by the
// database on insert, so the zero value means "not persisted yet" and never names
// a stored row.
type ID int64

// NewID converts a raw identifier received from outside the domain (HTTP path,
// CLI flag, database column) into an ID, rejecting non-positive values.
func NewID(raw int64) (ID, error) {
	id := ID(raw)
	if err := id.Validate(); err != nil {
		return 0, err
	}
	return id, nil
}

// Validate reports whether the ID refers to a persisted entity.
func (id ID) Validate() error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not greater than 0", int64(id)))
	}
	return nil
}

// IsZero reports whether the ID is unassigned.
func (id ID) IsZero() bool {
	return id == 0
}

// Int64 returns the raw value for persistence.
func (id ID) Int64() int64 {
	return int64(id)
}

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}
