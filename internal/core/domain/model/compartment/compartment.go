package compartment

import (
	"errors"
	"fmt"

	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/pkg/errs"
	"parcellocker/internal/pkg/guard"
)

var (
	// ErrCompartmentIsNotAvailable is returned when a package is assigned to a
	// compartment that is already occupied. At the storage level it also signals a
	// lost race: another transaction claimed the compartment first.
	ErrCompartmentIsNotAvailable = errors.New("compartment is not available")

	// ErrCompartmentIsNotOccupied is returned when releasing an empty compartment.
	ErrCompartmentIsNotOccupied = errors.New("compartment is not occupied")

	// ErrParcelMismatch is returned when a compartment is released for a package it does not hold.
	ErrParcelMismatch = errors.New("compartment holds a different package")

	// ErrCompartmentIsNotConstructed is returned when using an improperly initialized Compartment.
	ErrCompartmentIsNotConstructed = errors.New(
		"Compartment must be created via NewCompartment or RestoreCompartment constructor")
)

// Compartment is an individually addressable storage slot of a fixed size inside
// a parcel-locker site.
//
// Invariants:
//   - Size and owning site never change after creation
//   - parcelID and clientID are both set iff the status is Occupied
//   - Only Occupy and Release change the status
//
// Example:
//
//	c, _ := compartment.NewCompartment(siteID, kernel.Small)
//	_ = c.Occupy(parcelID, receiverID) // Available -> Occupied
//	_ = c.Release(parcelID)            // Occupied -> Available
type Compartment struct {
	id       kernel.ID
	siteID   kernel.ID
	size     kernel.Size
	status   Status
	parcelID *kernel.ID
	clientID *kernel.ID
	guard    guard.ConstructorGuard
}

// NewCompartment creates an empty, Available compartment at the given site.
func NewCompartment(siteID kernel.ID, size kernel.Size) (*Compartment, error) {
	c := &Compartment{
		status: Available,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setSiteID(siteID),
		c.setSize(size),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCompartment rebuilds a persisted compartment and re-checks the
// occupancy invariant: an Occupied compartment must reference both a package and
// a recipient, and an Available one must reference neither.
func RestoreCompartment(
	id kernel.ID,
	siteID kernel.ID,
	size kernel.Size,
	status Status,
	parcelID *kernel.ID,
	clientID *kernel.ID,
) (*Compartment, error) {
	c := &Compartment{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.Identify(id),
		c.setSiteID(siteID),
		c.setSize(size),
		c.setOccupancy(status, parcelID, clientID),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate ensures the Compartment was created through a constructor.
func (c *Compartment) Validate() error {
	if c == nil {
		return ErrCompartmentIsNotConstructed
	}
	return c.guard.Validate(ErrCompartmentIsNotConstructed)
}

// Identify assigns the database identity.
func (c *Compartment) Identify(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if !c.id.IsZero() && c.id != id {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("compartment already identified as %d", c.id))
	}
	c.id = id
	return nil
}

func (c *Compartment) ID() kernel.ID        { return c.id }
func (c *Compartment) SiteID() kernel.ID    { return c.siteID }
func (c *Compartment) Size() kernel.Size    { return c.size }
func (c *Compartment) Status() Status       { return c.status }
func (c *Compartment) IsAvailable() bool    { return c.status == Available }
func (c *Compartment) ParcelID() *kernel.ID { return c.parcelID }
func (c *Compartment) ClientID() *kernel.ID { return c.clientID }

// Occupy assigns a package and its recipient to the compartment.
//
// Returns ErrCompartmentIsNotAvailable if the compartment is already Occupied.
func (c *Compartment) Occupy(parcelID, clientID kernel.ID) error {
	if err := errors.Join(parcelID.Validate(), clientID.Validate()); err != nil {
		return err
	}

	newStatus, err := c.status.Occupy()
	if err != nil {
		return err
	}

	c.status = newStatus
	c.parcelID = &parcelID
	c.clientID = &clientID
	return nil
}

// Release empties the compartment once parcelID has been collected.
//
// Returns ErrCompartmentIsNotOccupied for an Available compartment and
// ErrParcelMismatch when the compartment holds another package.
func (c *Compartment) Release(parcelID kernel.ID) error {
	newStatus, err := c.status.Release()
	if err != nil {
		return err
	}
	if c.parcelID == nil || *c.parcelID != parcelID {
		return fmt.Errorf("%w: expected %s", ErrParcelMismatch, parcelID)
	}

	c.status = newStatus
	c.parcelID = nil
	c.clientID = nil
	return nil
}

func (c *Compartment) setSiteID(siteID kernel.ID) error {
	if err := siteID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("site id", err)
	}
	c.siteID = siteID
	return nil
}

func (c *Compartment) setSize(size kernel.Size) error {
	if err := size.Validate(); err != nil {
		return err
	}
	c.size = size
	return nil
}

func (c *Compartment) setOccupancy(status Status, parcelID, clientID *kernel.ID) error {
	if err := status.Validate(); err != nil {
		return err
	}

	occupied := status == Occupied
	if occupied != (parcelID != nil) || occupied != (clientID != nil) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s compartment must have package and client set iff occupied", status),
		)
	}
	if occupied {
		if err := errors.Join(parcelID.Validate(), clientID.Validate()); err != nil {
			return err
		}
		p, cl := *parcelID, *clientID
		c.parcelID, c.clientID = &p, &cl
	}

	c.status = status
	return nil
}
