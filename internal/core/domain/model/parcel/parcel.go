package parcel

import (
	"errors"
	"fmt"
	"time"

	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/pkg/errs"
	"parcellocker/internal/pkg/guard"
)

var (
	// ErrAlreadyReceived is returned when a package that was already collected is
	// received again.
	ErrAlreadyReceived = errors.New("package already received")

	// ErrCreatedAtIsRequired is returned when a package has no creation time.
	ErrCreatedAtIsRequired = errs.NewValueIsRequiredError("created at")

	// ErrParcelIsNotConstructed is returned when using an improperly initialized Parcel.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel or RestoreParcel constructor")
)

// Parcel is a package travelling between two clients through one compartment.
// The type is called Parcel because package is a Go keyword.
//
// A Parcel is created InLocker, pinned to the compartment it was allocated to,
// and moves to Received exactly once. deliveredAt is nil until then.
type Parcel struct {
	id            kernel.ID
	senderID      kernel.ID
	receiverID    kernel.ID
	siteID        kernel.ID
	compartmentID kernel.ID
	size          kernel.Size
	status        Status
	createdAt     time.Time
	deliveredAt   *time.Time
	guard         guard.ConstructorGuard
}

// NewParcel creates an InLocker package allocated to compartmentID at siteID.
//
// Parameters:
//   - senderID, receiverID: the clients exchanging the package
//   - siteID, compartmentID: where the package was allocated
//   - size: must match the compartment size
//   - createdAt: allocation time, stored in UTC
//
// Example:
//
//	p, err := parcel.NewParcel(sender.ID(), receiver.ID(), c.SiteID(), c.ID(), c.Size(), clk.Now())
func NewParcel(
	senderID, receiverID, siteID, compartmentID kernel.ID,
	size kernel.Size,
	createdAt time.Time,
) (*Parcel, error) {
	p := &Parcel{
		status: InLocker,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setParties(senderID, receiverID),
		p.setPlacement(siteID, compartmentID),
		p.setSize(size),
		p.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreParcel rebuilds a persisted package. deliveredAt must be set iff the
// status is Received.
func RestoreParcel(
	id, senderID, receiverID, siteID, compartmentID kernel.ID,
	size kernel.Size,
	status Status,
	createdAt time.Time,
	deliveredAt *time.Time,
) (*Parcel, error) {
	p := &Parcel{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.Identify(id),
		p.setParties(senderID, receiverID),
		p.setPlacement(siteID, compartmentID),
		p.setSize(size),
		p.setCreatedAt(createdAt),
		p.setDelivery(status, deliveredAt),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Parcel was created through a constructor.
func (p *Parcel) Validate() error {
	if p == nil {
		return ErrParcelIsNotConstructed
	}
	return p.guard.Validate(ErrParcelIsNotConstructed)
}

// Identify assigns the database identity.
func (p *Parcel) Identify(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if !p.id.IsZero() && p.id != id {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("package already identified as %d", p.id))
	}
	p.id = id
	return nil
}

// ID returns the package identity, zero until persisted.
func (p *Parcel) ID() kernel.ID {
	return p.id
}

func (p *Parcel) SenderID() kernel.ID {
	return p.senderID
}

func (p *Parcel) ReceiverID() kernel.ID {
	return p.receiverID
}

func (p *Parcel) SiteID() kernel.ID {
	return p.siteID
}

func (p *Parcel) CompartmentID() kernel.ID {
	return p.compartmentID
}

func (p *Parcel) Size() kernel.Size {
	return p.size
}

func (p *Parcel) Status() Status {
	return p.status
}

func (p *Parcel) CreatedAt() time.Time {
	return p.createdAt
}

// DeliveredAt returns the collection time, or nil while the package is InLocker.
func (p *Parcel) DeliveredAt() *time.Time {
	if p.deliveredAt == nil {
		return nil
	}
	t := *p.deliveredAt
	return &t
}

// Receive marks the package as collected at now.
//
// A clock reading earlier than createdAt is clamped to createdAt so that
// deliveredAt never precedes createdAt.
//
// Returns ErrAlreadyReceived if the package was collected before.
func (p *Parcel) Receive(now time.Time) error {
	newStatus, err := p.status.Receive()
	if err != nil {
		return err
	}

	delivered := now.UTC()
	if delivered.Before(p.createdAt) {
		delivered = p.createdAt
	}

	p.status = newStatus
	p.deliveredAt = &delivered
	return nil
}

func (p *Parcel) setParties(senderID, receiverID kernel.ID) error {
	var err error
	if e := senderID.Validate(); e != nil {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause("sender id", e))
	}
	if e := receiverID.Validate(); e != nil {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause("receiver id", e))
	}
	if err != nil {
		return err
	}
	p.senderID = senderID
	p.receiverID = receiverID
	return nil
}

func (p *Parcel) setPlacement(siteID, compartmentID kernel.ID) error {
	var err error
	if e := siteID.Validate(); e != nil {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause("site id", e))
	}
	if e := compartmentID.Validate(); e != nil {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause("compartment id", e))
	}
	if err != nil {
		return err
	}
	p.siteID = siteID
	p.compartmentID = compartmentID
	return nil
}

func (p *Parcel) setSize(size kernel.Size) error {
	if err := size.Validate(); err != nil {
		return err
	}
	p.size = size
	return nil
}

func (p *Parcel) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return ErrCreatedAtIsRequired
	}
	p.createdAt = createdAt.UTC()
	return nil
}

func (p *Parcel) setDelivery(status Status, deliveredAt *time.Time) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if (status == Received) != (deliveredAt != nil) {
		return errs.NewValueIsInvalidErrorWithCause(
			"delivered at",
			fmt.Errorf("%s package must have delivered at set iff received", status),
		)
	}
	p.status = status
	if deliveredAt != nil {
		t := deliveredAt.UTC()
		p.deliveredAt = &t
	}
	return nil
}
