package commands

import (
	"errors"

	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/core/domain/services"
	"parcellocker/internal/pkg/errs"
	"parcellocker/internal/pkg/guard"
)

var ErrSendParcelCommandIsNotConstructed = errors.New(
	"SendParcelCommand must be created via NewSendParcelCommand constructor",
)

// SendParcelCommand asks for a compartment near the sender to drop off a package
// addressed to the receiver.
//
// Example:
//
//	cmd, err := NewSendParcelCommand(senderID, receiverID, 10, "S")
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, cmd)
type SendParcelCommand struct { //nolint:recvcheck //using for validation
	senderID      kernel.ID
	receiverID    kernel.ID
	maxDistanceKm float64
	size          kernel.Size

	guard guard.ConstructorGuard
}

// NewSendParcelCommand validates the raw request values. The size code must be
// one of S, M or L; the radius must be a finite number >= 0.
func NewSendParcelCommand(senderID, receiverID int64, maxDistanceKm float64, size string) (SendParcelCommand, error) {
	command := SendParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setParties(senderID, receiverID),
		command.setMaxDistance(maxDistanceKm),
		command.setSize(size),
	); err != nil {
		return SendParcelCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SendParcelCommand) Validate() error {
	return c.guard.Validate(ErrSendParcelCommandIsNotConstructed)
}

func (c SendParcelCommand) SenderID() kernel.ID {
	return c.senderID
}

func (c SendParcelCommand) ReceiverID() kernel.ID {
	return c.receiverID
}

func (c SendParcelCommand) MaxDistanceKm() float64 {
	return c.maxDistanceKm
}

func (c SendParcelCommand) Size() kernel.Size {
	return c.size
}

func (c *SendParcelCommand) setParties(senderID, receiverID int64) error {
	sender, senderErr := kernel.NewID(senderID)
	if senderErr != nil {
		senderErr = errs.NewValueIsInvalidErrorWithCause("sender id", senderErr)
	}
	receiver, receiverErr := kernel.NewID(receiverID)
	if receiverErr != nil {
		receiverErr = errs.NewValueIsInvalidErrorWithCause("receiver id", receiverErr)
	}
	if err := errors.Join(senderErr, receiverErr); err != nil {
		return err
	}

	c.senderID = sender
	c.receiverID = receiver
	return nil
}

func (c *SendParcelCommand) setMaxDistance(maxDistanceKm float64) error {
	if err := services.ValidateRadius(maxDistanceKm); err != nil {
		return err
	}
	c.maxDistanceKm = maxDistanceKm
	return nil
}

func (c *SendParcelCommand) setSize(code string) error {
	size, err := kernel.ParseSize(code)
	if err != nil {
		return err
	}
	c.size = size
	return nil
}
