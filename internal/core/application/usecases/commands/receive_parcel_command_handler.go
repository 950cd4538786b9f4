package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"parcellocker/internal/core/domain/model/compartment"
	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/core/domain/model/parcel"
	"parcellocker/internal/core/ports"
	"parcellocker/internal/pkg/clock"
	"parcellocker/internal/pkg/errs"
)

var (
	// ErrPackageNotFound is returned when the package to receive does not exist.
	ErrPackageNotFound = fmt.Errorf("package: %w", errs.ErrObjectNotFound)

	// ErrCompartmentNotFound is returned when a package references a compartment
	// that does not exist. The error also matches errs.ErrDataIntegrityFault.
	ErrCompartmentNotFound = fmt.Errorf("compartment: %w", errs.ErrObjectNotFound)
)

// ReceiveParcelResult describes a collected package.
type ReceiveParcelResult struct {
	ParcelID    kernel.ID
	Status      parcel.Status
	DeliveredAt time.Time
}

// ReceiveParcelCommandHandler marks a package as Received and frees its compartment.
//
// The package row is locked for the whole transaction, so two concurrent receives
// of the same package are serialized and the second sees parcel.ErrAlreadyReceived.
//
// Errors:
//   - ErrPackageNotFound (errs.ErrObjectNotFound) for an unknown package
//   - parcel.ErrAlreadyReceived for a package collected before
//   - errs.ErrDataIntegrityFault when the package and its compartment disagree;
//     these are logged at ERROR
type ReceiveParcelCommandHandler struct {
	uowFactory AllocationUoWFactory
	clock      clock.Clock
	recorder   OutcomeRecorder
	logger     *slog.Logger
}

func NewReceiveParcelCommandHandler(
	uowFactory AllocationUoWFactory,
	clk clock.Clock,
	recorder OutcomeRecorder,
	logger *slog.Logger,
) ReceiveParcelCommandHandler {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if clk == nil {
		clk = clock.Real{}
	}
	return ReceiveParcelCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
		recorder:   recorder,
		logger:     logger.With("component", "receive-parcel"),
	}
}

// Handle receives the package in a single transaction.
func (h ReceiveParcelCommandHandler) Handle(
	ctx context.Context,
	command ReceiveParcelCommand,
) (ReceiveParcelResult, error) {
	if err := command.Validate(); err != nil {
		return ReceiveParcelResult{}, err
	}

	uow := h.uowFactory.Create()
	result, err := ports.InTransaction(ctx, uow, func(ctx context.Context) (ReceiveParcelResult, error) {
		return h.receive(ctx, uow, command.ParcelID())
	})

	switch {
	case err == nil:
		h.recorder.RecordReceive(OutcomeReceived)
		h.logger.InfoContext(ctx, "package received", "package_id", result.ParcelID)
	case errors.Is(err, errs.ErrDataIntegrityFault):
		h.recorder.RecordReceive(OutcomeIntegrityFault)
		h.logger.ErrorContext(ctx, "data integrity fault while receiving package",
			"package_id", command.ParcelID(),
			"error", err)
	case errors.Is(err, parcel.ErrAlreadyReceived):
		h.recorder.RecordReceive(OutcomeAlreadyReceived)
	case errors.Is(err, errs.ErrObjectNotFound):
		h.recorder.RecordReceive(OutcomeNotFound)
	default:
		h.recorder.RecordReceive(OutcomeFailed)
	}

	return result, err
}

func (h ReceiveParcelCommandHandler) receive(
	ctx context.Context,
	uow AllocationUoW,
	parcelID kernel.ID,
) (ReceiveParcelResult, error) {
	parcels := uow.ParcelRepository()
	compartments := uow.CompartmentRepository()

	p, err := parcels.GetForUpdate(ctx, parcelID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ReceiveParcelResult{}, fmt.Errorf("%w: id %s", ErrPackageNotFound, parcelID)
	}
	if err != nil {
		return ReceiveParcelResult{}, err
	}

	if err = p.Receive(h.clock.Now()); err != nil {
		return ReceiveParcelResult{}, err
	}

	c, err := compartments.Get(ctx, p.CompartmentID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ReceiveParcelResult{}, fmt.Errorf("%w: %w", ErrCompartmentNotFound,
			errs.NewDataIntegrityFaultErrorWithCause(
				"package", p.ID(),
				fmt.Sprintf("references missing compartment %s", p.CompartmentID()),
				err,
			))
	}
	if err != nil {
		return ReceiveParcelResult{}, err
	}

	if err = c.Release(p.ID()); err != nil {
		if errors.Is(err, compartment.ErrCompartmentIsNotOccupied) || errors.Is(err, compartment.ErrParcelMismatch) {
			return ReceiveParcelResult{}, errs.NewDataIntegrityFaultErrorWithCause(
				"compartment", c.ID(),
				fmt.Sprintf("does not hold in-locker package %s", p.ID()),
				err,
			)
		}
		return ReceiveParcelResult{}, err
	}

	if err = parcels.Update(ctx, p); err != nil {
		return ReceiveParcelResult{}, err
	}

	if err = compartments.Release(ctx, c, p.ID()); err != nil {
		return ReceiveParcelResult{}, err
	}

	return ReceiveParcelResult{
		ParcelID:    p.ID(),
		Status:      p.Status(),
		DeliveredAt: *p.DeliveredAt(),
	}, nil
}
