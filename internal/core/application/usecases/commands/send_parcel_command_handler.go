package commands

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"parcellocker/internal/core/domain/model/compartment"
	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/core/domain/model/parcel"
	"parcellocker/internal/core/domain/services"
	"parcellocker/internal/core/ports"
	"parcellocker/internal/pkg/clock"
)

var (
	// ErrNoLockerInRange is returned when no parcel-locker site lies within the
	// requested radius of the sender.
	ErrNoLockerInRange = errors.New("no parcel locker in range")

	// ErrNoAvailableSlot is returned when sites are in range but none has an
	// Available compartment of the requested size.
	ErrNoAvailableSlot = errors.New("no available compartment")
)

// SendParcelResult describes the package created by a successful send.
type SendParcelResult struct {
	ParcelID      kernel.ID
	SiteID        kernel.ID
	CompartmentID kernel.ID
	Status        parcel.Status
	CreatedAt     time.Time
}

// SendParcelCommandHandler allocates a compartment for an outbound package.
//
// Sites are tried nearest first and compartments in ascending id order. Each
// claim runs in its own transaction: the package row is inserted and the
// compartment is switched to Occupied with a conditional update. If another
// sender claims the compartment first, that transaction is rolled back (the
// package row disappears with it) and the next candidate is tried.
//
// Example:
//
//	result, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoLockerInRange):
//	    // nothing within the radius
//	case errors.Is(err, ErrNoAvailableSlot):
//	    // sites in range are full for this size
//	case err != nil:
//	    return err
//	}
type SendParcelCommandHandler struct {
	uowFactory AllocationUoWFactory
	ranker     services.SiteRanker
	clock      clock.Clock
	recorder   OutcomeRecorder
	logger     *slog.Logger
}

// NewSendParcelCommandHandler creates the handler. A nil recorder or logger
// disables metrics or logging respectively.
func NewSendParcelCommandHandler(
	uowFactory AllocationUoWFactory,
	clk clock.Clock,
	recorder OutcomeRecorder,
	logger *slog.Logger,
) SendParcelCommandHandler {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if clk == nil {
		clk = clock.Real{}
	}
	return SendParcelCommandHandler{
		uowFactory: uowFactory,
		ranker:     services.NewSiteRanker(),
		clock:      clk,
		recorder:   recorder,
		logger:     logger.With("component", "send-parcel"),
	}
}

// Handle allocates a compartment and creates the package.
func (h SendParcelCommandHandler) Handle(ctx context.Context, command SendParcelCommand) (SendParcelResult, error) {
	if err := command.Validate(); err != nil {
		return SendParcelResult{}, err
	}

	result, err := h.allocate(ctx, command)

	switch {
	case err == nil:
		h.recorder.RecordSend(OutcomeAllocated)
		h.logger.InfoContext(ctx, "package allocated",
			"package_id", result.ParcelID,
			"site_id", result.SiteID,
			"compartment_id", result.CompartmentID,
			"size", command.Size())
	case errors.Is(err, ErrNoLockerInRange):
		h.recorder.RecordSend(OutcomeNoLockerInRange)
		h.logger.InfoContext(ctx, "no parcel locker in range",
			"sender_id", command.SenderID(),
			"max_distance_km", command.MaxDistanceKm())
	case errors.Is(err, ErrNoAvailableSlot):
		h.recorder.RecordSend(OutcomeNoAvailableSlot)
		h.logger.InfoContext(ctx, "no available compartment",
			"sender_id", command.SenderID(),
			"max_distance_km", command.MaxDistanceKm(),
			"size", command.Size())
	default:
		h.recorder.RecordSend(OutcomeFailed)
	}

	return result, err
}

func (h SendParcelCommandHandler) allocate(ctx context.Context, command SendParcelCommand) (SendParcelResult, error) {
	candidates, err := h.rankSites(ctx, command)
	if err != nil {
		return SendParcelResult{}, err
	}
	if len(candidates) == 0 {
		return SendParcelResult{}, ErrNoLockerInRange
	}

	for _, candidate := range candidates {
		ids, err := h.findAvailable(ctx, candidate.Site.ID(), command.Size())
		if err != nil {
			return SendParcelResult{}, err
		}

		for _, compartmentID := range ids {
			result, err := h.claim(ctx, command, compartmentID)
			if errors.Is(err, compartment.ErrCompartmentIsNotAvailable) {
				h.logger.DebugContext(ctx, "compartment claimed concurrently, trying next",
					"site_id", candidate.Site.ID(),
					"compartment_id", compartmentID)
				continue
			}
			if err != nil {
				return SendParcelResult{}, err
			}
			return result, nil
		}
	}

	return SendParcelResult{}, ErrNoAvailableSlot
}

// rankSites resolves both clients and ranks the sites around the sender.
func (h SendParcelCommandHandler) rankSites(
	ctx context.Context,
	command SendParcelCommand,
) ([]services.RankedSite, error) {
	uow := h.uowFactory.Create()
	return ports.InTransaction(ctx, uow, func(ctx context.Context) ([]services.RankedSite, error) {
		clients := uow.ClientRepository()

		sender, err := clients.Get(ctx, command.SenderID())
		if err != nil {
			return nil, err
		}
		if _, err = clients.Get(ctx, command.ReceiverID()); err != nil {
			return nil, err
		}

		sites, err := uow.SiteRepository().GetAll(ctx)
		if err != nil {
			return nil, err
		}

		return h.ranker.Rank(sender.Location(), sites, command.MaxDistanceKm())
	})
}

func (h SendParcelCommandHandler) findAvailable(
	ctx context.Context,
	siteID kernel.ID,
	size kernel.Size,
) ([]kernel.ID, error) {
	uow := h.uowFactory.Create()
	return ports.InTransaction(ctx, uow, func(ctx context.Context) ([]kernel.ID, error) {
		return uow.CompartmentRepository().FindAvailable(ctx, siteID, size)
	})
}

// claim inserts the package and occupies the compartment in one transaction.
func (h SendParcelCommandHandler) claim(
	ctx context.Context,
	command SendParcelCommand,
	compartmentID kernel.ID,
) (SendParcelResult, error) {
	uow := h.uowFactory.Create()
	return ports.InTransaction(ctx, uow, func(ctx context.Context) (SendParcelResult, error) {
		compartments := uow.CompartmentRepository()
		parcels := uow.ParcelRepository()

		c, err := compartments.Get(ctx, compartmentID)
		if err != nil {
			return SendParcelResult{}, err
		}
		if !c.IsAvailable() {
			return SendParcelResult{}, compartment.ErrCompartmentIsNotAvailable
		}

		p, err := parcel.NewParcel(
			command.SenderID(),
			command.ReceiverID(),
			c.SiteID(),
			c.ID(),
			c.Size(),
			h.clock.Now(),
		)
		if err != nil {
			return SendParcelResult{}, err
		}

		if err = parcels.Add(ctx, p); err != nil {
			return SendParcelResult{}, err
		}

		if err = c.Occupy(p.ID(), command.ReceiverID()); err != nil {
			return SendParcelResult{}, err
		}

		if err = compartments.Claim(ctx, c); err != nil {
			return SendParcelResult{}, err
		}

		return SendParcelResult{
			ParcelID:      p.ID(),
			SiteID:        p.SiteID(),
			CompartmentID: p.CompartmentID(),
			Status:        p.Status(),
			CreatedAt:     p.CreatedAt(),
		}, nil
	})
}
