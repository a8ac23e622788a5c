package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/parcel"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/ports"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/pkg/besteffort"
)

// trackingNumberAttempts bounds the regeneration loop on tracking number
// collisions. The number space is large enough that a second attempt is
// already rare.
const trackingNumberAttempts = 5

// ErrTrackingNumberExhausted is returned when every generated tracking number
// collided with an existing parcel.
var ErrTrackingNumberExhausted = errors.New("could not generate a unique tracking number")

// CreateParcelCommandHandler opens parcel records and seeds their event log.
// Generates the public tracking number, retrying on the rare collision, and
// projects the initial status onto the owning order best-effort.
type CreateParcelCommandHandler struct {
	uowFactory  ParcelUoWFactory
	orderStatus ports.OrderStatusPort
	audit       ports.AuditSink
	logger      *slog.Logger
}

// NewCreateParcelCommandHandler creates a handler for parcel creation.
func NewCreateParcelCommandHandler(
	uowFactory ParcelUoWFactory,
	orderStatus ports.OrderStatusPort,
	audit ports.AuditSink,
	logger *slog.Logger,
) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{
		uowFactory:  uowFactory,
		orderStatus: orderStatus,
		audit:       audit,
		logger:      logger,
	}
}

// Handle creates the parcel and returns its tracking number. A second parcel
// for the same order fails on the order's unique index.
func (h CreateParcelCommandHandler) Handle(ctx context.Context, command CreateParcelCommand) (string, error) {
	if err := command.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := time.Now()

	aggregate, err := h.addWithFreshTrackingNumber(ctx, uow.ParcelRepository(), command)
	if err != nil {
		return "", err
	}

	event, err := parcel.NewEvent(
		aggregate.ID(),
		parcel.EventTypeParcelCreated,
		parcel.StatusDescription(parcel.StatusCreated, ""),
		"",
		nil,
		nil,
		parcel.Metadata{ToStatus: parcel.StatusCreated.String()},
		now,
	)
	if err != nil {
		return "", err
	}

	if err = uow.EventRepository().Add(ctx, event); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	besteffort.Run(ctx, h.logger, "order status sync", func(ctx context.Context) error {
		return h.orderStatus.UpdateOrderStatus(ctx, aggregate.OrderID(), parcel.OrderStatusConfirmed)
	})
	besteffort.Run(ctx, h.logger, "audit record", func(ctx context.Context) error {
		return h.audit.Record(ctx, ports.AuditEntry{
			ActionType:  "CREATE",
			EntityType:  "parcel",
			EntityID:    aggregate.ID(),
			Description: "parcel created",
			Metadata:    map[string]string{"tracking_number": aggregate.TrackingNumber()},
		})
	})

	return aggregate.TrackingNumber(), nil
}

func (h CreateParcelCommandHandler) addWithFreshTrackingNumber(
	ctx context.Context,
	repo ports.ParcelRepository,
	command CreateParcelCommand,
) (*parcel.Parcel, error) {
	for attempt := 1; attempt <= trackingNumberAttempts; attempt++ {
		aggregate, err := parcel.NewParcel(
			command.ParcelID(), command.OrderID(), parcel.NewTrackingNumber(), command.Address())
		if err != nil {
			return nil, err
		}

		err = repo.Add(ctx, aggregate)
		if err == nil {
			return aggregate, nil
		}
		if !errors.Is(err, ports.ErrDuplicateTrackingNumber) {
			return nil, err
		}

		h.logger.Warn("tracking number collision, regenerating",
			"tracking_number", aggregate.TrackingNumber(), "attempt", attempt)
	}

	return nil, ErrTrackingNumberExhausted
}
