package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/kernel"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/location"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/parcel"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/ports"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/pkg/besteffort"
)

// UpdateParcelStatusCommandHandler walks parcels through the status state
// machine. The persistence layer re-checks the expected status in the write
// itself, so two concurrent callers can never both apply the same transition.
// Order projection, audit and other side calls never roll back the status
// write.
type UpdateParcelStatusCommandHandler struct {
	uowFactory  TrackingUoWFactory
	orderStatus ports.OrderStatusPort
	audit       ports.AuditSink
	logger      *slog.Logger
}

// NewUpdateParcelStatusCommandHandler creates a handler for status updates.
func NewUpdateParcelStatusCommandHandler(
	uowFactory TrackingUoWFactory,
	orderStatus ports.OrderStatusPort,
	audit ports.AuditSink,
	logger *slog.Logger,
) UpdateParcelStatusCommandHandler {
	return UpdateParcelStatusCommandHandler{
		uowFactory:  uowFactory,
		orderStatus: orderStatus,
		audit:       audit,
		logger:      logger,
	}
}

// Handle validates and applies the transition, appends the STATUS_CHANGED
// event with the auto-generated masked description, and forwards coordinates
// into the courier's location trail when present.
func (h UpdateParcelStatusCommandHandler) Handle(ctx context.Context, command UpdateParcelStatusCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := time.Now()

	aggregate, err := uow.ParcelRepository().Get(ctx, command.ParcelID())
	if err != nil {
		return err
	}

	previous := aggregate.Status()
	if err = aggregate.ChangeStatus(command.Target(), now); err != nil {
		return err
	}

	if err = uow.ParcelRepository().UpdateWithStatusGuard(ctx, aggregate, previous); err != nil {
		return err
	}

	courierName := h.courierName(ctx, uow, aggregate.CourierID())

	description := command.Description()
	if description == "" {
		description = parcel.StatusDescription(command.Target(), courierName)
	}

	if command.Point() != nil && aggregate.CourierID() != nil {
		ping, locErr := location.NewCourierLocation(
			kernel.NewUUID(), *aggregate.CourierID(), refUUID(aggregate.ID()), *command.Point(), now)
		if locErr != nil {
			return locErr
		}
		if locErr = uow.CourierLocationRepository().Add(ctx, ping); locErr != nil {
			return locErr
		}
	}

	metadata := parcel.Metadata{
		FromStatus: previous.String(),
		ToStatus:   command.Target().String(),
	}
	if command.ActorID() != nil {
		metadata.Actor = command.ActorID().String()
	}

	event, err := parcel.NewEvent(
		aggregate.ID(),
		parcel.EventTypeStatusChanged,
		description,
		command.Location(),
		command.Point(),
		aggregate.CourierID(),
		metadata,
		now,
	)
	if err != nil {
		return err
	}

	if err = uow.EventRepository().Add(ctx, event); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.syncOrderStatus(ctx, aggregate)
	besteffort.Run(ctx, h.logger, "audit record", func(ctx context.Context) error {
		return h.audit.Record(ctx, ports.AuditEntry{
			ActionType:  "UPDATE",
			EntityType:  "parcel",
			EntityID:    aggregate.ID(),
			Description: description,
			Metadata: map[string]string{
				"from_status": previous.String(),
				"to_status":   command.Target().String(),
			},
		})
	})

	return nil
}

func (h UpdateParcelStatusCommandHandler) courierName(
	ctx context.Context,
	uow TrackingUoW,
	courierID *kernel.UUID,
) string {
	if courierID == nil {
		return ""
	}

	assignee, err := uow.CourierRepository().Get(ctx, *courierID)
	if err != nil {
		h.logger.Warn("courier lookup for event description failed", "error", err)
		return ""
	}
	return assignee.Name()
}

func (h UpdateParcelStatusCommandHandler) syncOrderStatus(ctx context.Context, aggregate *parcel.Parcel) {
	orderStatus, err := parcel.OrderStatusFor(aggregate.Status())
	if err != nil {
		h.logger.Warn("no order projection for status", "status", aggregate.Status().String())
		return
	}

	besteffort.Run(ctx, h.logger, "order status sync", func(ctx context.Context) error {
		return h.orderStatus.UpdateOrderStatus(ctx, aggregate.OrderID(), orderStatus)
	})
}

func refUUID(id kernel.UUID) *kernel.UUID {
	return &id
}
