package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/parcel"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/services"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/ports"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/pkg/besteffort"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/pkg/errs"
)

// AssignCourierCommandHandler assigns parcels to couriers and keeps the
// courier's shared route current. Route recomputation is best-effort per
// parcel: one parcel failing to take the new route is logged and skipped,
// never aborting the assignment or the rest of the batch.
type AssignCourierCommandHandler struct {
	uowFactory  AssignUoWFactory
	planner     services.RoutePlanner
	orderStatus ports.OrderStatusPort
	audit       ports.AuditSink
	logger      *slog.Logger
}

// NewAssignCourierCommandHandler creates a handler for courier assignment.
func NewAssignCourierCommandHandler(
	uowFactory AssignUoWFactory,
	planner services.RoutePlanner,
	orderStatus ports.OrderStatusPort,
	audit ports.AuditSink,
	logger *slog.Logger,
) AssignCourierCommandHandler {
	return AssignCourierCommandHandler{
		uowFactory:  uowFactory,
		planner:     planner,
		orderStatus: orderStatus,
		audit:       audit,
		logger:      logger,
	}
}

// Handle verifies the courier exists and is active, applies the assignment
// transition, emits COURIER_ASSIGNED, then recomputes one shared route across
// all of the courier's active parcels and writes it onto each with a
// ROUTE_OPTIMIZED event.
func (h AssignCourierCommandHandler) Handle(ctx context.Context, command AssignCourierCommand) error {
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

	assignee, err := uow.CourierRepository().Get(ctx, command.CourierID())
	if err != nil {
		return err
	}
	if !assignee.IsActive() {
		return errs.NewInvalidStateError("courier is not active")
	}

	aggregate, err := uow.ParcelRepository().Get(ctx, command.ParcelID())
	if err != nil {
		return err
	}

	previous := aggregate.Status()
	if err = aggregate.AssignCourier(command.CourierID(), now); err != nil {
		return err
	}

	if err = uow.ParcelRepository().UpdateWithStatusGuard(ctx, aggregate, previous); err != nil {
		return err
	}

	description := parcel.StatusDescription(parcel.StatusAssigned, assignee.Name())
	event, err := parcel.NewEvent(
		aggregate.ID(),
		parcel.EventTypeCourierAssigned,
		description,
		"",
		nil,
		aggregate.CourierID(),
		parcel.Metadata{
			FromStatus: previous.String(),
			ToStatus:   parcel.StatusAssigned.String(),
		},
		now,
	)
	if err != nil {
		return err
	}

	if err = uow.EventRepository().Add(ctx, event); err != nil {
		return err
	}

	if err = h.recomputeSharedRoute(ctx, uow, command, now); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	besteffort.Run(ctx, h.logger, "order status sync", func(ctx context.Context) error {
		return h.orderStatus.UpdateOrderStatus(ctx, aggregate.OrderID(), parcel.OrderStatusConfirmed)
	})
	besteffort.Run(ctx, h.logger, "audit record", func(ctx context.Context) error {
		return h.audit.Record(ctx, ports.AuditEntry{
			ActionType:  "ASSIGN",
			EntityType:  "parcel",
			EntityID:    aggregate.ID(),
			Description: description,
			Metadata:    map[string]string{"courier_id": command.CourierID().String()},
		})
	})

	return nil
}

// recomputeSharedRoute plans one route over the destination cities of every
// active parcel the courier carries and writes an identical copy onto each,
// progress reset to the origin.
func (h AssignCourierCommandHandler) recomputeSharedRoute(
	ctx context.Context,
	uow AssignUoW,
	command AssignCourierCommand,
	now time.Time,
) error {
	active, err := uow.ParcelRepository().GetActiveByCourier(ctx, command.CourierID())
	if err != nil {
		return err
	}
	if len(active) == 0 {
		return nil
	}

	destinations := make([]string, 0, len(active))
	for _, p := range active {
		destinations = append(destinations, p.Address().City())
	}

	route, err := h.planner.GenerateOptimalRoute(destinations, now)
	if err != nil {
		return err
	}

	for _, p := range active {
		if err := h.applyRoute(ctx, uow, p, route, now); err != nil {
			h.logger.Warn("route update skipped for parcel",
				"parcel_id", p.ID().String(), "error", err)
		}
	}

	return nil
}

func (h AssignCourierCommandHandler) applyRoute(
	ctx context.Context,
	uow AssignUoW,
	p *parcel.Parcel,
	route parcel.Route,
	now time.Time,
) error {
	previous, err := p.SetRoute(route)
	if err != nil {
		return err
	}

	if err = uow.ParcelRepository().Update(ctx, p); err != nil {
		return err
	}

	metadata := parcel.Metadata{NewRoute: route.Cities()}
	if previous != nil {
		metadata.OldRoute = previous.Cities()
	}

	event, err := parcel.NewEvent(
		p.ID(),
		parcel.EventTypeRouteOptimized,
		"Teslimat rotası yeniden hesaplandı",
		"",
		nil,
		p.CourierID(),
		metadata,
		now,
	)
	if err != nil {
		return err
	}

	return uow.EventRepository().Add(ctx, event)
}
