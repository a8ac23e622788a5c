package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/parcel"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/ports"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/pkg/besteffort"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/pkg/errs"
)

// RedeemQRTokenCommandHandler closes deliveries. The token checks run in
// order: unknown, already used, expired, courier mismatch. Marking the token
// used is a single conditional write, so two concurrent scans can never both
// succeed; the losing caller gets an InvalidStateError exactly as if the
// token had been used before the request.
type RedeemQRTokenCommandHandler struct {
	uowFactory  TokenUoWFactory
	orderStatus ports.OrderStatusPort
	notifier    ports.Notifier
	audit       ports.AuditSink
	logger      *slog.Logger
}

// NewRedeemQRTokenCommandHandler creates a handler for token redemption.
func NewRedeemQRTokenCommandHandler(
	uowFactory TokenUoWFactory,
	orderStatus ports.OrderStatusPort,
	notifier ports.Notifier,
	audit ports.AuditSink,
	logger *slog.Logger,
) RedeemQRTokenCommandHandler {
	return RedeemQRTokenCommandHandler{
		uowFactory:  uowFactory,
		orderStatus: orderStatus,
		notifier:    notifier,
		audit:       audit,
		logger:      logger,
	}
}

// Handle redeems the token, delivers the parcel and projects the order to
// its delivered state. Customer notification is best-effort.
func (h RedeemQRTokenCommandHandler) Handle(ctx context.Context, command RedeemQRTokenCommand) error {
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

	scanned, err := uow.DeliveryTokenRepository().GetByCode(ctx, command.Code())
	if err != nil {
		return err
	}

	aggregate, err := uow.ParcelRepository().Get(ctx, scanned.ParcelID())
	if err != nil {
		return err
	}

	if err = scanned.Redeem(now); err != nil {
		return err
	}
	if command.CourierID() != nil {
		assigned := aggregate.CourierID()
		if assigned == nil || !assigned.IsEqual(*command.CourierID()) {
			return errs.NewForbiddenError("token belongs to another courier's parcel")
		}
	}

	if err = uow.DeliveryTokenRepository().MarkUsed(ctx, command.Code(), now); err != nil {
		return err
	}

	previous := aggregate.Status()
	if err = aggregate.ChangeStatus(parcel.StatusDelivered, now); err != nil {
		return err
	}
	if err = uow.ParcelRepository().UpdateWithStatusGuard(ctx, aggregate, previous); err != nil {
		return err
	}

	event, err := parcel.NewEvent(
		aggregate.ID(),
		parcel.EventTypeDelivered,
		parcel.StatusDescription(parcel.StatusDelivered, ""),
		"",
		nil,
		aggregate.CourierID(),
		parcel.Metadata{
			FromStatus: previous.String(),
			ToStatus:   parcel.StatusDelivered.String(),
		},
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

	besteffort.Run(ctx, h.logger, "order status sync", func(ctx context.Context) error {
		return h.orderStatus.UpdateOrderStatus(ctx, aggregate.OrderID(), parcel.OrderStatusDelivered)
	})
	besteffort.Run(ctx, h.logger, "delivery notification", func(ctx context.Context) error {
		return h.notifier.NotifyDelivered(ctx, ports.DeliveryCompletedNotification{
			TrackingNumber: aggregate.TrackingNumber(),
			RecipientName:  aggregate.Address().RecipientName(),
			DeliveredAt:    now,
		})
	})
	besteffort.Run(ctx, h.logger, "audit record", func(ctx context.Context) error {
		return h.audit.Record(ctx, ports.AuditEntry{
			ActionType:  "REDEEM_TOKEN",
			EntityType:  "parcel",
			EntityID:    aggregate.ID(),
			Description: "delivery confirmed by QR token",
			Metadata:    map[string]string{"tracking_number": aggregate.TrackingNumber()},
		})
	})

	return nil
}
