package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/kernel"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/parcel"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/token"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/ports"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/pkg/besteffort"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/pkg/errs"
)

// GenerateQRTokenCommandHandler issues delivery QR tokens. A parcel must be
// out for delivery; a still-active token short-circuits the mint, and when
// two callers race past that check, the storage's unused-token uniqueness
// lets exactly one insert through while the loser re-reads the winner.
// Notification dispatch never fails the issuance.
type GenerateQRTokenCommandHandler struct {
	uowFactory TokenUoWFactory
	notifier   ports.Notifier
	audit      ports.AuditSink
	logger     *slog.Logger
}

// NewGenerateQRTokenCommandHandler creates a handler for token issuance.
func NewGenerateQRTokenCommandHandler(
	uowFactory TokenUoWFactory,
	notifier ports.Notifier,
	audit ports.AuditSink,
	logger *slog.Logger,
) GenerateQRTokenCommandHandler {
	return GenerateQRTokenCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		audit:      audit,
		logger:     logger,
	}
}

// Handle returns the parcel's active token, minting one when none exists.
func (h GenerateQRTokenCommandHandler) Handle(
	ctx context.Context,
	command GenerateQRTokenCommand,
) (*token.DeliveryToken, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := time.Now()

	aggregate, err := uow.ParcelRepository().Get(ctx, command.ParcelID())
	if err != nil {
		return nil, err
	}
	if aggregate.Status() != parcel.StatusOutForDelivery {
		return nil, errs.NewInvalidStateError("parcel is not out for delivery")
	}

	existing, err := uow.DeliveryTokenRepository().GetActiveByParcel(ctx, command.ParcelID(), now)
	if err == nil {
		return existing, uow.Commit(ctx)
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	// A token that expired unredeemed still occupies the parcel's unused slot.
	if err = uow.DeliveryTokenRepository().PurgeExpiredByParcel(ctx, command.ParcelID(), now); err != nil {
		return nil, err
	}

	minted, err := token.NewDeliveryToken(kernel.NewUUID(), command.ParcelID(), now)
	if err != nil {
		return nil, err
	}

	if err = uow.DeliveryTokenRepository().Add(ctx, minted); err != nil {
		if errors.Is(err, ports.ErrActiveTokenExists) {
			return h.readWinner(ctx, command.ParcelID(), now)
		}
		return nil, err
	}

	expiresAt := minted.ExpiresAt()
	event, err := parcel.NewEvent(
		aggregate.ID(),
		parcel.EventTypeQRGenerated,
		"Teslimat doğrulama kodu oluşturuldu",
		"",
		nil,
		aggregate.CourierID(),
		parcel.Metadata{TokenExpiresAt: &expiresAt},
		now,
	)
	if err != nil {
		return nil, err
	}

	if err = uow.EventRepository().Add(ctx, event); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifyRecipient(ctx, aggregate, minted)
	besteffort.Run(ctx, h.logger, "audit record", func(ctx context.Context) error {
		return h.audit.Record(ctx, ports.AuditEntry{
			ActionType:  "GENERATE_TOKEN",
			EntityType:  "parcel",
			EntityID:    aggregate.ID(),
			Description: "delivery token issued",
			Metadata:    map[string]string{"expires_at": minted.ExpiresAt().Format(time.RFC3339)},
		})
	})

	return minted, nil
}

// readWinner returns the token a concurrent caller minted first. The losing
// transaction is aborted by the unique index, so the re-read needs a fresh
// one.
func (h GenerateQRTokenCommandHandler) readWinner(
	ctx context.Context,
	parcelID kernel.UUID,
	now time.Time,
) (*token.DeliveryToken, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	winner, err := uow.DeliveryTokenRepository().GetActiveByParcel(ctx, parcelID, now)
	if err != nil {
		return nil, err
	}

	return winner, uow.Commit(ctx)
}

// notifyRecipient dispatches the token to the customer and, when that
// succeeds, stamps the notification time in a fresh transaction.
func (h GenerateQRTokenCommandHandler) notifyRecipient(
	ctx context.Context,
	aggregate *parcel.Parcel,
	minted *token.DeliveryToken,
) {
	besteffort.Run(ctx, h.logger, "token notification", func(ctx context.Context) error {
		err := h.notifier.NotifyTokenIssued(ctx, ports.TokenIssuedNotification{
			TrackingNumber: aggregate.TrackingNumber(),
			RecipientName:  aggregate.Address().RecipientName(),
			TokenCode:      minted.Code(),
			ExpiresAt:      minted.ExpiresAt(),
		})
		if err != nil {
			return err
		}

		uow := h.uowFactory.Create()
		if err = uow.Begin(ctx); err != nil {
			return err
		}
		defer func() {
			_ = uow.Rollback(ctx)
		}()

		if err = minted.MarkNotified(time.Now()); err != nil {
			return err
		}
		if err = uow.DeliveryTokenRepository().Update(ctx, minted); err != nil {
			return err
		}
		return uow.Commit(ctx)
	})
}
