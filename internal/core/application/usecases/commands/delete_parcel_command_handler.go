package commands

import (
	"context"
	"log/slog"

	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/ports"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/pkg/besteffort"
)

// DeleteParcelCommandHandler applies the soft-delete tombstone. The domain
// rejects deleting delivered parcels and double deletes.
type DeleteParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
	audit      ports.AuditSink
	logger     *slog.Logger
}

// NewDeleteParcelCommandHandler creates a handler for parcel soft deletion.
func NewDeleteParcelCommandHandler(
	uowFactory ParcelUoWFactory,
	audit ports.AuditSink,
	logger *slog.Logger,
) DeleteParcelCommandHandler {
	return DeleteParcelCommandHandler{
		uowFactory: uowFactory,
		audit:      audit,
		logger:     logger,
	}
}

// Handle tombstones the parcel, hiding it from every read path.
func (h DeleteParcelCommandHandler) Handle(ctx context.Context, command DeleteParcelCommand) error {
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

	aggregate, err := uow.ParcelRepository().Get(ctx, command.ParcelID())
	if err != nil {
		return err
	}

	if err = aggregate.MarkDeleted(); err != nil {
		return err
	}

	if err = uow.ParcelRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	besteffort.Run(ctx, h.logger, "audit record", func(ctx context.Context) error {
		return h.audit.Record(ctx, ports.AuditEntry{
			ActionType:  "DELETE",
			EntityType:  "parcel",
			EntityID:    aggregate.ID(),
			Description: "parcel soft-deleted",
			Metadata:    map[string]string{"tracking_number": aggregate.TrackingNumber()},
		})
	})

	return nil
}
