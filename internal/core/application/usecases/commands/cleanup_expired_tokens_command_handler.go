package commands

import (
	"context"
	"time"
)

// CleanupExpiredTokensCommandHandler bulk-removes dead delivery tokens.
type CleanupExpiredTokensCommandHandler struct {
	uowFactory CleanupUoWFactory
}

// NewCleanupExpiredTokensCommandHandler creates a handler for the token sweep.
func NewCleanupExpiredTokensCommandHandler(uowFactory CleanupUoWFactory) CleanupExpiredTokensCommandHandler {
	return CleanupExpiredTokensCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes every token that is both expired and unused, returning the
// removed count.
func (h CleanupExpiredTokensCommandHandler) Handle(
	ctx context.Context,
	command CleanupExpiredTokensCommand,
) (int64, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	removed, err := uow.DeliveryTokenRepository().DeleteExpiredUnused(ctx, time.Now())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return removed, nil
}
