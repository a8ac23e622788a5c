package commands_test

import (
	"testing"
	"time"

	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/application/usecases/commands"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/kernel"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/parcel"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/token"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/ports"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGenerateQRTokenCommandHandler_Handle_MintsFreshToken(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	aggregate := restoreParcel(t, parcel.StatusOutForDelivery, &courierID)

	cmd, err := commands.NewGenerateQRTokenCommand(aggregate.ID())
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	tokenRepo := new(MockTokenRepository)
	eventRepo := new(MockEventRepository)
	uow := new(MockUoW)
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("ParcelRepository").Return(parcelRepo)
	uow.On("DeliveryTokenRepository").Return(tokenRepo)
	uow.On("EventRepository").Return(eventRepo)
	parcelRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	tokenRepo.On("GetActiveByParcel", mock.Anything, aggregate.ID(), mock.AnythingOfType("time.Time")).
		Return(nil, errs.NewObjectNotFoundError("token", aggregate.ID())).Once()
	tokenRepo.On("PurgeExpiredByParcel", mock.Anything, aggregate.ID(), mock.AnythingOfType("time.Time")).
		Return(nil).Once()
	tokenRepo.On("Add", mock.Anything, mock.AnythingOfType("*token.DeliveryToken")).Return(nil).Once()
	eventRepo.On("Add", mock.Anything, mock.MatchedBy(func(e *parcel.Event) bool {
		return e.Type() == parcel.EventTypeQRGenerated && e.Metadata().TokenExpiresAt != nil
	})).Return(nil).Once()
	// The notification stamp runs in its own transaction after commit.
	tokenRepo.On("Update", mock.Anything, mock.AnythingOfType("*token.DeliveryToken")).Return(nil).Once()
	uow.On("Commit", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)

	factory := new(MockTokenUoWFactory)
	factory.On("Create").Return(uow)
	notifier := new(MockNotifier)
	notifier.On("NotifyTokenIssued", mock.Anything, mock.AnythingOfType("ports.TokenIssuedNotification")).
		Return(nil).Once()
	audit := new(MockAuditSink)
	audit.On("Record", mock.Anything, mock.AnythingOfType("ports.AuditEntry")).Return(nil).Once()

	handler := commands.NewGenerateQRTokenCommandHandler(factory, notifier, audit, discardLogger())
	minted, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, minted)
	assert.True(t, minted.IsActive(time.Now()))
	assert.True(t, aggregate.ID().IsEqual(minted.ParcelID()))
	tokenRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestGenerateQRTokenCommandHandler_Handle_IdempotentOnActiveToken(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	aggregate := restoreParcel(t, parcel.StatusOutForDelivery, &courierID)
	existing, err := token.NewDeliveryToken(kernel.NewUUID(), aggregate.ID(), time.Now())
	require.NoError(t, err)

	cmd, err := commands.NewGenerateQRTokenCommand(aggregate.ID())
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	tokenRepo := new(MockTokenRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ParcelRepository").Return(parcelRepo)
	uow.On("DeliveryTokenRepository").Return(tokenRepo)
	parcelRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	tokenRepo.On("GetActiveByParcel", mock.Anything, aggregate.ID(), mock.AnythingOfType("time.Time")).
		Return(existing, nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockTokenUoWFactory)
	factory.On("Create").Return(uow).Once()
	notifier := new(MockNotifier)
	audit := new(MockAuditSink)

	handler := commands.NewGenerateQRTokenCommandHandler(factory, notifier, audit, discardLogger())
	got, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, existing.Code(), got.Code())
	// No mint, no event, no notification.
	tokenRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	notifier.AssertNotCalled(t, "NotifyTokenIssued", mock.Anything, mock.Anything)
}

func TestGenerateQRTokenCommandHandler_Handle_LostMintRaceReturnsWinner(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	aggregate := restoreParcel(t, parcel.StatusOutForDelivery, &courierID)
	winner, err := token.NewDeliveryToken(kernel.NewUUID(), aggregate.ID(), time.Now())
	require.NoError(t, err)

	cmd, err := commands.NewGenerateQRTokenCommand(aggregate.ID())
	require.NoError(t, err)

	// First transaction: the active-token check sees nothing, the insert
	// loses to a concurrent minter.
	parcelRepo := new(MockParcelRepository)
	loserTokenRepo := new(MockTokenRepository)
	loserUow := new(MockUoW)
	loserUow.On("Begin", ctx).Return(nil).Once()
	loserUow.On("ParcelRepository").Return(parcelRepo)
	loserUow.On("DeliveryTokenRepository").Return(loserTokenRepo)
	parcelRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	loserTokenRepo.On("GetActiveByParcel", mock.Anything, aggregate.ID(), mock.AnythingOfType("time.Time")).
		Return(nil, errs.NewObjectNotFoundError("token", aggregate.ID())).Once()
	loserTokenRepo.On("PurgeExpiredByParcel", mock.Anything, aggregate.ID(), mock.AnythingOfType("time.Time")).
		Return(nil).Once()
	loserTokenRepo.On("Add", mock.Anything, mock.AnythingOfType("*token.DeliveryToken")).
		Return(ports.ErrActiveTokenExists).Once()
	loserUow.On("Rollback", ctx).Return(nil).Once()

	// Second transaction: re-read the winner's token.
	winnerTokenRepo := new(MockTokenRepository)
	winnerUow := new(MockUoW)
	winnerUow.On("Begin", ctx).Return(nil).Once()
	winnerUow.On("DeliveryTokenRepository").Return(winnerTokenRepo)
	winnerTokenRepo.On("GetActiveByParcel", mock.Anything, aggregate.ID(), mock.AnythingOfType("time.Time")).
		Return(winner, nil).Once()
	winnerUow.On("Commit", ctx).Return(nil).Once()
	winnerUow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockTokenUoWFactory)
	factory.On("Create").Return(loserUow).Once()
	factory.On("Create").Return(winnerUow).Once()
	notifier := new(MockNotifier)
	audit := new(MockAuditSink)

	handler := commands.NewGenerateQRTokenCommandHandler(factory, notifier, audit, discardLogger())
	got, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, winner.Code(), got.Code())
	// The loser mints nothing visible: no commit, no event, no notification.
	loserUow.AssertNotCalled(t, "Commit", mock.Anything)
	notifier.AssertNotCalled(t, "NotifyTokenIssued", mock.Anything, mock.Anything)
	winnerTokenRepo.AssertExpectations(t)
}

func TestGenerateQRTokenCommandHandler_Handle_RequiresOutForDelivery(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	aggregate := restoreParcel(t, parcel.StatusInTransit, &courierID)

	cmd, err := commands.NewGenerateQRTokenCommand(aggregate.ID())
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ParcelRepository").Return(parcelRepo)
	parcelRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockTokenUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewGenerateQRTokenCommandHandler(
		factory, new(MockNotifier), new(MockAuditSink), discardLogger())
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidState)
}

func TestGenerateQRTokenCommandHandler_Handle_NotificationFailureDoesNotFailIssuance(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	aggregate := restoreParcel(t, parcel.StatusOutForDelivery, &courierID)

	cmd, err := commands.NewGenerateQRTokenCommand(aggregate.ID())
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	tokenRepo := new(MockTokenRepository)
	eventRepo := new(MockEventRepository)
	uow := new(MockUoW)
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("ParcelRepository").Return(parcelRepo)
	uow.On("DeliveryTokenRepository").Return(tokenRepo)
	uow.On("EventRepository").Return(eventRepo)
	parcelRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	tokenRepo.On("GetActiveByParcel", mock.Anything, aggregate.ID(), mock.AnythingOfType("time.Time")).
		Return(nil, errs.NewObjectNotFoundError("token", aggregate.ID())).Once()
	tokenRepo.On("PurgeExpiredByParcel", mock.Anything, aggregate.ID(), mock.AnythingOfType("time.Time")).
		Return(nil).Once()
	tokenRepo.On("Add", mock.Anything, mock.AnythingOfType("*token.DeliveryToken")).Return(nil).Once()
	eventRepo.On("Add", mock.Anything, mock.AnythingOfType("*parcel.Event")).Return(nil).Once()
	uow.On("Commit", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)

	factory := new(MockTokenUoWFactory)
	factory.On("Create").Return(uow)
	notifier := new(MockNotifier)
	notifier.On("NotifyTokenIssued", mock.Anything, mock.Anything).
		Return(errs.NewInvalidStateError("smtp relay down")).Once()
	audit := new(MockAuditSink)
	audit.On("Record", mock.Anything, mock.AnythingOfType("ports.AuditEntry")).Return(nil).Once()

	handler := commands.NewGenerateQRTokenCommandHandler(factory, notifier, audit, discardLogger())
	minted, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, minted)
	assert.Nil(t, minted.NotifiedAt())
}
