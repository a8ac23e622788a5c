package commands_test

import (
	"context"
	"log/slog"
	"time"

	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/application/usecases/commands"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/courier"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/kernel"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/location"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/parcel"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/token"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

type MockParcelRepository struct{ mock.Mock }

func (m *MockParcelRepository) Add(ctx context.Context, aggregate *parcel.Parcel) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockParcelRepository) Update(ctx context.Context, aggregate *parcel.Parcel) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockParcelRepository) UpdateWithStatusGuard(
	ctx context.Context, aggregate *parcel.Parcel, expected parcel.Status,
) error {
	args := m.Called(ctx, aggregate, expected)
	return args.Error(0)
}

func (m *MockParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) GetByTrackingNumber(ctx context.Context, trackingNumber string) (*parcel.Parcel, error) {
	args := m.Called(ctx, trackingNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) GetActiveByCourier(ctx context.Context, courierID kernel.UUID) ([]*parcel.Parcel, error) {
	args := m.Called(ctx, courierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*parcel.Parcel), args.Error(1)
}

type MockCourierRepository struct{ mock.Mock }

func (m *MockCourierRepository) Add(ctx context.Context, aggregate *courier.Courier) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCourierRepository) Update(ctx context.Context, aggregate *courier.Courier) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCourierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*courier.Courier), args.Error(1)
}

type MockTokenRepository struct{ mock.Mock }

func (m *MockTokenRepository) Add(ctx context.Context, aggregate *token.DeliveryToken) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockTokenRepository) Update(ctx context.Context, aggregate *token.DeliveryToken) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockTokenRepository) GetByCode(ctx context.Context, code string) (*token.DeliveryToken, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*token.DeliveryToken), args.Error(1)
}

func (m *MockTokenRepository) GetActiveByParcel(
	ctx context.Context, parcelID kernel.UUID, now time.Time,
) (*token.DeliveryToken, error) {
	args := m.Called(ctx, parcelID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*token.DeliveryToken), args.Error(1)
}

func (m *MockTokenRepository) PurgeExpiredByParcel(
	ctx context.Context, parcelID kernel.UUID, now time.Time,
) error {
	args := m.Called(ctx, parcelID, now)
	return args.Error(0)
}

func (m *MockTokenRepository) MarkUsed(ctx context.Context, code string, usedAt time.Time) error {
	args := m.Called(ctx, code, usedAt)
	return args.Error(0)
}

func (m *MockTokenRepository) DeleteExpiredUnused(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

type MockLocationRepository struct{ mock.Mock }

func (m *MockLocationRepository) Add(ctx context.Context, aggregate *location.CourierLocation) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockLocationRepository) GetLast(
	ctx context.Context, courierID kernel.UUID, parcelID *kernel.UUID,
) (*location.CourierLocation, error) {
	args := m.Called(ctx, courierID, parcelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*location.CourierLocation), args.Error(1)
}

type MockEventRepository struct{ mock.Mock }

func (m *MockEventRepository) Add(ctx context.Context, aggregate *parcel.Event) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockEventRepository) ListByParcel(ctx context.Context, parcelID kernel.UUID) ([]*parcel.Event, error) {
	args := m.Called(ctx, parcelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*parcel.Event), args.Error(1)
}

// MockUoW satisfies every unit of work composition the handlers use, so each
// test wires only the repositories its command touches.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) ParcelRepository() ports.ParcelRepository {
	args := m.Called()
	return args.Get(0).(ports.ParcelRepository)
}

func (m *MockUoW) CourierRepository() ports.CourierRepository {
	args := m.Called()
	return args.Get(0).(ports.CourierRepository)
}

func (m *MockUoW) DeliveryTokenRepository() ports.DeliveryTokenRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryTokenRepository)
}

func (m *MockUoW) CourierLocationRepository() ports.CourierLocationRepository {
	args := m.Called()
	return args.Get(0).(ports.CourierLocationRepository)
}

func (m *MockUoW) EventRepository() ports.EventRepository {
	args := m.Called()
	return args.Get(0).(ports.EventRepository)
}

type MockParcelUoWFactory struct{ mock.Mock }

func (m *MockParcelUoWFactory) Create() commands.ParcelUoW {
	args := m.Called()
	return args.Get(0).(commands.ParcelUoW)
}

type MockAssignUoWFactory struct{ mock.Mock }

func (m *MockAssignUoWFactory) Create() commands.AssignUoW {
	args := m.Called()
	return args.Get(0).(commands.AssignUoW)
}

type MockTokenUoWFactory struct{ mock.Mock }

func (m *MockTokenUoWFactory) Create() commands.TokenUoW {
	args := m.Called()
	return args.Get(0).(commands.TokenUoW)
}

type MockTrackingUoWFactory struct{ mock.Mock }

func (m *MockTrackingUoWFactory) Create() commands.TrackingUoW {
	args := m.Called()
	return args.Get(0).(commands.TrackingUoW)
}

type MockCleanupUoWFactory struct{ mock.Mock }

func (m *MockCleanupUoWFactory) Create() commands.CleanupUoW {
	args := m.Called()
	return args.Get(0).(commands.CleanupUoW)
}

type MockOrderStatusPort struct{ mock.Mock }

func (m *MockOrderStatusPort) UpdateOrderStatus(ctx context.Context, orderID kernel.UUID, status string) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) NotifyTokenIssued(ctx context.Context, notification ports.TokenIssuedNotification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

func (m *MockNotifier) NotifyDelivered(ctx context.Context, notification ports.DeliveryCompletedNotification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

type MockAuditSink struct{ mock.Mock }

func (m *MockAuditSink) Record(ctx context.Context, entry ports.AuditEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

type MockGeocoder struct{ mock.Mock }

func (m *MockGeocoder) Reverse(ctx context.Context, point kernel.GeoPoint) (*ports.Place, error) {
	args := m.Called(ctx, point)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.Place), args.Error(1)
}
