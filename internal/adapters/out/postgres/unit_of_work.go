// Package postgres provides the GORM-based implementation of the Unit of
// Work pattern. A unit of work spans one business transaction: every
// repository it hands out shares the same database transaction, so a parcel
// update, its event log entry and the token flip either all land or none do.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.ParcelRepository().Add(ctx, parcel); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
package postgres

import (
	"context"

	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/adapters/out/postgres/courierrepo"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/adapters/out/postgres/eventrepo"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/adapters/out/postgres/locationrepo"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/adapters/out/postgres/parcelrepo"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/adapters/out/postgres/tokenrepo"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/kernel"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
// Tracking enables post-commit processing such as an outbox publisher.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{}
}

// GormUnitOfWorkFactory creates UnitOfWork instances over one GORM
// connection. Each business operation gets a fresh instance with its own
// transaction state.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for one business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction across the fulfillment
// repositories and tracks the aggregates it touched.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates the transaction. Calling Begin again on an open unit of
// work is a no-op rather than a nested transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction. After
// commit the unit of work cannot be reused.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction. Safe to
// defer after a commit: the closed transaction just returns
// gorm.ErrInvalidTransaction.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// ParcelRepository returns a parcel repository bound to the current
// transaction, or to the main connection when none is open.
func (uow *GormUnitOfWork) ParcelRepository() ports.ParcelRepository {
	return parcelrepo.NewGormParcelRepository(uow.conn(), uow)
}

// CourierRepository returns a courier repository bound to the current
// transaction.
func (uow *GormUnitOfWork) CourierRepository() ports.CourierRepository {
	return courierrepo.NewGormCourierRepository(uow.conn(), uow)
}

// DeliveryTokenRepository returns a token repository bound to the current
// transaction.
func (uow *GormUnitOfWork) DeliveryTokenRepository() ports.DeliveryTokenRepository {
	return tokenrepo.NewGormDeliveryTokenRepository(uow.conn(), uow)
}

// CourierLocationRepository returns a location repository bound to the
// current transaction.
func (uow *GormUnitOfWork) CourierLocationRepository() ports.CourierLocationRepository {
	return locationrepo.NewGormCourierLocationRepository(uow.conn())
}

// EventRepository returns an event repository bound to the current
// transaction.
func (uow *GormUnitOfWork) EventRepository() ports.EventRepository {
	return eventrepo.NewGormEventRepository(uow.conn())
}

// TrackAggregate registers a domain aggregate as modified within this unit of
// work. Repositories call this on every add and update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
