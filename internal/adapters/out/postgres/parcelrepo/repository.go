package parcelrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/kernel"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/parcel"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/ports"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	uniqueViolationCode = "23505"

	orderIndexName    = "idx_parcels_order_id"
	trackingIndexName = "idx_parcels_tracking_number"
)

// GormParcelRepository implements ParcelRepository using GORM.
type GormParcelRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormParcelRepository creates a new GORM parcel repository.
func NewGormParcelRepository(db *gorm.DB, tracker aggregateTracker) *GormParcelRepository {
	return &GormParcelRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new parcel to the database. A tracking number collision
// surfaces as ports.ErrDuplicateTrackingNumber so the caller can regenerate;
// a second parcel for an order hits the order_id unique index and surfaces as
// an InvalidStateError.
func (r *GormParcelRepository) Add(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			switch pgErr.ConstraintName {
			case trackingIndexName:
				return ports.ErrDuplicateTrackingNumber
			case orderIndexName:
				return errs.NewInvalidStateErrorWithCause(
					"orderId",
					fmt.Errorf("order %s already has a parcel", aggregate.OrderID()),
				)
			}
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing parcel to the database without a concurrency
// guard.
func (r *GormParcelRepository) Update(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&ParcelDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateWithStatusGuard saves the parcel only when the stored row still holds
// the expected status. A concurrent transition leaves no matching row and
// yields an InvalidStateError.
func (r *GormParcelRepository) UpdateWithStatusGuard(
	ctx context.Context,
	aggregate *parcel.Parcel,
	expected parcel.Status,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&ParcelDTO{}).
		Where("id = ? AND status = ?", dto.ID, expected.String()).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewInvalidStateErrorWithCause(
			"parcel status",
			fmt.Errorf("parcel %s is no longer in status %s", aggregate.ID(), expected),
		)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a parcel by ID. Soft-deleted parcels are invisible.
func (r *GormParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ParcelDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ? AND deleted = false", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("parcel", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByTrackingNumber retrieves a parcel by its public tracking number.
func (r *GormParcelRepository) GetByTrackingNumber(
	ctx context.Context,
	trackingNumber string,
) (*parcel.Parcel, error) {
	if trackingNumber == "" {
		return nil, errs.NewValueIsRequiredError("trackingNumber")
	}

	var dto ParcelDTO
	err := r.db.WithContext(ctx).
		First(&dto, "tracking_number = ? AND deleted = false", trackingNumber).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("parcel", trackingNumber)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetActiveByCourier retrieves every parcel the courier is currently moving.
// Results are sorted by tracking number for deterministic route recomputation.
func (r *GormParcelRepository) GetActiveByCourier(
	ctx context.Context,
	courierID kernel.UUID,
) ([]*parcel.Parcel, error) {
	if err := courierID.Validate(); err != nil {
		return nil, err
	}

	activeStatuses := []string{
		parcel.StatusAssigned.String(),
		parcel.StatusPickedUp.String(),
		parcel.StatusInTransit.String(),
		parcel.StatusOutForDelivery.String(),
	}

	var dtos []ParcelDTO
	err := r.db.WithContext(ctx).
		Where("courier_id = ? AND deleted = false AND status IN ?", courierID.Bytes(), activeStatuses).
		Order("tracking_number").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	parcels := make([]*parcel.Parcel, 0, len(dtos))
	for _, dto := range dtos {
		p, domainErr := toDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		parcels = append(parcels, p)
	}

	return parcels, nil
}
