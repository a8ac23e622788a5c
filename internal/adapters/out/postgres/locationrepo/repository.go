package locationrepo

import (
	"context"
	"errors"

	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/kernel"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/location"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCourierLocationRepository implements CourierLocationRepository using
// GORM.
type GormCourierLocationRepository struct {
	db *gorm.DB
}

// NewGormCourierLocationRepository creates a new GORM location repository.
func NewGormCourierLocationRepository(db *gorm.DB) *GormCourierLocationRepository {
	return &GormCourierLocationRepository{db: db}
}

// Add appends one GPS ping.
func (r *GormCourierLocationRepository) Add(ctx context.Context, aggregate *location.CourierLocation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetLast retrieves the courier's most recent ping, optionally scoped to a
// parcel.
func (r *GormCourierLocationRepository) GetLast(
	ctx context.Context,
	courierID kernel.UUID,
	parcelID *kernel.UUID,
) (*location.CourierLocation, error) {
	if err := courierID.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).Where("courier_id = ?", courierID.Bytes())
	if parcelID != nil {
		query = query.Where("parcel_id = ?", parcelID.Bytes())
	}

	var dto CourierLocationDTO
	if err := query.Order("recorded_at DESC").First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("courier location", courierID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
