package eventrepo

import (
	"context"

	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/kernel"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/parcel"

	"gorm.io/gorm"
)

// GormEventRepository implements EventRepository using GORM. The event log is
// append-only: no update or delete path exists.
type GormEventRepository struct {
	db *gorm.DB
}

// NewGormEventRepository creates a new GORM event repository.
func NewGormEventRepository(db *gorm.DB) *GormEventRepository {
	return &GormEventRepository{db: db}
}

// Add appends one event to the log.
func (r *GormEventRepository) Add(ctx context.Context, aggregate *parcel.Event) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}

// ListByParcel retrieves a parcel's full history, oldest first.
func (r *GormEventRepository) ListByParcel(
	ctx context.Context,
	parcelID kernel.UUID,
) ([]*parcel.Event, error) {
	if err := parcelID.Validate(); err != nil {
		return nil, err
	}

	var dtos []EventDTO
	err := r.db.WithContext(ctx).
		Where("parcel_id = ?", parcelID.Bytes()).
		Order("created_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	events := make([]*parcel.Event, 0, len(dtos))
	for _, dto := range dtos {
		event, domainErr := toDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		events = append(events, event)
	}

	return events, nil
}
