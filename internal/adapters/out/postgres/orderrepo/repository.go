package orderrepo

import (
	"context"

	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/kernel"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderStatusRepository implements OrderStatusPort against the shared
// orders table.
type GormOrderStatusRepository struct {
	db *gorm.DB
}

// NewGormOrderStatusRepository creates a repository for order status
// projection.
func NewGormOrderStatusRepository(db *gorm.DB) *GormOrderStatusRepository {
	return &GormOrderStatusRepository{db: db}
}

// UpdateOrderStatus sets the order's status. Writing the status it already
// holds matches no row and is treated as success, so the projection is
// idempotent. An unknown order is an error: the parcel referenced it at
// creation time.
func (r *GormOrderStatusRepository) UpdateOrderStatus(
	ctx context.Context,
	orderID kernel.UUID,
	status string,
) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if status == "" {
		return errs.NewValueIsRequiredError("status")
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status != ?", orderID.Bytes(), status).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	// No row changed: either already in the target status or missing.
	var count int64
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", orderID.Bytes()).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("order", orderID.String())
	}

	return nil
}
