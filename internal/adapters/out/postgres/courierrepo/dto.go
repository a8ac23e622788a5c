// Package courierrepo provides data transfer objects and mapping functions
// for courier persistence.
package courierrepo

import (
	"time"

	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/courier"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CourierDTO represents the database structure for persisting courier
// aggregates.
type CourierDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"size:255"`
	Active    bool      `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for courier entities.
func (CourierDTO) TableName() string {
	return "couriers"
}

// fromDomain converts a courier domain aggregate to its database
// representation.
func fromDomain(aggregate *courier.Courier) CourierDTO {
	return CourierDTO{
		ID:     aggregate.ID().Bytes(),
		Name:   aggregate.Name(),
		Active: aggregate.IsActive(),
	}
}

// toDomain converts a database DTO to a courier domain aggregate.
func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return courier.RestoreCourier(id, dto.Name, dto.Active)
}
