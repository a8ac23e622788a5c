// Package locationrepo provides data transfer objects and mapping functions
// for the append-only courier GPS trail.
package locationrepo

import (
	"time"

	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/kernel"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/location"

	"github.com/google/uuid"
)

// CourierLocationDTO represents the database structure for persisting GPS
// pings. Rows are append-only.
type CourierLocationDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CourierID  uuid.UUID  `gorm:"type:uuid;index:idx_courier_recorded"`
	ParcelID   *uuid.UUID `gorm:"type:uuid;index"`
	Lat        float64
	Lng        float64
	Accuracy   *float64
	Address    *string `gorm:"size:500"`
	City       *string `gorm:"size:100"`
	DeviceInfo *string `gorm:"size:255"`
	RecordedAt time.Time `gorm:"index:idx_courier_recorded"`
}

// TableName specifies the database table name for courier location entities.
func (CourierLocationDTO) TableName() string {
	return "courier_locations"
}

// fromDomain converts a courier location to its database representation.
func fromDomain(aggregate *location.CourierLocation) CourierLocationDTO {
	var parcelID *uuid.UUID
	if id := aggregate.ParcelID(); id != nil {
		raw := id.Bytes()
		parcelID = &raw
	}

	return CourierLocationDTO{
		ID:         aggregate.ID().Bytes(),
		CourierID:  aggregate.CourierID().Bytes(),
		ParcelID:   parcelID,
		Lat:        aggregate.Point().Lat(),
		Lng:        aggregate.Point().Lng(),
		Accuracy:   aggregate.Accuracy(),
		Address:    aggregate.Address(),
		City:       aggregate.City(),
		DeviceInfo: aggregate.DeviceInfo(),
		RecordedAt: aggregate.RecordedAt(),
	}
}

// toDomain converts a database DTO to a courier location.
func toDomain(dto CourierLocationDTO) (*location.CourierLocation, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	courierID, err := kernel.UUIDFromBytes(dto.CourierID[:])
	if err != nil {
		return nil, err
	}

	var parcelID *kernel.UUID
	if dto.ParcelID != nil {
		pID, parcelErr := kernel.UUIDFromBytes((*dto.ParcelID)[:])
		if parcelErr != nil {
			return nil, parcelErr
		}
		parcelID = &pID
	}

	point, err := kernel.NewGeoPoint(dto.Lat, dto.Lng)
	if err != nil {
		return nil, err
	}

	return location.RestoreCourierLocation(
		id, courierID, parcelID, point,
		dto.Accuracy, dto.Address, dto.City, dto.DeviceInfo, dto.RecordedAt,
	)
}
