// Package eventrepo provides data transfer objects and mapping functions for
// the append-only parcel event log.
package eventrepo

import (
	"encoding/json"
	"time"

	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/kernel"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// EventDTO represents the database structure for persisting parcel events.
// Metadata is stored as jsonb so new detail fields never need a migration.
type EventDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ParcelID    uuid.UUID `gorm:"type:uuid;index:idx_parcel_created"`
	EventType   string    `gorm:"size:32;index"`
	Description string    `gorm:"size:500"`
	Location    *string   `gorm:"size:100"`
	Lat         *float64
	Lng         *float64
	CourierID   *uuid.UUID `gorm:"type:uuid"`
	Metadata    []byte     `gorm:"type:jsonb"`
	CreatedAt   time.Time  `gorm:"index:idx_parcel_created"`
}

// TableName specifies the database table name for parcel event entities.
func (EventDTO) TableName() string {
	return "parcel_events"
}

// fromDomain converts a parcel event to its database representation.
func fromDomain(aggregate *parcel.Event) (EventDTO, error) {
	metadata, err := json.Marshal(aggregate.Metadata())
	if err != nil {
		return EventDTO{}, err
	}

	dto := EventDTO{
		ID:          aggregate.ID().Bytes(),
		ParcelID:    aggregate.ParcelID().Bytes(),
		EventType:   string(aggregate.Type()),
		Description: aggregate.Description(),
		Metadata:    metadata,
		CreatedAt:   aggregate.CreatedAt(),
	}

	if loc := aggregate.Location(); loc != "" {
		dto.Location = &loc
	}
	if point := aggregate.Point(); point != nil {
		lat, lng := point.Lat(), point.Lng()
		dto.Lat = &lat
		dto.Lng = &lng
	}
	if id := aggregate.CourierID(); id != nil {
		raw := id.Bytes()
		dto.CourierID = &raw
	}

	return dto, nil
}

// toDomain converts a database DTO to a parcel event.
func toDomain(dto EventDTO) (*parcel.Event, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	parcelID, err := kernel.UUIDFromBytes(dto.ParcelID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &cID
	}

	var point *kernel.GeoPoint
	if dto.Lat != nil && dto.Lng != nil {
		p, pointErr := kernel.NewGeoPoint(*dto.Lat, *dto.Lng)
		if pointErr != nil {
			return nil, pointErr
		}
		point = &p
	}

	var metadata parcel.Metadata
	if len(dto.Metadata) > 0 {
		if err = json.Unmarshal(dto.Metadata, &metadata); err != nil {
			return nil, err
		}
	}

	location := ""
	if dto.Location != nil {
		location = *dto.Location
	}

	return parcel.RestoreEvent(
		id, parcelID, parcel.EventType(dto.EventType), dto.Description,
		location, point, courierID, metadata, dto.CreatedAt,
	)
}
