// Package parcelrepo provides data transfer objects and mapping functions for
// parcel persistence. This package implements the repository pattern for the
// parcel domain aggregate, handling the conversion between domain entities and
// database representations.
package parcelrepo

import (
	"encoding/json"
	"time"

	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/kernel"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ParcelDTO represents the database structure for persisting parcel
// aggregates. Route columns are nullable as one block: either all set or all
// null, depending on whether the parcel has been routed yet. The unique index
// on order_id holds the one-parcel-per-order rule.
type ParcelDTO struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID           uuid.UUID  `gorm:"type:uuid;uniqueIndex:idx_parcels_order_id"`
	TrackingNumber    string     `gorm:"size:32;uniqueIndex:idx_parcels_tracking_number"`
	Status            string     `gorm:"size:32;index"`
	CourierID         *uuid.UUID `gorm:"type:uuid;index"`
	Address           AddressDTO `gorm:"embedded"`
	RouteCities       []byte     `gorm:"type:jsonb"`
	RouteRegions      []byte     `gorm:"type:jsonb"`
	RouteCurrentIndex *int
	RouteDistanceKm   *int
	RouteHours        *int
	RouteOptimized    *bool
	RouteOptimizedAt  *time.Time
	EstimatedDelivery *time.Time
	ActualDelivery    *time.Time
	Deleted           bool `gorm:"index"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName specifies the database table name for parcel entities.
func (ParcelDTO) TableName() string {
	return "parcels"
}

// AddressDTO represents the embedded delivery address within the parcel table.
type AddressDTO struct {
	RecipientName string `gorm:"size:255"`
	City          string `gorm:"size:100"`
	District      string `gorm:"size:100"`
	Street        string `gorm:"size:255"`
	ZipCode       string `gorm:"size:10"`
}

// fromDomain converts a parcel domain aggregate to its database
// representation.
func fromDomain(aggregate *parcel.Parcel) (ParcelDTO, error) {
	var courierID *uuid.UUID
	if id := aggregate.CourierID(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	dto := ParcelDTO{
		ID:             aggregate.ID().Bytes(),
		OrderID:        aggregate.OrderID().Bytes(),
		TrackingNumber: aggregate.TrackingNumber(),
		Status:         aggregate.Status().String(),
		CourierID:      courierID,
		Address: AddressDTO{
			RecipientName: aggregate.Address().RecipientName(),
			City:          aggregate.Address().City(),
			District:      aggregate.Address().District(),
			Street:        aggregate.Address().Street(),
			ZipCode:       aggregate.Address().ZipCode(),
		},
		EstimatedDelivery: aggregate.EstimatedDelivery(),
		ActualDelivery:    aggregate.ActualDelivery(),
		Deleted:           aggregate.IsDeleted(),
	}

	if route := aggregate.Route(); route != nil {
		cities, err := json.Marshal(route.Cities())
		if err != nil {
			return ParcelDTO{}, err
		}
		regions, err := json.Marshal(route.Regions())
		if err != nil {
			return ParcelDTO{}, err
		}

		currentIndex := route.CurrentCityIndex()
		distanceKm := route.TotalDistanceKm()
		hours := route.EstimatedHours()
		optimized := route.IsOptimized()
		optimizedAt := route.OptimizedAt()

		dto.RouteCities = cities
		dto.RouteRegions = regions
		dto.RouteCurrentIndex = &currentIndex
		dto.RouteDistanceKm = &distanceKm
		dto.RouteHours = &hours
		dto.RouteOptimized = &optimized
		dto.RouteOptimizedAt = &optimizedAt
	}

	return dto, nil
}

// toDomain converts a database DTO to a parcel domain aggregate.
func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
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

	status, err := parcel.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	address, err := parcel.NewAddress(
		dto.Address.RecipientName,
		dto.Address.City,
		dto.Address.District,
		dto.Address.Street,
		dto.Address.ZipCode,
	)
	if err != nil {
		return nil, err
	}

	route, err := routeFromDTO(dto)
	if err != nil {
		return nil, err
	}

	return parcel.RestoreParcel(
		id, orderID, dto.TrackingNumber, status, courierID, address,
		route, dto.EstimatedDelivery, dto.ActualDelivery, dto.Deleted,
	)
}

func routeFromDTO(dto ParcelDTO) (*parcel.Route, error) {
	if dto.RouteCities == nil || dto.RouteCurrentIndex == nil {
		return nil, nil
	}

	var cities, regions []string
	if err := json.Unmarshal(dto.RouteCities, &cities); err != nil {
		return nil, err
	}
	if dto.RouteRegions != nil {
		if err := json.Unmarshal(dto.RouteRegions, &regions); err != nil {
			return nil, err
		}
	}

	distanceKm, hours := 0, 0
	if dto.RouteDistanceKm != nil {
		distanceKm = *dto.RouteDistanceKm
	}
	if dto.RouteHours != nil {
		hours = *dto.RouteHours
	}
	optimized := dto.RouteOptimized != nil && *dto.RouteOptimized
	optimizedAt := time.Time{}
	if dto.RouteOptimizedAt != nil {
		optimizedAt = *dto.RouteOptimizedAt
	}

	route, err := parcel.RestoreRoute(
		cities, *dto.RouteCurrentIndex, regions, distanceKm, hours, optimized, optimizedAt)
	if err != nil {
		return nil, err
	}
	return &route, nil
}
