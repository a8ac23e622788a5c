package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/kernel"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCourierLastLocationQueryHandler reads the freshest GPS ping straight
// from the read model, bypassing the aggregate.
type GetCourierLastLocationQueryHandler struct {
	db *gorm.DB
}

// NewGetCourierLastLocationQueryHandler creates a handler for last-location
// lookups.
func NewGetCourierLastLocationQueryHandler(db *gorm.DB) GetCourierLastLocationQueryHandler {
	return GetCourierLastLocationQueryHandler{db: db}
}

// Handle returns the courier's most recent ping, scoped to a parcel when the
// query carries one. Returns an ObjectNotFoundError when the courier has
// never reported a position.
func (h GetCourierLastLocationQueryHandler) Handle(
	ctx context.Context,
	query GetCourierLastLocationQuery,
) (GetCourierLastLocationQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCourierLastLocationQueryResponse{}, err
	}

	stmt := `
		SELECT
			courier_id,
			parcel_id,
			lat,
			lng,
			accuracy,
			address,
			city,
			device_info,
			recorded_at
		FROM courier_locations
		WHERE courier_id = ?
	`
	args := []any{query.CourierID().Bytes()}
	if query.ParcelID() != nil {
		stmt += " AND parcel_id = ?"
		args = append(args, query.ParcelID().Bytes())
	}
	stmt += " ORDER BY recorded_at DESC LIMIT 1"

	row := h.db.WithContext(ctx).Raw(stmt, args...).Row()

	var (
		courierID  uuid.UUID
		parcelID   *uuid.UUID
		lat, lng   float64
		accuracy   *float64
		address    *string
		city       *string
		deviceInfo *string
		recordedAt time.Time
	)
	err := row.Scan(
		&courierID, &parcelID, &lat, &lng,
		&accuracy, &address, &city, &deviceInfo, &recordedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetCourierLastLocationQueryResponse{},
			errs.NewObjectNotFoundError("courier location", query.CourierID())
	}
	if err != nil {
		return GetCourierLastLocationQueryResponse{}, err
	}

	response := GetCourierLastLocationQueryResponse{
		Accuracy:   accuracy,
		Address:    address,
		City:       city,
		DeviceInfo: deviceInfo,
		RecordedAt: recordedAt,
	}

	response.CourierID, err = kernel.UUIDFromBytes(courierID[:])
	if err != nil {
		return GetCourierLastLocationQueryResponse{}, err
	}
	if parcelID != nil {
		scoped, idErr := kernel.UUIDFromBytes(parcelID[:])
		if idErr != nil {
			return GetCourierLastLocationQueryResponse{}, idErr
		}
		response.ParcelID = &scoped
	}
	response.Point, err = kernel.NewGeoPoint(lat, lng)
	if err != nil {
		return GetCourierLastLocationQueryResponse{}, err
	}

	return response, nil
}
