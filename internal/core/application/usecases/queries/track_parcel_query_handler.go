package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/parcel"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TrackParcelQueryHandler serves the public tracking page from the read
// model. Soft-deleted parcels are invisible here.
type TrackParcelQueryHandler struct {
	db *gorm.DB
}

// NewTrackParcelQueryHandler creates a handler for tracking lookups.
func NewTrackParcelQueryHandler(db *gorm.DB) TrackParcelQueryHandler {
	return TrackParcelQueryHandler{db: db}
}

// Handle resolves the tracking number to a shipment snapshot with its full
// event history. Returns an ObjectNotFoundError for unknown or deleted
// tracking numbers.
func (h TrackParcelQueryHandler) Handle(
	ctx context.Context,
	query TrackParcelQuery,
) (TrackParcelQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackParcelQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			recipient_name,
			city,
			route_cities,
			route_current_index,
			estimated_delivery,
			actual_delivery
		FROM parcels
		WHERE tracking_number = ? AND deleted = false
	`, query.TrackingNumber()).Row()

	var (
		parcelID          uuid.UUID
		statusRaw         string
		recipientName     string
		destinationCity   string
		routeCitiesRaw    []byte
		routeCurrentIndex *int
		estimatedDelivery *time.Time
		actualDelivery    *time.Time
	)
	err := row.Scan(
		&parcelID, &statusRaw, &recipientName, &destinationCity,
		&routeCitiesRaw, &routeCurrentIndex, &estimatedDelivery, &actualDelivery,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return TrackParcelQueryResponse{},
			errs.NewObjectNotFoundError("parcel", query.TrackingNumber())
	}
	if err != nil {
		return TrackParcelQueryResponse{}, err
	}

	status, err := parcel.ParseStatus(statusRaw)
	if err != nil {
		return TrackParcelQueryResponse{}, err
	}
	orderStatus, err := parcel.OrderStatusFor(status)
	if err != nil {
		return TrackParcelQueryResponse{}, err
	}

	response := TrackParcelQueryResponse{
		TrackingNumber:    query.TrackingNumber(),
		Status:            statusRaw,
		OrderStatus:       orderStatus,
		RecipientName:     parcel.MaskName(recipientName),
		DestinationCity:   destinationCity,
		EstimatedDelivery: estimatedDelivery,
		ActualDelivery:    actualDelivery,
	}

	if len(routeCitiesRaw) > 0 {
		if err = json.Unmarshal(routeCitiesRaw, &response.RouteCities); err != nil {
			return TrackParcelQueryResponse{}, err
		}
	}
	if routeCurrentIndex != nil &&
		*routeCurrentIndex >= 0 && *routeCurrentIndex < len(response.RouteCities) {
		response.CurrentCity = response.RouteCities[*routeCurrentIndex]
	}

	response.Events, err = h.loadEvents(ctx, parcelID)
	if err != nil {
		return TrackParcelQueryResponse{}, err
	}

	return response, nil
}

func (h TrackParcelQueryHandler) loadEvents(
	ctx context.Context,
	parcelID uuid.UUID,
) ([]TrackParcelEventResponse, error) {
	events := make([]TrackParcelEventResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			event_type,
			description,
			location,
			created_at
		FROM parcel_events
		WHERE parcel_id = ?
		ORDER BY created_at, id
	`, parcelID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var event TrackParcelEventResponse
		var location *string

		if err = rows.Scan(
			&event.Type, &event.Description, &location, &event.OccurredAt,
		); err != nil {
			return nil, err
		}
		if location != nil {
			event.Location = *location
		}

		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
