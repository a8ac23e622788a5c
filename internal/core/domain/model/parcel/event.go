package parcel

import (
	"time"

	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/kernel"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/pkg/errs"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/pkg/guard"
)

// EventType tags an entry in the parcel's append-only lifecycle history.
type EventType string

const (
	EventTypeParcelCreated   EventType = "PARCEL_CREATED"
	EventTypeStatusChanged   EventType = "STATUS_CHANGED"
	EventTypeCourierAssigned EventType = "COURIER_ASSIGNED"
	EventTypeRouteOptimized  EventType = "ROUTE_OPTIMIZED"
	EventTypeQRGenerated     EventType = "QR_GENERATED"
	EventTypeDelivered       EventType = "DELIVERED"
	EventTypeLocationUpdate  EventType = "LOCATION_UPDATE"
)

// Metadata carries the structured diagnostic payload of an event. Known
// fields are typed per event kind; Extra is the explicit side channel for
// anything unstructured. Consumers must parse the typed fields and never rely
// on the side channel for behavior.
type Metadata struct {
	// Status change detail.
	FromStatus string `json:"from_status,omitempty"`
	ToStatus   string `json:"to_status,omitempty"`
	Actor      string `json:"actor,omitempty"`

	// Route recomputation detail (ROUTE_OPTIMIZED).
	OldRoute []string `json:"old_route,omitempty"`
	NewRoute []string `json:"new_route,omitempty"`

	// Raw location detail (LOCATION_UPDATE).
	RawAddress string   `json:"raw_address,omitempty"`
	City       string   `json:"city,omitempty"`
	County     string   `json:"county,omitempty"`
	Village    string   `json:"village,omitempty"`
	Accuracy   *float64 `json:"accuracy,omitempty"`
	DeviceInfo string   `json:"device_info,omitempty"`

	// Token detail (QR_GENERATED).
	TokenExpiresAt *time.Time `json:"token_expires_at,omitempty"`

	// Extra is the free-form side channel for unstructured diagnostics.
	Extra map[string]string `json:"extra,omitempty"`
}

// ErrEventIsNotConstructed is returned when attempting to use an improperly initialized Event.
var ErrEventIsNotConstructed = errs.NewValueIsRequiredError(
	"event must be created via NewEvent or RestoreEvent constructors")

// Event is one immutable entry in a parcel's lifecycle history. Events are
// only ever appended; they are never updated or deleted individually.
type Event struct {
	id          kernel.UUID
	parcelID    kernel.UUID
	eventType   EventType
	description string
	location    string
	point       *kernel.GeoPoint
	courierID   *kernel.UUID
	metadata    Metadata
	createdAt   time.Time
	guard       guard.ConstructorGuard
}

// NewEvent creates a history entry for a parcel. Location, coordinates, and
// courier are optional; metadata may be the zero value.
func NewEvent(
	parcelID kernel.UUID,
	eventType EventType,
	description string,
	location string,
	point *kernel.GeoPoint,
	courierID *kernel.UUID,
	metadata Metadata,
	createdAt time.Time,
) (*Event, error) {
	if err := parcelID.Validate(); err != nil {
		return nil, err
	}
	if eventType == "" {
		return nil, errs.NewValueIsRequiredError("eventType")
	}
	if description == "" {
		return nil, errs.NewValueIsRequiredError("description")
	}

	return &Event{
		id:          kernel.NewUUID(),
		parcelID:    parcelID,
		eventType:   eventType,
		description: description,
		location:    location,
		point:       point,
		courierID:   courierID,
		metadata:    metadata,
		createdAt:   createdAt,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestoreEvent reconstructs an event from persistence, keeping its original
// identifier and timestamp.
func RestoreEvent(
	id kernel.UUID,
	parcelID kernel.UUID,
	eventType EventType,
	description string,
	location string,
	point *kernel.GeoPoint,
	courierID *kernel.UUID,
	metadata Metadata,
	createdAt time.Time,
) (*Event, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	event, err := NewEvent(parcelID, eventType, description, location, point, courierID, metadata, createdAt)
	if err != nil {
		return nil, err
	}
	event.id = id
	return event, nil
}

// Validate checks if the Event was properly constructed.
func (e *Event) Validate() error {
	if e == nil {
		return ErrEventIsNotConstructed
	}
	return e.guard.Validate(ErrEventIsNotConstructed)
}

// ID returns the event's unique identifier.
func (e *Event) ID() kernel.UUID { return e.id }

// ParcelID returns the parcel this event belongs to.
func (e *Event) ParcelID() kernel.UUID { return e.parcelID }

// Type returns the event type tag.
func (e *Event) Type() EventType { return e.eventType }

// Description returns the human-readable event text.
func (e *Event) Description() string { return e.description }

// Location returns the optional place string, empty when absent.
func (e *Event) Location() string { return e.location }

// Point returns the optional coordinates, nil when absent.
func (e *Event) Point() *kernel.GeoPoint { return e.point }

// CourierID returns the optional courier reference, nil when absent.
func (e *Event) CourierID() *kernel.UUID { return e.courierID }

// Metadata returns the structured diagnostic payload.
func (e *Event) Metadata() Metadata { return e.metadata }

// CreatedAt returns when the event was recorded.
func (e *Event) CreatedAt() time.Time { return e.createdAt }
