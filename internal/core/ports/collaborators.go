package ports

import (
	"context"
	"time"

	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/kernel"
)

// OrderStatusPort lets the fulfillment core push projected status changes to
// the order module without a hard dependency cycle. Calls are best-effort:
// failures are logged and never roll back the parcel write.
type OrderStatusPort interface {
	UpdateOrderStatus(ctx context.Context, orderID kernel.UUID, status string) error
}

// Place is a reverse-geocoding result. Every field is optional; empty strings
// mean the resolver could not name that level.
type Place struct {
	Country          string
	Province         string
	County           string
	Village          string
	City             string
	Road             string
	FormattedAddress string
}

// Geocoder resolves coordinates to a place name. A nil Place with nil error
// means the point could not be resolved; callers degrade to a generic label.
type Geocoder interface {
	Reverse(ctx context.Context, point kernel.GeoPoint) (*Place, error)
}

// TokenIssuedNotification is sent to the recipient when a delivery QR token
// is minted.
type TokenIssuedNotification struct {
	TrackingNumber string
	RecipientName  string
	TokenCode      string
	ExpiresAt      time.Time
}

// DeliveryCompletedNotification is sent to the recipient after a successful
// hand-over.
type DeliveryCompletedNotification struct {
	TrackingNumber string
	RecipientName  string
	DeliveredAt    time.Time
}

// Notifier enqueues asynchronous customer notifications. Failures are logged
// only and never fail the triggering operation.
type Notifier interface {
	NotifyTokenIssued(ctx context.Context, notification TokenIssuedNotification) error
	NotifyDelivered(ctx context.Context, notification DeliveryCompletedNotification) error
}

// AuditEntry describes one mutating call for an external audit consumer.
type AuditEntry struct {
	ActionType  string
	EntityType  string
	EntityID    kernel.UUID
	Description string
	Metadata    map[string]string
}

// AuditSink receives audit entries as a side-effecting callback, outside the
// core's success and failure contract.
type AuditSink interface {
	Record(ctx context.Context, entry AuditEntry) error
}
