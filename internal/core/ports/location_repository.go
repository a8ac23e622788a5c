package ports

import (
	"context"

	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/kernel"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/location"
)

// CourierLocationRepository defines the persistence contract for the
// append-only GPS trail. Rows are never updated or deleted.
type CourierLocationRepository interface {
	// Add persists one ping.
	Add(ctx context.Context, aggregate *location.CourierLocation) error

	// GetLast retrieves the courier's most recent ping, optionally scoped
	// to a parcel. Returns an ObjectNotFoundError when the courier has no
	// pings yet.
	GetLast(ctx context.Context, courierID kernel.UUID, parcelID *kernel.UUID) (*location.CourierLocation, error)
}
