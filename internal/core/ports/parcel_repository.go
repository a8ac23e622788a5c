// Package ports defines repository and collaborator interfaces for the parcel
// fulfillment domain. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"
	"errors"

	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/kernel"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/parcel"
)

// ErrDuplicateTrackingNumber is returned by ParcelRepository.Add when the
// generated tracking number collides with an existing row.
var ErrDuplicateTrackingNumber = errors.New("tracking number already exists")

// ParcelRepository defines the persistence contract for parcel aggregates.
// Soft-deleted parcels are invisible to every read method.
type ParcelRepository interface {
	// Add persists a new parcel aggregate to storage. A unique-constraint
	// violation on the tracking number surfaces as ErrDuplicateTrackingNumber
	// so callers can regenerate and retry.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists changes to an existing parcel aggregate without any
	// concurrency guard. Used for fields that tolerate last-writer-wins,
	// such as routes and delivery estimates.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// UpdateWithStatusGuard persists the aggregate only if the stored row is
	// still in the expected status. When a concurrent caller moved the
	// parcel first, no row matches and an InvalidStateError is returned,
	// so two callers can never both push a parcel through the same
	// transition.
	UpdateWithStatusGuard(ctx context.Context, aggregate *parcel.Parcel, expected parcel.Status) error

	// Get retrieves a parcel aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// GetByTrackingNumber retrieves a parcel by its public tracking number.
	GetByTrackingNumber(ctx context.Context, trackingNumber string) (*parcel.Parcel, error)

	// GetActiveByCourier retrieves every parcel currently assigned to the
	// courier in an active status (assigned, picked up, in transit or out
	// for delivery). Used by the shared route recomputation.
	GetActiveByCourier(ctx context.Context, courierID kernel.UUID) ([]*parcel.Parcel, error)
}
