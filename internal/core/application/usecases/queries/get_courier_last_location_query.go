package queries

import (
	"errors"
	"time"

	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/kernel"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/pkg/guard"
)

var ErrGetCourierLastLocationQueryIsNotConstructed = errors.New(
	"GetCourierLastLocationQuery must be created via NewGetCourierLastLocationQuery constructor",
)

// GetCourierLastLocationQuery retrieves the most recent GPS ping for a
// courier, optionally scoped to a single parcel.
//
// Example:
//
//	query, err := NewGetCourierLastLocationQuery(courierID)
//	if err != nil {
//	    return err
//	}
//	query.WithParcel(parcelID)
//	last, err := handler.Handle(ctx, query)
type GetCourierLastLocationQuery struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	parcelID  *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCourierLastLocationQuery creates a query for a courier's last ping.
func NewGetCourierLastLocationQuery(courierID kernel.UUID) (GetCourierLastLocationQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetCourierLastLocationQuery{}, err
	}

	return GetCourierLastLocationQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// WithParcel narrows the lookup to pings recorded against one parcel.
func (q *GetCourierLastLocationQuery) WithParcel(parcelID kernel.UUID) {
	q.parcelID = &parcelID
}

// Validate ensures the query was created through the constructor.
func (q GetCourierLastLocationQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierLastLocationQueryIsNotConstructed)
}

// CourierID returns the courier being located.
func (q GetCourierLastLocationQuery) CourierID() kernel.UUID {
	return q.courierID
}

// ParcelID returns the optional parcel scope, nil when absent.
func (q GetCourierLastLocationQuery) ParcelID() *kernel.UUID {
	return q.parcelID
}

// GetCourierLastLocationQueryResponse is the courier's freshest known
// position. Optional device detail is nil when the ping did not carry it.
type GetCourierLastLocationQueryResponse struct {
	CourierID  kernel.UUID
	ParcelID   *kernel.UUID
	Point      kernel.GeoPoint
	Accuracy   *float64
	Address    *string
	City       *string
	DeviceInfo *string
	RecordedAt time.Time
}
