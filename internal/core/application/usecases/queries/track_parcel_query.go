package queries

import (
	"errors"
	"strings"
	"time"

	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/pkg/errs"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/pkg/guard"
)

var ErrTrackParcelQueryIsNotConstructed = errors.New(
	"TrackParcelQuery must be created via NewTrackParcelQuery constructor",
)

// TrackParcelQuery looks a parcel up by its public tracking number. This is
// the customer-facing read, so the response carries the masked recipient
// name and never exposes internal identifiers.
//
// Example:
//
//	query, err := NewTrackParcelQuery("TRK20260901XYZ123")
//	if err != nil {
//	    return err
//	}
//	snapshot, err := handler.Handle(ctx, query)
type TrackParcelQuery struct { //nolint:recvcheck //using for validation
	trackingNumber string

	guard guard.ConstructorGuard
}

// NewTrackParcelQuery creates a tracking lookup for the given number.
func NewTrackParcelQuery(trackingNumber string) (TrackParcelQuery, error) {
	query := TrackParcelQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setTrackingNumber(trackingNumber); err != nil {
		return TrackParcelQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackParcelQuery) Validate() error {
	return q.guard.Validate(ErrTrackParcelQueryIsNotConstructed)
}

// TrackingNumber returns the number being looked up.
func (q TrackParcelQuery) TrackingNumber() string {
	return q.trackingNumber
}

func (q *TrackParcelQuery) setTrackingNumber(trackingNumber string) error {
	if strings.TrimSpace(trackingNumber) == "" {
		return errs.NewValueIsRequiredError("trackingNumber")
	}

	q.trackingNumber = trackingNumber
	return nil
}

// TrackParcelQueryResponse is the customer-visible shipment snapshot plus
// its event history, oldest first.
type TrackParcelQueryResponse struct {
	TrackingNumber    string
	Status            string
	OrderStatus       string
	RecipientName     string
	DestinationCity   string
	RouteCities       []string
	CurrentCity       string
	EstimatedDelivery *time.Time
	ActualDelivery    *time.Time
	Events            []TrackParcelEventResponse
}

// TrackParcelEventResponse is one entry of the public tracking feed.
type TrackParcelEventResponse struct {
	Type        string
	Description string
	Location    string
	OccurredAt  time.Time
}
