package parcel

import (
	"errors"
	"fmt"
	"time"

	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/kernel"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/pkg/errs"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/pkg/guard"
)

// ErrParcelIsNotConstructed is returned when a Parcel instance was not created
// through the NewParcel or RestoreParcel constructors.
var ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel or RestoreParcel constructors")

// Parcel is the aggregate root of the physical fulfillment lifecycle.
// Exactly one parcel exists per order; it carries the shipping-address
// snapshot, the courier assignment, the computed route with its delivery
// progress, and the status state machine.
//
// Invariants enforced here:
//   - status transitions follow the transition table
//   - the route progress index never moves backwards
//   - a DELIVERED parcel can never be soft-deleted
//   - the address snapshot is immutable after construction
type Parcel struct {
	id                kernel.UUID
	trackingNumber    string
	orderID           kernel.UUID
	status            Status
	courierID         *kernel.UUID
	address           Address
	route             *Route
	estimatedDelivery *time.Time
	actualDelivery    *time.Time
	deleted           bool
	guard             guard.ConstructorGuard
}

// NewParcel creates the parcel for an order when fulfillment begins.
// The parcel starts in CREATED status with no courier and no route; the
// tracking number is a fresh candidate that storage must collision-check.
func NewParcel(id kernel.UUID, orderID kernel.UUID, trackingNumber string, address Address) (*Parcel, error) {
	p := &Parcel{
		status: StatusCreated,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setOrderID(orderID),
		p.setTrackingNumber(trackingNumber),
		p.setAddress(address),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreParcel reconstructs a parcel aggregate from persistence, preserving
// its full operational state.
func RestoreParcel(
	id kernel.UUID,
	orderID kernel.UUID,
	trackingNumber string,
	status Status,
	courierID *kernel.UUID,
	address Address,
	route *Route,
	estimatedDelivery *time.Time,
	actualDelivery *time.Time,
	deleted bool,
) (*Parcel, error) {
	p := &Parcel{
		courierID:         courierID,
		route:             route,
		estimatedDelivery: estimatedDelivery,
		actualDelivery:    actualDelivery,
		deleted:           deleted,
		guard:             guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setOrderID(orderID),
		p.setTrackingNumber(trackingNumber),
		p.setAddress(address),
		p.setStatus(status),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Parcel instance was properly constructed.
func (p *Parcel) Validate() error {
	if p == nil {
		return ErrParcelIsNotConstructed
	}
	return p.guard.Validate(ErrParcelIsNotConstructed)
}

// IsEqual compares two parcels by their unique identifiers.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the parcel's unique identifier.
func (p *Parcel) ID() kernel.UUID { return p.id }

// TrackingNumber returns the globally unique tracking number.
func (p *Parcel) TrackingNumber() string { return p.trackingNumber }

// OrderID returns the owning order's identifier.
func (p *Parcel) OrderID() kernel.UUID { return p.orderID }

// Status returns the current lifecycle status.
func (p *Parcel) Status() Status { return p.status }

// CourierID returns the assigned courier's ID, nil when unassigned.
func (p *Parcel) CourierID() *kernel.UUID { return p.courierID }

// Address returns the immutable shipping-address snapshot.
func (p *Parcel) Address() Address { return p.address }

// Route returns the computed route, nil before the first recomputation.
func (p *Parcel) Route() *Route { return p.route }

// EstimatedDelivery returns the estimated delivery timestamp, nil when unset.
func (p *Parcel) EstimatedDelivery() *time.Time { return p.estimatedDelivery }

// ActualDelivery returns the confirmed delivery timestamp, nil until DELIVERED.
func (p *Parcel) ActualDelivery() *time.Time { return p.actualDelivery }

// IsDeleted reports whether the parcel carries the soft-delete tombstone.
// Every read path must treat tombstoned parcels as absent.
func (p *Parcel) IsDeleted() bool { return p.deleted }

// ChangeStatus moves the parcel through the state machine. Transitioning to
// DELIVERED stamps the actual delivery time with now.
//
// Returns an InvalidStateError for any pair the transition table rejects,
// including every transition out of a terminal state.
func (p *Parcel) ChangeStatus(target Status, now time.Time) error {
	if err := p.Validate(); err != nil {
		return err
	}

	newStatus, err := p.status.TransitionTo(target)
	if err != nil {
		return err
	}

	p.status = newStatus
	if newStatus == StatusDelivered {
		delivered := now
		p.actualDelivery = &delivered
	}
	return nil
}

// AssignCourier assigns the courier and moves the parcel to ASSIGNED,
// enforced through the same transition table (legal only from CREATED).
func (p *Parcel) AssignCourier(courierID kernel.UUID, now time.Time) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if err := p.ChangeStatus(StatusAssigned, now); err != nil {
		return err
	}

	p.courierID = &courierID
	return nil
}

// SetRoute replaces the parcel's route with a freshly computed one.
// Progress resets to the origin; the previous route is returned so callers
// can record old vs new in the route event.
func (p *Parcel) SetRoute(route Route) (*Route, error) {
	if err := errors.Join(p.Validate(), route.Validate()); err != nil {
		return nil, err
	}

	previous := p.route
	p.route = &route
	return previous, nil
}

// AdvanceRoute moves the route progress forward to the given city when it is
// a not-yet-reached route stop. Progress never moves backwards. Reports
// whether the index advanced; a parcel without a route reports false.
func (p *Parcel) AdvanceRoute(city string) (bool, error) {
	if err := p.Validate(); err != nil {
		return false, err
	}
	if p.route == nil {
		return false, nil
	}

	advanced, moved, err := p.route.Advance(city)
	if err != nil {
		return false, err
	}
	if moved {
		p.route = &advanced
	}
	return moved, nil
}

// SetEstimatedDelivery stamps the planner's delivery estimate.
func (p *Parcel) SetEstimatedDelivery(at time.Time) error {
	if err := p.Validate(); err != nil {
		return err
	}
	p.estimatedDelivery = &at
	return nil
}

// MarkDeleted places the soft-delete tombstone on the parcel.
// A DELIVERED parcel can never be deleted; deleting twice is rejected.
func (p *Parcel) MarkDeleted() error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.status == StatusDelivered {
		return errs.NewInvalidStateErrorWithCause(
			"parcel", errors.New("a delivered parcel cannot be deleted"))
	}
	if p.deleted {
		return errs.NewInvalidStateErrorWithCause(
			"parcel", errors.New("parcel is already deleted"))
	}

	p.deleted = true
	return nil
}

func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Parcel) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return fmt.Errorf("orderId: %w", err)
	}
	p.orderID = orderID
	return nil
}

func (p *Parcel) setTrackingNumber(trackingNumber string) error {
	if err := ValidateTrackingNumber(trackingNumber); err != nil {
		return err
	}
	p.trackingNumber = trackingNumber
	return nil
}

func (p *Parcel) setAddress(address Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	p.address = address
	return nil
}

func (p *Parcel) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	p.status = status
	return nil
}
