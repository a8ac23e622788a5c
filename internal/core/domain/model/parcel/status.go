package parcel

import (
	"fmt"

	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/pkg/errs"
)

// Status represents the lifecycle state of a parcel.
// It implements a state machine with defined transitions so parcels always
// follow the physical fulfillment workflow.
//
// State transitions:
//
//	Created ──> Assigned ──> PickedUp ──> InTransit ──> OutForDelivery ──> Delivered
//	   │            │            │             │               │
//	   └─> Cancelled┘            └──> Returned └──> Returned   └──> Returned
//
// Delivered, Cancelled, and Returned are terminal: no outgoing transitions.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusCreated is the initial status when a parcel record is opened for an order.
	StatusCreated

	// StatusAssigned indicates a courier has been assigned to the parcel.
	StatusAssigned

	// StatusPickedUp indicates the courier collected the parcel from the warehouse.
	StatusPickedUp

	// StatusInTransit indicates the parcel is moving between transfer hubs.
	StatusInTransit

	// StatusOutForDelivery indicates the parcel is on the courier's final delivery run.
	StatusOutForDelivery

	// StatusDelivered indicates physical delivery was confirmed. Terminal.
	StatusDelivered

	// StatusCancelled indicates the shipment was cancelled before pickup. Terminal.
	StatusCancelled

	// StatusReturned indicates the parcel is being returned to the sender. Terminal.
	StatusReturned
)

func statusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:        "UNKNOWN",
		StatusCreated:        "CREATED",
		StatusAssigned:       "ASSIGNED",
		StatusPickedUp:       "PICKED_UP",
		StatusInTransit:      "IN_TRANSIT",
		StatusOutForDelivery: "OUT_FOR_DELIVERY",
		StatusDelivered:      "DELIVERED",
		StatusCancelled:      "CANCELLED",
		StatusReturned:       "RETURNED",
	}
}

// statusTransitions is the full legal-transition table.
// Any (from, to) pair absent from this table is rejected.
func statusTransitions() map[Status][]Status {
	return map[Status][]Status{
		StatusCreated:        {StatusAssigned, StatusCancelled},
		StatusAssigned:       {StatusPickedUp, StatusCancelled},
		StatusPickedUp:       {StatusInTransit, StatusReturned},
		StatusInTransit:      {StatusOutForDelivery, StatusReturned},
		StatusOutForDelivery: {StatusDelivered, StatusReturned},
	}
}

// ParseStatus converts a wire/database string into a Status.
// Returns an error for strings that name no valid status.
func ParseStatus(s string) (Status, error) {
	for status, str := range statusStrings() {
		if str == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid parcel status", s))
}

// Validate checks if the Status value is a defined, non-Unknown status.
func (s Status) Validate() error {
	if s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid status", int(s)))
	}
	if _, ok := statusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid status", int(s)))
	}
	return nil
}

// String returns the wire representation of the status.
// This method implements the fmt.Stringer interface and is safe to call on
// any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled || s == StatusReturned
}

// IsActive reports whether a parcel in this status is on an active delivery
// run, i.e. participates in courier route recomputation.
func (s Status) IsActive() bool {
	switch s {
	case StatusAssigned, StatusPickedUp, StatusInTransit, StatusOutForDelivery:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the transition table permits moving from
// this status to the target.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range statusTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo validates the transition and returns the new status.
//
// Returns:
//   - (target, nil) when the transition table permits the move
//   - (0, InvalidStateError) for any pair absent from the table, including
//     every transition out of a terminal status
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}
	if !s.CanTransitionTo(target) {
		return 0, errs.NewInvalidStateErrorWithCause(
			"parcel status",
			fmt.Errorf("no transition from %s to %s", s, target),
		)
	}
	return target, nil
}

// Order statuses the parcel lifecycle projects onto the owning order.
const (
	OrderStatusConfirmed = "CONFIRMED"
	OrderStatusPreparing = "PREPARING"
	OrderStatusShipped   = "SHIPPED"
	OrderStatusDelivered = "DELIVERED"
	OrderStatusCancelled = "CANCELLED"
)

// OrderStatusFor maps a parcel status onto the status the owning order should
// carry. Every valid parcel status has a projection.
func OrderStatusFor(s Status) (string, error) {
	switch s {
	case StatusCreated, StatusAssigned:
		return OrderStatusConfirmed, nil
	case StatusPickedUp, StatusInTransit:
		return OrderStatusPreparing, nil
	case StatusOutForDelivery:
		return OrderStatusShipped, nil
	case StatusDelivered:
		return OrderStatusDelivered, nil
	case StatusCancelled, StatusReturned:
		return OrderStatusCancelled, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d has no order projection", int(s)))
	}
}
