// Package parcel contains the parcel aggregate and its supporting value
// objects: the delivery status state machine, the computed route, the
// immutable shipping-address snapshot, the append-only lifecycle events, and
// the customer-facing description helpers (courier name masking, Turkish
// status texts).
//
// A parcel is created exactly once per order when fulfillment begins and is
// never physically deleted; terminal states and soft deletion are enforced by
// the aggregate itself.
package parcel
