// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the delivery system.
//
// The package includes:
//   - RoutePlanner: a deterministic region-based route optimizer producing
//     the ordered city sequence a courier follows
//
// Domain services hold logic that does not naturally belong to a single
// aggregate root.
package services
