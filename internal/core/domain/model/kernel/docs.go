// Package kernel contains shared value objects used across the domain model.
//
// It provides:
//   - UUID: a validated wrapper around github.com/google/uuid used as the
//     identifier type for all aggregates
//   - GeoPoint: a WGS84 coordinate pair with range validation and the fixed
//     rounding applied to courier GPS fixes
//
// All value objects in this package are immutable and must be created through
// their constructor functions.
package kernel
