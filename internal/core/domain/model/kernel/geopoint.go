package kernel

import (
	"errors"
	"fmt"
	"math"

	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/pkg/errs"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/pkg/guard"
)

const (
	// LatitudeMin is the minimum valid WGS84 latitude.
	LatitudeMin = -90.0
	// LatitudeMax is the maximum valid WGS84 latitude.
	LatitudeMax = 90.0
	// LongitudeMin is the minimum valid WGS84 longitude.
	LongitudeMin = -180.0
	// LongitudeMax is the maximum valid WGS84 longitude.
	LongitudeMax = 180.0

	// coordinatePrecision is the number of decimals coordinates are stored with.
	// Six decimals is roughly 11cm of ground resolution, more than any courier
	// handset reports reliably.
	coordinatePrecision = 6

	// Bounding box of Türkiye. Fixes outside it are accepted but flagged,
	// since couriers occasionally report fixes from border regions or with
	// degraded GPS.
	turkeyLatMin = 35.0
	turkeyLatMax = 43.0
	turkeyLngMin = 25.0
	turkeyLngMax = 45.0
)

// ErrGeoPointIsNotConstructed is returned when attempting to use an improperly initialized GeoPoint.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint constructor")

// GeoPoint represents a WGS84 coordinate pair with validated ranges.
// GeoPoint is an immutable value object; coordinates are rounded to six
// decimals on construction so equal fixes compare equal after persistence.
// The zero value of GeoPoint is invalid - use the constructor to create instances.
//
// Example:
//
//	point, err := kernel.NewGeoPoint(40.782905, 29.921547)
//	if err != nil {
//	    // handle out-of-range coordinates
//	}
type GeoPoint struct { //nolint:recvcheck //using for validation
	lat   float64
	lng   float64
	guard guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint from raw latitude/longitude values.
// Latitude must be within [-90, 90] and longitude within [-180, 180];
// out-of-range values are rejected with a ValueIsOutOfRangeError.
// Accepted coordinates are rounded to six decimals.
func NewGeoPoint(lat float64, lng float64) (GeoPoint, error) {
	point := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(point.setLat(lat), point.setLng(lng)); err != nil {
		return GeoPoint{}, err
	}

	return point, nil
}

// Validate checks if the GeoPoint was properly constructed using the constructor.
// The zero value of GeoPoint is invalid and will fail this validation.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Lat returns the latitude, rounded to six decimals.
func (p GeoPoint) Lat() float64 {
	return p.lat
}

// Lng returns the longitude, rounded to six decimals.
func (p GeoPoint) Lng() float64 {
	return p.lng
}

// String returns a human-readable representation of the point.
// This method implements the fmt.Stringer interface.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%.6f,%.6f)", p.lat, p.lng)
}

// IsEqual compares two geo points for equality.
// Both points must be properly constructed for the comparison to succeed.
func (p GeoPoint) IsEqual(other GeoPoint) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p.lat == other.lat && p.lng == other.lng, nil
}

// InTurkey reports whether the point falls inside the national bounding box.
// Points outside are still valid coordinates; callers only use this to flag
// suspicious fixes.
func (p GeoPoint) InTurkey() bool {
	return p.lat >= turkeyLatMin && p.lat <= turkeyLatMax &&
		p.lng >= turkeyLngMin && p.lng <= turkeyLngMax
}

// RoundAccuracy normalizes a reported GPS accuracy (meters) to two decimals.
func RoundAccuracy(accuracy float64) float64 {
	return math.Round(accuracy*100) / 100
}

// setLat sets the latitude with validation.
// Note: pointer receiver on a value-object setter enables self-encapsulated
// validation during construction, mirroring the other kernel value objects.
func (p *GeoPoint) setLat(lat float64) error {
	if lat < LatitudeMin || lat > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", lat, LatitudeMin, LatitudeMax)
	}

	p.lat = roundCoordinate(lat)
	return nil
}

// setLng sets the longitude with validation.
func (p *GeoPoint) setLng(lng float64) error {
	if lng < LongitudeMin || lng > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", lng, LongitudeMin, LongitudeMax)
	}

	p.lng = roundCoordinate(lng)
	return nil
}

func roundCoordinate(v float64) float64 {
	factor := math.Pow10(coordinatePrecision)
	return math.Round(v*factor) / factor
}
