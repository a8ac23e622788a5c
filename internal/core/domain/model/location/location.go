package location

import (
	"errors"
	"time"

	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/kernel"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/pkg/guard"
)

// ErrCourierLocationIsNotConstructed is returned when using an improperly
// initialized CourierLocation.
var ErrCourierLocationIsNotConstructed = errors.New(
	"CourierLocation must be created via NewCourierLocation constructor")

// CourierLocation is one GPS ping from a courier's device. Rows are
// append-only: the courier's current position is simply the most recent row,
// optionally scoped to a parcel.
//
// Coordinates arrive already rounded (6 decimals for lat/lng, 2 for
// accuracy). Address, city and device info are whatever the device and the
// reverse geocoder could resolve, all optional.
type CourierLocation struct {
	id         kernel.UUID
	courierID  kernel.UUID
	parcelID   *kernel.UUID
	point      kernel.GeoPoint
	accuracy   *float64
	address    *string
	city       *string
	deviceInfo *string
	recordedAt time.Time
	guard      guard.ConstructorGuard
}

// NewCourierLocation records a fresh ping.
func NewCourierLocation(
	id kernel.UUID,
	courierID kernel.UUID,
	parcelID *kernel.UUID,
	point kernel.GeoPoint,
	recordedAt time.Time,
) (*CourierLocation, error) {
	if err := errors.Join(id.Validate(), courierID.Validate(), point.Validate()); err != nil {
		return nil, err
	}
	if parcelID != nil {
		if err := parcelID.Validate(); err != nil {
			return nil, err
		}
	}

	return &CourierLocation{
		id:         id,
		courierID:  courierID,
		parcelID:   parcelID,
		point:      point,
		recordedAt: recordedAt,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RestoreCourierLocation reconstructs a ping from persistent storage.
func RestoreCourierLocation(
	id kernel.UUID,
	courierID kernel.UUID,
	parcelID *kernel.UUID,
	point kernel.GeoPoint,
	accuracy *float64,
	address, city, deviceInfo *string,
	recordedAt time.Time,
) (*CourierLocation, error) {
	loc, err := NewCourierLocation(id, courierID, parcelID, point, recordedAt)
	if err != nil {
		return nil, err
	}

	loc.accuracy = accuracy
	loc.address = address
	loc.city = city
	loc.deviceInfo = deviceInfo
	return loc, nil
}

// Validate checks if the CourierLocation was properly constructed.
func (l *CourierLocation) Validate() error {
	return l.guard.Validate(ErrCourierLocationIsNotConstructed)
}

// ID returns the ping's unique identifier.
func (l *CourierLocation) ID() kernel.UUID { return l.id }

// CourierID returns the courier the ping belongs to.
func (l *CourierLocation) CourierID() kernel.UUID { return l.courierID }

// ParcelID returns the parcel the ping was reported for, or nil.
func (l *CourierLocation) ParcelID() *kernel.UUID { return l.parcelID }

// Point returns the rounded coordinates.
func (l *CourierLocation) Point() kernel.GeoPoint { return l.point }

// Accuracy returns the device-reported accuracy in meters, or nil.
func (l *CourierLocation) Accuracy() *float64 { return l.accuracy }

// Address returns the raw address reported by the device, or nil.
func (l *CourierLocation) Address() *string { return l.address }

// City returns the resolved or reported city, or nil.
func (l *CourierLocation) City() *string { return l.city }

// DeviceInfo returns the reporting device description, or nil.
func (l *CourierLocation) DeviceInfo() *string { return l.deviceInfo }

// RecordedAt returns when the ping was taken.
func (l *CourierLocation) RecordedAt() time.Time { return l.recordedAt }

// SetAccuracy attaches the rounded device accuracy.
func (l *CourierLocation) SetAccuracy(accuracy float64) { l.accuracy = &accuracy }

// SetAddress attaches the raw address.
func (l *CourierLocation) SetAddress(address string) { l.address = &address }

// SetCity attaches the resolved city.
func (l *CourierLocation) SetCity(city string) { l.city = &city }

// SetDeviceInfo attaches the reporting device description.
func (l *CourierLocation) SetDeviceInfo(deviceInfo string) { l.deviceInfo = &deviceInfo }
