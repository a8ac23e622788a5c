package commands

import (
	"errors"

	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/kernel"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/pkg/guard"
)

var ErrLogCourierLocationCommandIsNotConstructed = errors.New(
	"LogCourierLocationCommand must be created via NewLogCourierLocationCommand constructor",
)

// LogCourierLocationCommand records one GPS ping from a courier's device
// against the parcel being carried. Coordinates are validated and rounded at
// construction; accuracy, address, city and device info are optional raw
// device detail.
//
// Example:
//
//	cmd, err := NewLogCourierLocationCommand(parcelID, courierID, 40.1917, 29.0611)
//	if err != nil {
//	    return err  // coordinates out of range
//	}
//	cmd.WithAccuracy(12.5)
//	cmd.WithDeviceInfo("android/14")
//	err = handler.Handle(ctx, cmd)
type LogCourierLocationCommand struct { //nolint:recvcheck //using for validation
	parcelID   kernel.UUID
	courierID  kernel.UUID
	point      kernel.GeoPoint
	accuracy   *float64
	address    string
	city       string
	deviceInfo string

	guard guard.ConstructorGuard
}

// NewLogCourierLocationCommand creates a command to record a GPS ping.
// Latitude and longitude outside their valid ranges fail here.
func NewLogCourierLocationCommand(
	parcelID, courierID kernel.UUID,
	lat, lng float64,
) (LogCourierLocationCommand, error) {
	command := LogCourierLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	point, err := kernel.NewGeoPoint(lat, lng)
	if err != nil {
		return LogCourierLocationCommand{}, err
	}
	command.point = point

	if err := errors.Join(
		command.setParcelID(parcelID),
		command.setCourierID(courierID),
	); err != nil {
		return LogCourierLocationCommand{}, err
	}

	return command, nil
}

// WithAccuracy attaches the device-reported accuracy in meters.
func (c *LogCourierLocationCommand) WithAccuracy(accuracy float64) {
	c.accuracy = &accuracy
}

// WithAddress attaches the raw address reported by the device.
func (c *LogCourierLocationCommand) WithAddress(address string) {
	c.address = address
}

// WithCity attaches the city reported by the device.
func (c *LogCourierLocationCommand) WithCity(city string) {
	c.city = city
}

// WithDeviceInfo attaches a description of the reporting device.
func (c *LogCourierLocationCommand) WithDeviceInfo(deviceInfo string) {
	c.deviceInfo = deviceInfo
}

// Validate ensures the command was created through the constructor.
func (c LogCourierLocationCommand) Validate() error {
	return c.guard.Validate(ErrLogCourierLocationCommandIsNotConstructed)
}

// ParcelID returns the parcel being carried.
func (c LogCourierLocationCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// CourierID returns the reporting courier.
func (c LogCourierLocationCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Point returns the validated, rounded coordinates.
func (c LogCourierLocationCommand) Point() kernel.GeoPoint {
	return c.point
}

// Accuracy returns the device accuracy, nil when unreported.
func (c LogCourierLocationCommand) Accuracy() *float64 {
	return c.accuracy
}

// Address returns the raw device address, empty when absent.
func (c LogCourierLocationCommand) Address() string {
	return c.address
}

// City returns the device-reported city, empty when absent.
func (c LogCourierLocationCommand) City() string {
	return c.city
}

// DeviceInfo returns the device description, empty when absent.
func (c LogCourierLocationCommand) DeviceInfo() string {
	return c.deviceInfo
}

func (c *LogCourierLocationCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *LogCourierLocationCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}
