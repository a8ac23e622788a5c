package commands

import (
	"errors"

	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/kernel"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/parcel"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/pkg/guard"
)

var ErrUpdateParcelStatusCommandIsNotConstructed = errors.New(
	"UpdateParcelStatusCommand must be created via NewUpdateParcelStatusCommand constructor",
)

// UpdateParcelStatusCommand moves a parcel along its lifecycle. The target
// status must be reachable from the current one via the transition table.
// Location, coordinates, description override and actor are all optional.
//
// Example:
//
//	cmd, err := NewUpdateParcelStatusCommand(parcelID, parcel.StatusPickedUp)
//	if err != nil {
//	    return err
//	}
//	cmd.WithActor(courierID)
//	err = handler.Handle(ctx, cmd)
type UpdateParcelStatusCommand struct { //nolint:recvcheck //using for validation
	parcelID    kernel.UUID
	target      parcel.Status
	location    string
	point       *kernel.GeoPoint
	description string
	actorID     *kernel.UUID

	guard guard.ConstructorGuard
}

// NewUpdateParcelStatusCommand creates a command to transition a parcel.
func NewUpdateParcelStatusCommand(parcelID kernel.UUID, target parcel.Status) (UpdateParcelStatusCommand, error) {
	command := UpdateParcelStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setParcelID(parcelID),
		command.setTarget(target),
	); err != nil {
		return UpdateParcelStatusCommand{}, err
	}

	return command, nil
}

// WithLocation attaches a free-form place string to the resulting event.
func (c *UpdateParcelStatusCommand) WithLocation(location string) {
	c.location = location
}

// WithPoint attaches coordinates, forwarded to the location trail when the
// parcel has a courier.
func (c *UpdateParcelStatusCommand) WithPoint(point kernel.GeoPoint) {
	c.point = &point
}

// WithDescription overrides the auto-generated Turkish event text.
func (c *UpdateParcelStatusCommand) WithDescription(description string) {
	c.description = description
}

// WithActor records who triggered the change.
func (c *UpdateParcelStatusCommand) WithActor(actorID kernel.UUID) {
	c.actorID = &actorID
}

// Validate ensures the command was created through the constructor.
func (c UpdateParcelStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateParcelStatusCommandIsNotConstructed)
}

// ParcelID returns the parcel to transition.
func (c UpdateParcelStatusCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Target returns the requested status.
func (c UpdateParcelStatusCommand) Target() parcel.Status {
	return c.target
}

// Location returns the optional place string, empty when absent.
func (c UpdateParcelStatusCommand) Location() string {
	return c.location
}

// Point returns the optional coordinates, nil when absent.
func (c UpdateParcelStatusCommand) Point() *kernel.GeoPoint {
	return c.point
}

// Description returns the optional text override, empty when absent.
func (c UpdateParcelStatusCommand) Description() string {
	return c.description
}

// ActorID returns who triggered the change, nil when unknown.
func (c UpdateParcelStatusCommand) ActorID() *kernel.UUID {
	return c.actorID
}

func (c *UpdateParcelStatusCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *UpdateParcelStatusCommand) setTarget(target parcel.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
