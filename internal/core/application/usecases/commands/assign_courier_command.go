package commands

import (
	"errors"

	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/kernel"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/pkg/guard"
)

var ErrAssignCourierCommandIsNotConstructed = errors.New(
	"AssignCourierCommand must be created via NewAssignCourierCommand constructor",
)

// AssignCourierCommand puts a parcel into a courier's hands. Legal only while
// the parcel is still in its initial status; assignment also recomputes the
// shared route across every active parcel the courier carries.
//
// Example:
//
//	cmd, err := NewAssignCourierCommand(parcelID, courierID)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type AssignCourierCommand struct { //nolint:recvcheck //using for validation
	parcelID  kernel.UUID
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignCourierCommand creates a command to assign a courier to a parcel.
func NewAssignCourierCommand(parcelID, courierID kernel.UUID) (AssignCourierCommand, error) {
	command := AssignCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setParcelID(parcelID),
		command.setCourierID(courierID),
	); err != nil {
		return AssignCourierCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignCourierCommand) Validate() error {
	return c.guard.Validate(ErrAssignCourierCommandIsNotConstructed)
}

// ParcelID returns the parcel to assign.
func (c AssignCourierCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// CourierID returns the courier taking the parcel.
func (c AssignCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c *AssignCourierCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *AssignCourierCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}
