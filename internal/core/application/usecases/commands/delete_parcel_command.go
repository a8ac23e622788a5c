package commands

import (
	"errors"

	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/kernel"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/pkg/guard"
)

var ErrDeleteParcelCommandIsNotConstructed = errors.New(
	"DeleteParcelCommand must be created via NewDeleteParcelCommand constructor",
)

// DeleteParcelCommand tombstones a parcel. Parcels are never physically
// removed, and a delivered parcel can never be deleted.
type DeleteParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteParcelCommand creates a command to soft-delete a parcel.
func NewDeleteParcelCommand(parcelID kernel.UUID) (DeleteParcelCommand, error) {
	command := DeleteParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setParcelID(parcelID); err != nil {
		return DeleteParcelCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteParcelCommand) Validate() error {
	return c.guard.Validate(ErrDeleteParcelCommandIsNotConstructed)
}

// ParcelID returns the parcel to tombstone.
func (c DeleteParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

func (c *DeleteParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}
