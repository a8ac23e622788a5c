package commands

import (
	"errors"

	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/kernel"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/pkg/guard"
)

var ErrGenerateQRTokenCommandIsNotConstructed = errors.New(
	"GenerateQRTokenCommand must be created via NewGenerateQRTokenCommand constructor",
)

// GenerateQRTokenCommand mints the single-use delivery QR token for a parcel
// on its final delivery run. Idempotent: an existing active token is returned
// unchanged.
//
// Example:
//
//	cmd, err := NewGenerateQRTokenCommand(parcelID)
//	if err != nil {
//	    return err
//	}
//	tok, err := handler.Handle(ctx, cmd)
type GenerateQRTokenCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGenerateQRTokenCommand creates a command to mint a delivery token.
func NewGenerateQRTokenCommand(parcelID kernel.UUID) (GenerateQRTokenCommand, error) {
	command := GenerateQRTokenCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setParcelID(parcelID); err != nil {
		return GenerateQRTokenCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c GenerateQRTokenCommand) Validate() error {
	return c.guard.Validate(ErrGenerateQRTokenCommandIsNotConstructed)
}

// ParcelID returns the parcel to mint for.
func (c GenerateQRTokenCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

func (c *GenerateQRTokenCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}
