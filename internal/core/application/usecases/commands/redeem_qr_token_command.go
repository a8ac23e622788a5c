package commands

import (
	"errors"
	"strings"

	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/kernel"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/pkg/errs"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/pkg/guard"
)

var ErrRedeemQRTokenCommandIsNotConstructed = errors.New(
	"RedeemQRTokenCommand must be created via NewRedeemQRTokenCommand constructor",
)

// RedeemQRTokenCommand confirms a hand-over by redeeming the scanned QR
// token. The courier ID is optional; when present it must match the parcel's
// assigned courier.
//
// Example:
//
//	cmd, err := NewRedeemQRTokenCommand(scannedCode)
//	if err != nil {
//	    return err
//	}
//	cmd.WithCourier(courierID)
//	err = handler.Handle(ctx, cmd)
type RedeemQRTokenCommand struct { //nolint:recvcheck //using for validation
	code      string
	courierID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewRedeemQRTokenCommand creates a command to redeem a delivery token.
func NewRedeemQRTokenCommand(code string) (RedeemQRTokenCommand, error) {
	command := RedeemQRTokenCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setCode(code); err != nil {
		return RedeemQRTokenCommand{}, err
	}

	return command, nil
}

// WithCourier restricts redemption to the parcel's assigned courier.
func (c *RedeemQRTokenCommand) WithCourier(courierID kernel.UUID) {
	c.courierID = &courierID
}

// Validate ensures the command was created through the constructor.
func (c RedeemQRTokenCommand) Validate() error {
	return c.guard.Validate(ErrRedeemQRTokenCommandIsNotConstructed)
}

// Code returns the scanned token code.
func (c RedeemQRTokenCommand) Code() string {
	return c.code
}

// CourierID returns the redeeming courier, nil when not enforced.
func (c RedeemQRTokenCommand) CourierID() *kernel.UUID {
	return c.courierID
}

func (c *RedeemQRTokenCommand) setCode(code string) error {
	if strings.TrimSpace(code) == "" {
		return errs.NewValueIsRequiredError("code")
	}

	c.code = code
	return nil
}
