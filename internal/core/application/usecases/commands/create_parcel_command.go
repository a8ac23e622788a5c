package commands

import (
	"errors"

	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/kernel"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/parcel"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/pkg/guard"
)

var ErrCreateParcelCommandIsNotConstructed = errors.New(
	"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
)

// CreateParcelCommand opens the fulfillment record for an order. Exactly one
// parcel exists per order; the shipping address is snapshotted at this moment
// and never changes afterwards.
//
// Example:
//
//	address, _ := parcel.NewAddress("Ayşe Yılmaz", "İzmir", "Konak", "Mithatpaşa Cd. 12", "35260")
//	cmd, err := NewCreateParcelCommand(kernel.NewUUID(), orderID, address)
//	if err != nil {
//	    return fmt.Errorf("invalid parcel data: %w", err)
//	}
//	trackingNumber, err := handler.Handle(ctx, cmd)
type CreateParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID
	orderID  kernel.UUID
	address  parcel.Address

	guard guard.ConstructorGuard
}

// NewCreateParcelCommand creates a command to open a parcel for an order.
// The address must already be a valid snapshot.
func NewCreateParcelCommand(parcelID, orderID kernel.UUID, address parcel.Address) (CreateParcelCommand, error) {
	command := CreateParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setParcelID(parcelID),
		command.setOrderID(orderID),
		command.setAddress(address),
	); err != nil {
		return CreateParcelCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

// ParcelID returns the identifier the new parcel will carry.
func (c CreateParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// OrderID returns the owning order.
func (c CreateParcelCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Address returns the shipping-address snapshot.
func (c CreateParcelCommand) Address() parcel.Address {
	return c.address
}

func (c *CreateParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *CreateParcelCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateParcelCommand) setAddress(address parcel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}

	c.address = address
	return nil
}
