package parcel

import (
	"errors"
	"fmt"

	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/pkg/errs"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when attempting to use an improperly initialized Address.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress constructor")

// Address is the shipping-address snapshot copied onto a parcel at creation.
// It deliberately duplicates the order's address: later edits to the customer
// address book must not change where an in-flight parcel is heading.
type Address struct { //nolint:recvcheck //using for validation
	recipientName string
	city          string
	district      string
	street        string
	zipCode       string
	guard         guard.ConstructorGuard
}

// NewAddress creates an address snapshot. Recipient name and city are
// required; the remaining fields are free-form and may be empty.
func NewAddress(recipientName, city, district, street, zipCode string) (Address, error) {
	address := Address{
		district: district,
		street:   street,
		zipCode:  zipCode,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		address.setRecipientName(recipientName),
		address.setCity(city),
	); err != nil {
		return Address{}, err
	}

	return address, nil
}

// Validate checks if the Address was properly constructed.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// RecipientName returns the name of the person receiving the parcel.
func (a Address) RecipientName() string {
	return a.recipientName
}

// City returns the destination city used for route planning.
func (a Address) City() string {
	return a.city
}

// District returns the destination district.
func (a Address) District() string {
	return a.district
}

// Street returns the free-form street line.
func (a Address) Street() string {
	return a.street
}

// ZipCode returns the postal code.
func (a Address) ZipCode() string {
	return a.zipCode
}

// String returns a single-line rendering for logs and events.
func (a Address) String() string {
	return fmt.Sprintf("%s, %s/%s", a.street, a.district, a.city)
}

func (a *Address) setRecipientName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("recipientName")
	}
	a.recipientName = name
	return nil
}

func (a *Address) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	a.city = city
	return nil
}
