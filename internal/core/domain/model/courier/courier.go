package courier

import (
	"errors"
	"strings"

	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/kernel"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/pkg/errs"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/pkg/guard"
)

// Domain errors for courier operations.
var (
	// ErrNameIsRequired is returned when attempting to create a courier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")
)

// Courier represents a delivery courier in the system.
// It is an aggregate root that manages courier identity and availability.
// The courier's moment-to-moment position is not part of this aggregate:
// GPS pings are recorded separately by the location tracker, keyed by the
// courier's ID.
//
// Business rules:
//   - Courier must have a valid UUID and a non-empty name
//   - Only active couriers can be assigned new parcels
type Courier struct {
	id     kernel.UUID
	name   string
	active bool
	guard  guard.ConstructorGuard
}

// NewCourier creates a new active Courier with the specified parameters.
// This is the only way to create a valid Courier instance.
func NewCourier(id kernel.UUID, name string) (*Courier, error) {
	courier := &Courier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		courier.setID(id),
		courier.setName(name),
	); err != nil {
		return nil, err
	}

	courier.active = true
	return courier, nil
}

// RestoreCourier reconstructs a Courier aggregate from persistent storage,
// including its availability flag.
func RestoreCourier(id kernel.UUID, name string, active bool) (*Courier, error) {
	courier, err := NewCourier(id, name)
	if err != nil {
		return nil, err
	}

	courier.active = active
	return courier, nil
}

// Validate checks if the Courier was properly constructed.
func (c *Courier) Validate() error {
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// IsEqual compares couriers by identity.
func (c *Courier) IsEqual(other *Courier) bool {
	return c.id.IsEqual(other.ID())
}

// ID returns the courier's unique identifier.
func (c *Courier) ID() kernel.UUID { return c.id }

// Name returns the courier's display name.
func (c *Courier) Name() string { return c.name }

// IsActive reports whether the courier can take new assignments.
func (c *Courier) IsActive() bool { return c.active }

// Deactivate takes the courier out of the assignment pool. Parcels already
// assigned stay with the courier.
func (c *Courier) Deactivate() error {
	if err := c.Validate(); err != nil {
		return err
	}

	c.active = false
	return nil
}

// Activate returns the courier to the assignment pool.
func (c *Courier) Activate() error {
	if err := c.Validate(); err != nil {
		return err
	}

	c.active = true
	return nil
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.id = id
	return nil
}

func (c *Courier) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}
