package order

import (
	"errors"

	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/kernel"
	"github.com/Salamjean/kksExpress-backend/internal/pkg/errs"
	"github.com/Salamjean/kksExpress-backend/internal/pkg/guard"
)

// ErrCourierInfoIsNotConstructed is returned when using an improperly initialized CourierInfo.
var ErrCourierInfoIsNotConstructed = errors.New("CourierInfo must be created via NewCourierInfo constructor")

// CourierInfo is the courier snapshot carried on an order once a courier
// accepts it. Identity fields are frozen at accept time; the position is
// live and refreshed while the order is in transit.
type CourierInfo struct {
	id       kernel.UUID
	name     string
	phone    string
	email    string
	position *kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewCourierInfo creates a courier snapshot. The position is optional at
// accept time, couriers that never reported a location have none.
func NewCourierInfo(id kernel.UUID, name, phone, email string, position *kernel.GeoPoint) (CourierInfo, error) {
	if err := id.Validate(); err != nil {
		return CourierInfo{}, err
	}
	if name == "" {
		return CourierInfo{}, errs.NewValueIsRequiredError("courier name")
	}
	if position != nil {
		if err := position.Validate(); err != nil {
			return CourierInfo{}, err
		}
	}

	return CourierInfo{
		id:       id,
		name:     name,
		phone:    phone,
		email:    email,
		position: position,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the CourierInfo was created through NewCourierInfo.
func (c CourierInfo) Validate() error {
	return c.guard.Validate(ErrCourierInfoIsNotConstructed)
}

// ID returns the courier's identifier.
func (c CourierInfo) ID() kernel.UUID { return c.id }

// Name returns the courier's name.
func (c CourierInfo) Name() string { return c.name }

// Phone returns the courier's phone number.
func (c CourierInfo) Phone() string { return c.phone }

// Email returns the courier's email, possibly empty.
func (c CourierInfo) Email() string { return c.email }

// Position returns the courier's last known position, nil when unknown.
func (c CourierInfo) Position() *kernel.GeoPoint { return c.position }

// WithPosition returns a copy of the snapshot carrying a fresh position.
func (c CourierInfo) WithPosition(position kernel.GeoPoint) (CourierInfo, error) {
	if err := position.Validate(); err != nil {
		return CourierInfo{}, err
	}
	c.position = &position
	return c, nil
}
