package commands

import (
	"errors"
	"strings"

	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/courier"
	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/kernel"
	"github.com/Salamjean/kksExpress-backend/internal/pkg/errs"
	"github.com/Salamjean/kksExpress-backend/internal/pkg/guard"
)

var ErrRegisterCourierCommandIsNotConstructed = errors.New(
	"RegisterCourierCommand must be created via NewRegisterCourierCommand constructor",
)

// RegisterCourierCommand represents a courier's application to join the
// platform.
type RegisterCourierCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	name      string
	phone     string
	email     string
	vehicle   courier.VehicleType

	guard guard.ConstructorGuard
}

// NewRegisterCourierCommand creates a command to register a new courier.
// Registered couriers start inactive and must be activated before they
// can accept orders.
func NewRegisterCourierCommand(
	courierID kernel.UUID,
	name string,
	phone string,
	email string,
	vehicle courier.VehicleType,
) (RegisterCourierCommand, error) {
	registerCommand := RegisterCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		registerCommand.setCourierID(courierID),
		registerCommand.setName(name),
		registerCommand.setPhone(phone),
		registerCommand.setEmail(email),
		registerCommand.setVehicle(vehicle),
	); err != nil {
		return RegisterCourierCommand{}, err
	}

	return registerCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterCourierCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCourierCommandIsNotConstructed)
}

// CourierID returns the identifier assigned to the new courier.
func (c RegisterCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Name returns the courier's full name.
func (c RegisterCourierCommand) Name() string {
	return c.name
}

// Phone returns the courier's phone number.
func (c RegisterCourierCommand) Phone() string {
	return c.phone
}

// Email returns the courier's email address.
func (c RegisterCourierCommand) Email() string {
	return c.email
}

// Vehicle returns the courier's declared vehicle type.
func (c RegisterCourierCommand) Vehicle() courier.VehicleType {
	return c.vehicle
}

func (c *RegisterCourierCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}

func (c *RegisterCourierCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *RegisterCourierCommand) setPhone(phone string) error {
	if strings.TrimSpace(phone) == "" {
		return errs.NewValueIsRequiredError("phone")
	}

	c.phone = phone
	return nil
}

func (c *RegisterCourierCommand) setEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return errs.NewValueIsRequiredError("email")
	}

	c.email = email
	return nil
}

func (c *RegisterCourierCommand) setVehicle(vehicle courier.VehicleType) error {
	if err := vehicle.Validate(); err != nil {
		return err
	}

	c.vehicle = vehicle
	return nil
}
