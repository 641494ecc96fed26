package commands

import (
	"errors"

	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/kernel"
	"github.com/Salamjean/kksExpress-backend/internal/pkg/guard"
)

var ErrUpdateCourierPositionCommandIsNotConstructed = errors.New(
	"UpdateCourierPositionCommand must be created via NewUpdateCourierPositionCommand constructor",
)

// UpdateCourierPositionCommand represents a GPS position report from a
// courier's device.
type UpdateCourierPositionCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	position  kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewUpdateCourierPositionCommand creates a command carrying a courier's
// latest coordinates.
func NewUpdateCourierPositionCommand(courierID kernel.UUID, position kernel.GeoPoint) (UpdateCourierPositionCommand, error) {
	positionCommand := UpdateCourierPositionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		positionCommand.setCourierID(courierID),
		positionCommand.setPosition(position),
	); err != nil {
		return UpdateCourierPositionCommand{}, err
	}

	return positionCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCourierPositionCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCourierPositionCommandIsNotConstructed)
}

// CourierID returns the identifier of the reporting courier.
func (c UpdateCourierPositionCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Position returns the reported coordinates.
func (c UpdateCourierPositionCommand) Position() kernel.GeoPoint {
	return c.position
}

func (c *UpdateCourierPositionCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}

func (c *UpdateCourierPositionCommand) setPosition(position kernel.GeoPoint) error {
	if err := position.Validate(); err != nil {
		return err
	}

	c.position = position
	return nil
}
