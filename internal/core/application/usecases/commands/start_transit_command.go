package commands

import (
	"errors"

	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/kernel"
	"github.com/Salamjean/kksExpress-backend/internal/pkg/guard"
)

var ErrStartTransitCommandIsNotConstructed = errors.New(
	"StartTransitCommand must be created via NewStartTransitCommand constructor",
)

// StartTransitCommand represents a courier's signal that the package is
// on its way to the recipient.
type StartTransitCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartTransitCommand creates a command to move an order into transit.
func NewStartTransitCommand(orderID, courierID kernel.UUID) (StartTransitCommand, error) {
	transitCommand := StartTransitCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		transitCommand.setOrderID(orderID),
		transitCommand.setCourierID(courierID),
	); err != nil {
		return StartTransitCommand{}, err
	}

	return transitCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c StartTransitCommand) Validate() error {
	return c.guard.Validate(ErrStartTransitCommandIsNotConstructed)
}

// OrderID returns the identifier of the order entering transit.
func (c StartTransitCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CourierID returns the identifier of the carrying courier.
func (c StartTransitCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c *StartTransitCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *StartTransitCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}
