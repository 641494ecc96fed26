package commands

import (
	"errors"

	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/kernel"
	"github.com/Salamjean/kksExpress-backend/internal/pkg/guard"
)

var ErrPickUpOrderCommandIsNotConstructed = errors.New(
	"PickUpOrderCommand must be created via NewPickUpOrderCommand constructor",
)

// PickUpOrderCommand represents a courier's confirmation that the
// package was collected from the sender.
type PickUpOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewPickUpOrderCommand creates a command to mark an order as picked up.
func NewPickUpOrderCommand(orderID, courierID kernel.UUID) (PickUpOrderCommand, error) {
	pickUpCommand := PickUpOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		pickUpCommand.setOrderID(orderID),
		pickUpCommand.setCourierID(courierID),
	); err != nil {
		return PickUpOrderCommand{}, err
	}

	return pickUpCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c PickUpOrderCommand) Validate() error {
	return c.guard.Validate(ErrPickUpOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being picked up.
func (c PickUpOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CourierID returns the identifier of the courier collecting the package.
func (c PickUpOrderCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c *PickUpOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PickUpOrderCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}
