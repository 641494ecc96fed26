package commands

import (
	"errors"

	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/kernel"
	"github.com/Salamjean/kksExpress-backend/internal/pkg/errs"
	"github.com/Salamjean/kksExpress-backend/internal/pkg/guard"
)

var ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
	"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
)

// CompleteDeliveryCommand represents the final handover: the courier
// submits the confirmation code received from the recipient.
type CompleteDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	courierID        kernel.UUID
	confirmationCode string

	guard guard.ConstructorGuard
}

// NewCompleteDeliveryCommand creates a command to close out a delivery.
// The confirmation code is required; its correctness is checked against
// the order by the handler.
func NewCompleteDeliveryCommand(orderID, courierID kernel.UUID, confirmationCode string) (CompleteDeliveryCommand, error) {
	deliveryCommand := CompleteDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		deliveryCommand.setOrderID(orderID),
		deliveryCommand.setCourierID(courierID),
		deliveryCommand.setConfirmationCode(confirmationCode),
	); err != nil {
		return CompleteDeliveryCommand{}, err
	}

	return deliveryCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being delivered.
func (c CompleteDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CourierID returns the identifier of the delivering courier.
func (c CompleteDeliveryCommand) CourierID() kernel.UUID {
	return c.courierID
}

// ConfirmationCode returns the code the recipient handed to the courier.
func (c CompleteDeliveryCommand) ConfirmationCode() string {
	return c.confirmationCode
}

func (c *CompleteDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CompleteDeliveryCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}

func (c *CompleteDeliveryCommand) setConfirmationCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("confirmation code")
	}

	c.confirmationCode = code
	return nil
}
