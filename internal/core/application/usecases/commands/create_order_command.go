package commands

import (
	"errors"

	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/kernel"
	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/order"
	"github.com/Salamjean/kksExpress-backend/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to register a new delivery order.
// Carries the already validated sender, recipient and package value objects
// plus an optional delivery fee override.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, sender, recipient, pkg, kernel.ZeroMoney())
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, policy)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	sender    order.Sender
	recipient order.Recipient
	pkg       order.Package
	fee       kernel.Money

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new delivery order.
// A zero fee means the policy default fee applies.
// Returns an error if any of the value objects fails validation.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	sender order.Sender,
	recipient order.Recipient,
	pkg order.Package,
	fee kernel.Money,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setSender(sender),
		orderCommand.setRecipient(recipient),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	orderCommand.pkg = pkg
	orderCommand.fee = fee

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Sender returns the sender contact details.
func (c CreateOrderCommand) Sender() order.Sender {
	return c.sender
}

// Recipient returns the recipient contact and destination details.
func (c CreateOrderCommand) Recipient() order.Recipient {
	return c.recipient
}

// Package returns the package description.
func (c CreateOrderCommand) Package() order.Package {
	return c.pkg
}

// Fee returns the requested delivery fee. Zero means the default applies.
func (c CreateOrderCommand) Fee() kernel.Money {
	return c.fee
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setSender(sender order.Sender) error {
	if err := sender.Validate(); err != nil {
		return err
	}

	c.sender = sender
	return nil
}

func (c *CreateOrderCommand) setRecipient(recipient order.Recipient) error {
	if err := recipient.Validate(); err != nil {
		return err
	}

	c.recipient = recipient
	return nil
}
