package commands

import (
	"errors"

	"github.com/Salamjean/kksExpress-backend/internal/pkg/errs"
	"github.com/Salamjean/kksExpress-backend/internal/pkg/guard"
)

var ErrCancelPendingPaymentCommandIsNotConstructed = errors.New(
	"CancelPendingPaymentCommand must be created via NewCancelPendingPaymentCommand constructor",
)

// CancelPendingPaymentCommand represents a courier abandoning a
// mobile-money payment before the gateway settles it.
type CancelPendingPaymentCommand struct { //nolint:recvcheck //using for validation
	reference string

	guard guard.ConstructorGuard
}

// NewCancelPendingPaymentCommand creates a command to cancel a pending
// payment by its business reference.
func NewCancelPendingPaymentCommand(reference string) (CancelPendingPaymentCommand, error) {
	cancelCommand := CancelPendingPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cancelCommand.setReference(reference); err != nil {
		return CancelPendingPaymentCommand{}, err
	}

	return cancelCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelPendingPaymentCommand) Validate() error {
	return c.guard.Validate(ErrCancelPendingPaymentCommandIsNotConstructed)
}

// Reference returns the business reference of the payment to cancel.
func (c CancelPendingPaymentCommand) Reference() string {
	return c.reference
}

func (c *CancelPendingPaymentCommand) setReference(reference string) error {
	if reference == "" {
		return errs.NewValueIsRequiredError("payment reference")
	}

	c.reference = reference
	return nil
}
