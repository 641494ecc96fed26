package commands

import (
	"errors"

	"github.com/Salamjean/kksExpress-backend/internal/pkg/errs"
	"github.com/Salamjean/kksExpress-backend/internal/pkg/guard"
)

var ErrConfirmMobilePaymentCommandIsNotConstructed = errors.New(
	"ConfirmMobilePaymentCommand must be created via NewConfirmMobilePaymentCommand constructor",
)

// ConfirmMobilePaymentCommand asks the system to poll the gateway for
// the verdict on a pending mobile-money payment.
type ConfirmMobilePaymentCommand struct { //nolint:recvcheck //using for validation
	reference string

	guard guard.ConstructorGuard
}

// NewConfirmMobilePaymentCommand creates a command to confirm a payment
// by its business reference.
func NewConfirmMobilePaymentCommand(reference string) (ConfirmMobilePaymentCommand, error) {
	confirmCommand := ConfirmMobilePaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := confirmCommand.setReference(reference); err != nil {
		return ConfirmMobilePaymentCommand{}, err
	}

	return confirmCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmMobilePaymentCommand) Validate() error {
	return c.guard.Validate(ErrConfirmMobilePaymentCommandIsNotConstructed)
}

// Reference returns the business reference of the payment to confirm.
func (c ConfirmMobilePaymentCommand) Reference() string {
	return c.reference
}

func (c *ConfirmMobilePaymentCommand) setReference(reference string) error {
	if reference == "" {
		return errs.NewValueIsRequiredError("payment reference")
	}

	c.reference = reference
	return nil
}
