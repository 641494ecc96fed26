package commands

import (
	"errors"

	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/kernel"
	"github.com/Salamjean/kksExpress-backend/internal/pkg/errs"
	"github.com/Salamjean/kksExpress-backend/internal/pkg/guard"
)

var ErrRecordCashPaymentCommandIsNotConstructed = errors.New(
	"RecordCashPaymentCommand must be created via NewRecordCashPaymentCommand constructor",
)

// RecordCashPaymentCommand represents cash handed over at the office
// against a courier's daily quota.
type RecordCashPaymentCommand struct { //nolint:recvcheck //using for validation
	paymentID   kernel.UUID
	courierID   kernel.UUID
	amount      kernel.Money
	description string

	guard guard.ConstructorGuard
}

// NewRecordCashPaymentCommand creates a command to record a cash payment.
// The amount must be strictly positive.
func NewRecordCashPaymentCommand(
	paymentID kernel.UUID,
	courierID kernel.UUID,
	amount kernel.Money,
	description string,
) (RecordCashPaymentCommand, error) {
	cashCommand := RecordCashPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cashCommand.setPaymentID(paymentID),
		cashCommand.setCourierID(courierID),
		cashCommand.setAmount(amount),
	); err != nil {
		return RecordCashPaymentCommand{}, err
	}

	cashCommand.description = description

	return cashCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordCashPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRecordCashPaymentCommandIsNotConstructed)
}

// PaymentID returns the identifier for the new payment row.
func (c RecordCashPaymentCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

// CourierID returns the identifier of the paying courier.
func (c RecordCashPaymentCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Amount returns the cash amount handed over.
func (c RecordCashPaymentCommand) Amount() kernel.Money {
	return c.amount
}

// Description returns the optional free-form note for the row.
func (c RecordCashPaymentCommand) Description() string {
	return c.description
}

func (c *RecordCashPaymentCommand) setPaymentID(paymentID kernel.UUID) error {
	if err := paymentID.Validate(); err != nil {
		return err
	}

	c.paymentID = paymentID
	return nil
}

func (c *RecordCashPaymentCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}

func (c *RecordCashPaymentCommand) setAmount(amount kernel.Money) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidError("amount must be greater than zero")
	}

	c.amount = amount
	return nil
}
