package commands

import (
	"errors"

	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/kernel"
	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/payment"
	"github.com/Salamjean/kksExpress-backend/internal/pkg/errs"
	"github.com/Salamjean/kksExpress-backend/internal/pkg/guard"
)

var ErrInitiateMobilePaymentCommandIsNotConstructed = errors.New(
	"InitiateMobilePaymentCommand must be created via NewInitiateMobilePaymentCommand constructor",
)

// InitiateMobilePaymentCommand represents a courier starting a
// mobile-money payment toward the daily quota.
type InitiateMobilePaymentCommand struct { //nolint:recvcheck //using for validation
	paymentID   kernel.UUID
	courierID   kernel.UUID
	amount      kernel.Money
	method      payment.Method
	phoneUsed   string
	description string

	guard guard.ConstructorGuard
}

// NewInitiateMobilePaymentCommand creates a command to open a
// mobile-money checkout. The method must be a mobile one and the phone
// number to charge is required.
func NewInitiateMobilePaymentCommand(
	paymentID kernel.UUID,
	courierID kernel.UUID,
	amount kernel.Money,
	method payment.Method,
	phoneUsed string,
	description string,
) (InitiateMobilePaymentCommand, error) {
	mobileCommand := InitiateMobilePaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		mobileCommand.setPaymentID(paymentID),
		mobileCommand.setCourierID(courierID),
		mobileCommand.setAmount(amount),
		mobileCommand.setMethod(method),
		mobileCommand.setPhoneUsed(phoneUsed),
	); err != nil {
		return InitiateMobilePaymentCommand{}, err
	}

	mobileCommand.description = description

	return mobileCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c InitiateMobilePaymentCommand) Validate() error {
	return c.guard.Validate(ErrInitiateMobilePaymentCommandIsNotConstructed)
}

// PaymentID returns the identifier for the new payment row.
func (c InitiateMobilePaymentCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

// CourierID returns the identifier of the paying courier.
func (c InitiateMobilePaymentCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Amount returns the amount to charge.
func (c InitiateMobilePaymentCommand) Amount() kernel.Money {
	return c.amount
}

// Method returns the mobile-money operator to charge through.
func (c InitiateMobilePaymentCommand) Method() payment.Method {
	return c.method
}

// PhoneUsed returns the phone number to charge.
func (c InitiateMobilePaymentCommand) PhoneUsed() string {
	return c.phoneUsed
}

// Description returns the optional free-form note for the row.
func (c InitiateMobilePaymentCommand) Description() string {
	return c.description
}

func (c *InitiateMobilePaymentCommand) setPaymentID(paymentID kernel.UUID) error {
	if err := paymentID.Validate(); err != nil {
		return err
	}

	c.paymentID = paymentID
	return nil
}

func (c *InitiateMobilePaymentCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}

func (c *InitiateMobilePaymentCommand) setAmount(amount kernel.Money) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidError("amount must be greater than zero")
	}

	c.amount = amount
	return nil
}

func (c *InitiateMobilePaymentCommand) setMethod(method payment.Method) error {
	if err := method.Validate(); err != nil {
		return err
	}
	if !method.IsMobile() {
		return errs.NewValueIsInvalidError("method is not a mobile payment method")
	}

	c.method = method
	return nil
}

func (c *InitiateMobilePaymentCommand) setPhoneUsed(phoneUsed string) error {
	if phoneUsed == "" {
		return errs.NewValueIsRequiredError("phone number")
	}

	c.phoneUsed = phoneUsed
	return nil
}
