package payment

import (
	"errors"
	"time"

	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/kernel"
	"github.com/Salamjean/kksExpress-backend/internal/pkg/errs"
	"github.com/Salamjean/kksExpress-backend/internal/pkg/guard"
)

// Domain errors for payment operations.
var (
	// ErrPaymentIsNotConstructed is returned when using an improperly initialized Payment.
	ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewCashPayment, NewMobilePayment or RestorePayment constructor")
	// ErrPhoneIsRequiredForMobile is returned when a mobile payment carries no phone number.
	ErrPhoneIsRequiredForMobile = errs.NewValueIsRequiredError("phone number for mobile payment")
)

// Payment represents one payment row of a courier's daily-quota ledger.
// It is an aggregate root: the lifecycle of a mobile payment (gateway
// confirmation, failure, cancellation) runs through it, and the
// reconciliation pass re-stamps its day audit fields.
//
// Business rules:
//   - Cash payments are Complete on creation, mobile payments start Pending
//   - Terminal statuses absorb: repeating a transition is a no-op,
//     crossing to a different terminal status is a conflict
//   - The courier identity fields are a snapshot frozen at creation
//   - Audit stamps (due, remaining, arrears, settlement) are rewritten by
//     the ledger re-stamp pass, everything else is immutable
type Payment struct {
	id           kernel.UUID
	reference    string
	courierID    kernel.UUID
	courierName  string
	courierPhone string

	amount    kernel.Money
	method    Method
	phoneUsed string

	status      Status
	paidOn      kernel.Date
	paidAt      time.Time
	description string

	// gatewayMessage holds the last gateway error text, empty otherwise.
	gatewayMessage string

	amountDueForDay kernel.Money
	remainingForDay kernel.Money
	arrears         kernel.Money
	daySettlement   Settlement

	guard guard.ConstructorGuard
}

// NewCashPayment records a cash payment handed over at the office. Cash
// is trusted, the row is Complete immediately.
func NewCashPayment(
	id kernel.UUID,
	reference string,
	courierID kernel.UUID,
	courierName, courierPhone string,
	amount kernel.Money,
	description string,
	at time.Time,
) (*Payment, error) {
	p, err := newPayment(id, reference, courierID, courierName, courierPhone, amount, MethodCash, "", description, at)
	if err != nil {
		return nil, err
	}

	p.status = StatusComplete
	return p, nil
}

// NewMobilePayment creates a Pending mobile-money payment awaiting
// gateway confirmation. The method must be a mobile one and the charged
// phone number is required.
func NewMobilePayment(
	id kernel.UUID,
	reference string,
	courierID kernel.UUID,
	courierName, courierPhone string,
	amount kernel.Money,
	method Method,
	phoneUsed string,
	description string,
	at time.Time,
) (*Payment, error) {
	if err := method.Validate(); err != nil {
		return nil, err
	}
	if !method.IsMobile() {
		return nil, errs.NewValueIsInvalidError("method is not a mobile payment method")
	}
	if phoneUsed == "" {
		return nil, ErrPhoneIsRequiredForMobile
	}

	p, err := newPayment(id, reference, courierID, courierName, courierPhone, amount, method, phoneUsed, description, at)
	if err != nil {
		return nil, err
	}

	p.status = StatusPending
	return p, nil
}

func newPayment(
	id kernel.UUID,
	reference string,
	courierID kernel.UUID,
	courierName, courierPhone string,
	amount kernel.Money,
	method Method,
	phoneUsed string,
	description string,
	at time.Time,
) (*Payment, error) {
	p := &Payment{
		daySettlement: SettlementPartial,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setReference(reference),
		p.setCourier(courierID, courierName),
		p.setAmount(amount),
		p.setPaidAt(at),
	); err != nil {
		return nil, err
	}

	p.courierPhone = courierPhone
	p.method = method
	p.phoneUsed = phoneUsed
	p.description = description
	return p, nil
}

// RestorePayment reconstructs a Payment from persistence, including its
// audit stamps.
func RestorePayment(
	id kernel.UUID,
	reference string,
	courierID kernel.UUID,
	courierName, courierPhone string,
	amount kernel.Money,
	method Method,
	phoneUsed string,
	status Status,
	paidOn kernel.Date,
	paidAt time.Time,
	description, gatewayMessage string,
	amountDueForDay, remainingForDay, arrears kernel.Money,
	daySettlement Settlement,
) (*Payment, error) {
	p := &Payment{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setReference(reference),
		p.setCourier(courierID, courierName),
		p.setAmount(amount),
		p.setPaidAt(paidAt),
		p.setStatus(status),
		p.setMethod(method),
		p.setDaySettlement(daySettlement),
	); err != nil {
		return nil, err
	}

	if !paidOn.IsZero() {
		p.paidOn = paidOn
	}
	p.courierPhone = courierPhone
	p.phoneUsed = phoneUsed
	p.description = description
	p.gatewayMessage = gatewayMessage
	p.amountDueForDay = amountDueForDay
	p.remainingForDay = remainingForDay
	p.arrears = arrears
	return p, nil
}

// Validate checks if the Payment was properly constructed.
func (p *Payment) Validate() error {
	if p == nil {
		return ErrPaymentIsNotConstructed
	}
	return p.guard.Validate(ErrPaymentIsNotConstructed)
}

// IsEqual compares two payments by their unique identifiers.
func (p *Payment) IsEqual(other *Payment) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the payment's unique identifier.
func (p *Payment) ID() kernel.UUID { return p.id }

// Reference returns the human-facing payment reference.
func (p *Payment) Reference() string { return p.reference }

// CourierID returns the paying courier's identifier.
func (p *Payment) CourierID() kernel.UUID { return p.courierID }

// CourierName returns the courier name frozen at creation.
func (p *Payment) CourierName() string { return p.courierName }

// CourierPhone returns the courier phone frozen at creation.
func (p *Payment) CourierPhone() string { return p.courierPhone }

// Amount returns the amount paid.
func (p *Payment) Amount() kernel.Money { return p.amount }

// Method returns the payment method.
func (p *Payment) Method() Method { return p.method }

// PhoneUsed returns the phone number charged, empty for cash.
func (p *Payment) PhoneUsed() string { return p.phoneUsed }

// Status returns the settlement state of the row.
func (p *Payment) Status() Status { return p.status }

// PaidOn returns the calendar day the payment posted to.
func (p *Payment) PaidOn() kernel.Date { return p.paidOn }

// PaidAt returns the clock time the payment posted.
func (p *Payment) PaidAt() time.Time { return p.paidAt }

// Description returns the free-form description, possibly empty.
func (p *Payment) Description() string { return p.description }

// GatewayMessage returns the last gateway error text, empty otherwise.
func (p *Payment) GatewayMessage() string { return p.gatewayMessage }

// AmountDueForDay returns the quota stamped for the payment's day.
func (p *Payment) AmountDueForDay() kernel.Money { return p.amountDueForDay }

// RemainingForDay returns the day shortfall stamped by the last re-stamp pass.
func (p *Payment) RemainingForDay() kernel.Money { return p.remainingForDay }

// Arrears returns the courier arrears snapshot stamped at the last re-stamp pass.
func (p *Payment) Arrears() kernel.Money { return p.arrears }

// DaySettlement returns the reconciliation stamp of the payment's day.
func (p *Payment) DaySettlement() Settlement { return p.daySettlement }

// Complete marks a Pending payment as received. Completing an already
// Complete payment is a no-op; a Failed or Cancelled one is a conflict.
func (p *Payment) Complete() error {
	if p.status == StatusComplete {
		return nil
	}
	if p.status != StatusPending {
		return errs.NewConflictError("payment is not pending")
	}

	p.status = StatusComplete
	p.gatewayMessage = ""
	return nil
}

// Fail marks a Pending payment as refused by the gateway, keeping the
// gateway's message for support. Failing an already Failed payment is a
// no-op; any other terminal status is a conflict.
func (p *Payment) Fail(gatewayMessage string) error {
	if p.status == StatusFailed {
		return nil
	}
	if p.status != StatusPending {
		return errs.NewConflictError("payment is not pending")
	}

	p.status = StatusFailed
	p.gatewayMessage = gatewayMessage
	return nil
}

// Cancel marks a Pending payment as abandoned by the payer. Cancelling
// an already Cancelled payment is a no-op; any other terminal status is
// a conflict.
func (p *Payment) Cancel() error {
	if p.status == StatusCancelled {
		return nil
	}
	if p.status != StatusPending {
		return errs.NewConflictError("payment is not pending")
	}

	p.status = StatusCancelled
	return nil
}

// StampDayAudit rewrites the audit fields from a freshly computed day
// ledger. The re-stamp pass calls this on every row of a day after any
// ledger change.
func (p *Payment) StampDayAudit(due, remaining, arrears kernel.Money, settlement Settlement) error {
	if err := settlement.Validate(); err != nil {
		return err
	}

	p.amountDueForDay = due
	p.remainingForDay = remaining
	p.arrears = arrears
	p.daySettlement = settlement
	return nil
}

func (p *Payment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Payment) setReference(reference string) error {
	if reference == "" {
		return errs.NewValueIsRequiredError("reference")
	}
	p.reference = reference
	return nil
}

func (p *Payment) setCourier(courierID kernel.UUID, courierName string) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if courierName == "" {
		return errs.NewValueIsRequiredError("courier name")
	}
	p.courierID = courierID
	p.courierName = courierName
	return nil
}

func (p *Payment) setAmount(amount kernel.Money) error {
	if !amount.IsPositive() {
		return errs.NewValueIsRequiredError("amount")
	}
	p.amount = amount
	return nil
}

func (p *Payment) setPaidAt(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("payment time")
	}
	p.paidAt = at
	p.paidOn = kernel.DateOf(at)
	return nil
}

func (p *Payment) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	p.status = status
	return nil
}

func (p *Payment) setMethod(method Method) error {
	if err := method.Validate(); err != nil {
		return err
	}
	p.method = method
	return nil
}

func (p *Payment) setDaySettlement(settlement Settlement) error {
	if err := settlement.Validate(); err != nil {
		return err
	}
	p.daySettlement = settlement
	return nil
}
