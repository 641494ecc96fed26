package order

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/kernel"
	"github.com/Salamjean/kksExpress-backend/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order represents a delivery order in the system. It is the aggregate root that manages
// the order lifecycle from creation through courier acceptance to delivery.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a non-empty business reference
//   - Sender and recipient snapshots are frozen at creation
//   - Status transitions follow the defined state machine
//   - The courier snapshot exists exactly when the status requires one
//   - Each lifecycle timestamp is set exactly once, by its transition
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	id        kernel.UUID
	reference string
	sender    Sender
	recipient Recipient
	pkg       Package
	fee       kernel.Money
	status    Status
	courier   *CourierInfo

	// confirmationCode is the 4-digit delivery code. Empty until pickup.
	confirmationCode string

	createdAt   time.Time
	acceptedAt  *time.Time
	pickedUpAt  *time.Time
	transitAt   *time.Time
	deliveredAt *time.Time
	cancelledAt *time.Time

	isConstructed bool
}

// NewOrder creates a new Order in Pending status.
//
// The sender and recipient snapshots must already be validated value
// objects; the fee must be positive. The reference is the business
// identifier printed on receipts (see kernel.NewOrderReference).
func NewOrder(
	id kernel.UUID,
	reference string,
	sender Sender,
	recipient Recipient,
	pkg Package,
	fee kernel.Money,
	createdAt time.Time,
) (*Order, error) {
	order := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setReference(reference),
		order.setSender(sender),
		order.setRecipient(recipient),
		order.setPackage(pkg),
		order.setFee(fee),
		order.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence. Unlike NewOrder it
// accepts any valid status together with the matching courier snapshot,
// confirmation code and lifecycle timestamps.
func RestoreOrder(
	id kernel.UUID,
	reference string,
	sender Sender,
	recipient Recipient,
	pkg Package,
	fee kernel.Money,
	status Status,
	courier *CourierInfo,
	confirmationCode string,
	createdAt time.Time,
	acceptedAt, pickedUpAt, transitAt, deliveredAt, cancelledAt *time.Time,
) (*Order, error) {
	order := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setReference(reference),
		order.setSender(sender),
		order.setRecipient(recipient),
		order.setPackage(pkg),
		order.setFee(fee),
		order.setStatus(status, courier),
		order.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	order.confirmationCode = confirmationCode
	order.acceptedAt = acceptedAt
	order.pickedUpAt = pickedUpAt
	order.transitAt = transitAt
	order.deliveredAt = deliveredAt
	order.cancelledAt = cancelledAt

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Reference returns the human-facing business reference.
func (o *Order) Reference() string {
	return o.reference
}

// Sender returns the sender contact snapshot.
func (o *Order) Sender() Sender {
	return o.sender
}

// Recipient returns the delivery destination.
func (o *Order) Recipient() Recipient {
	return o.recipient
}

// Package returns the package descriptors.
func (o *Order) Package() Package {
	return o.pkg
}

// Fee returns the delivery fee.
func (o *Order) Fee() kernel.Money {
	return o.fee
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Courier returns the courier snapshot, nil while the order is Pending
// or after cancellation.
func (o *Order) Courier() *CourierInfo {
	return o.courier
}

// ConfirmationCode returns the 4-digit delivery code, empty before pickup.
func (o *Order) ConfirmationCode() string {
	return o.confirmationCode
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// AcceptedAt returns when a courier accepted the order, nil before that.
func (o *Order) AcceptedAt() *time.Time { return o.acceptedAt }

// PickedUpAt returns when the package was collected, nil before that.
func (o *Order) PickedUpAt() *time.Time { return o.pickedUpAt }

// TransitAt returns when the delivery run started, nil before that.
func (o *Order) TransitAt() *time.Time { return o.transitAt }

// DeliveredAt returns when the recipient confirmed reception, nil before that.
func (o *Order) DeliveredAt() *time.Time { return o.deliveredAt }

// CancelledAt returns when the sender cancelled the order, nil otherwise.
func (o *Order) CancelledAt() *time.Time { return o.cancelledAt }

// Accept claims the order for a courier. The order must be Pending with
// no courier attached; the courier identity is frozen into the snapshot.
func (o *Order) Accept(courier CourierInfo, at time.Time) error {
	if err := courier.Validate(); err != nil {
		return err
	}
	if o.courier != nil {
		return errs.NewConflictError("order already has a courier")
	}

	newStatus, err := o.status.Accept()
	if err != nil {
		return errs.NewConflictErrorWithCause("order is not awaiting a courier", err)
	}

	o.status = newStatus
	o.courier = &courier
	o.acceptedAt = &at
	return nil
}

// PickUp marks the package as collected from the sender and generates the
// 4-digit confirmation code the recipient will need at delivery. The code
// is generated here, not at creation, so it never exists for orders that
// die in Pending.
func (o *Order) PickUp(at time.Time) error {
	newStatus, err := o.status.PickUp()
	if err != nil {
		return errs.NewConflictErrorWithCause("order is not accepted", err)
	}

	o.status = newStatus
	o.pickedUpAt = &at
	if o.confirmationCode == "" {
		o.confirmationCode = newConfirmationCode()
	}
	return nil
}

// StartTransit marks the delivery run as started.
func (o *Order) StartTransit(at time.Time) error {
	newStatus, err := o.status.StartTransit()
	if err != nil {
		return errs.NewConflictErrorWithCause("order is not picked up", err)
	}

	o.status = newStatus
	o.transitAt = &at
	return nil
}

// Deliver completes the order. When a confirmation code exists the caller
// must supply it: an empty code is a validation error, a wrong one a
// conflict.
func (o *Order) Deliver(confirmationCode string, at time.Time) error {
	if o.confirmationCode != "" {
		if confirmationCode == "" {
			return errs.NewValueIsRequiredError("confirmation code")
		}
		if confirmationCode != o.confirmationCode {
			return errs.NewConflictError("confirmation code does not match")
		}
	}

	newStatus, err := o.status.Deliver()
	if err != nil {
		return errs.NewConflictErrorWithCause("order is not in transit", err)
	}

	o.status = newStatus
	o.deliveredAt = &at
	return nil
}

// Cancel withdraws a Pending order. Orders a courier is already working
// on cannot be cancelled.
func (o *Order) Cancel(at time.Time) error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return errs.NewConflictErrorWithCause("order is not pending", err)
	}

	o.status = newStatus
	o.cancelledAt = &at
	return nil
}

// RefreshCourierPosition updates the courier snapshot with a fresh
// position. Only orders in transit track the courier; calls on any other
// status are rejected.
func (o *Order) RefreshCourierPosition(position kernel.GeoPoint) error {
	if o.status != InTransit {
		return errs.NewConflictErrorWithCause(
			"order does not track the courier",
			fmt.Errorf("%s is not a valid status to track the courier", o.status.String()),
		)
	}

	refreshed, err := o.courier.WithPosition(position)
	if err != nil {
		return err
	}
	o.courier = &refreshed
	return nil
}

// BelongsToCourier reports whether the given courier holds this order.
func (o *Order) BelongsToCourier(courierID kernel.UUID) bool {
	return o.courier != nil && o.courier.ID().IsEqual(courierID)
}

func newConfirmationCode() string {
	return fmt.Sprintf("%04d", rand.IntN(10000))
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setReference(reference string) error {
	if reference == "" {
		return errs.NewValueIsRequiredError("reference")
	}
	o.reference = reference
	return nil
}

func (o *Order) setSender(sender Sender) error {
	if err := sender.Validate(); err != nil {
		return err
	}
	o.sender = sender
	return nil
}

func (o *Order) setRecipient(recipient Recipient) error {
	if err := recipient.Validate(); err != nil {
		return err
	}
	o.recipient = recipient
	return nil
}

func (o *Order) setPackage(pkg Package) error {
	if err := pkg.Category().Validate(); err != nil {
		return err
	}
	if err := pkg.Nature().Validate(); err != nil {
		return err
	}
	o.pkg = pkg
	return nil
}

func (o *Order) setFee(fee kernel.Money) error {
	if !fee.IsPositive() {
		return errs.NewValueIsRequiredError("fee")
	}
	o.fee = fee
	return nil
}

func (o *Order) setStatus(status Status, courier *CourierInfo) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if courier != nil {
		if err := courier.Validate(); err != nil {
			return err
		}
	}
	if err := status.ValidateCanHaveCourier(courier != nil); err != nil {
		return err
	}
	o.status = status
	o.courier = courier
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	o.createdAt = createdAt
	return nil
}
