package order

import (
	"fmt"

	"github.com/Salamjean/kksExpress-backend/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Pending ──> Accepted ──> PickedUp ──> InTransit ──> Delivered
//	   │
//	   └──> Cancelled
//
// Delivered and Cancelled are terminal. Only a pending order can be
// cancelled: once a courier has accepted, the delivery runs to completion.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status: the order is visible to couriers
	// and waiting for one of them to accept it.
	Pending

	// Accepted indicates a courier has claimed the order and is heading
	// to the pickup point.
	Accepted

	// PickedUp indicates the courier has collected the package from the
	// sender. The confirmation code exists from this point on.
	PickedUp

	// InTransit indicates the package is on its way to the recipient.
	// Courier position updates are propagated to orders in this status.
	InTransit

	// Delivered indicates the recipient confirmed reception.
	// This is a final state.
	Delivered

	// Cancelled indicates the sender withdrew the order before any
	// courier accepted it. This is a final state.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Accepted:  "accepted",
		PickedUp:  "picked_up",
		InTransit: "in_transit",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Accepted:  "accepted",
		PickedUp:  "picked_up",
		InTransit: "in_transit",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// StatusFromString parses the persistence representation of a status.
// It is the inverse of String for every valid status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is valid.
// Unknown (0) and any out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persistence name of the status ("pending",
// "picked_up", ...). It implements fmt.Stringer and is safe to call on
// any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsActive reports whether the status counts against the courier's
// concurrent-order cap. Accepted, PickedUp and InTransit are active.
func (s Status) IsActive() bool {
	return s == Accepted || s == PickedUp || s == InTransit
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// ValidateCanHaveCourier validates the consistency between order status
// and courier assignment.
//
// Business rules:
//   - Pending and Cancelled orders must not have a courier
//   - every other valid status requires one
func (s Status) ValidateCanHaveCourier(courier bool) error {
	if courier && (s == Pending || s == Cancelled) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a courier", s.String()),
		)
	}

	if !courier && s.IsActive() || !courier && s == Delivered {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no courier", s.String()),
		)
	}

	return nil
}

// Accept transitions the status to Accepted.
//
// Valid transitions:
//   - Pending -> Accepted
func (s Status) Accept() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to accept", s.String()),
		)
	}

	return Accepted, nil
}

// PickUp transitions the status to PickedUp.
//
// Valid transitions:
//   - Accepted -> PickedUp
func (s Status) PickUp() (Status, error) {
	if s != Accepted {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to pick up", s.String()),
		)
	}

	return PickedUp, nil
}

// StartTransit transitions the status to InTransit.
//
// Valid transitions:
//   - PickedUp -> InTransit
func (s Status) StartTransit() (Status, error) {
	if s != PickedUp {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to start transit", s.String()),
		)
	}

	return InTransit, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - InTransit -> Delivered
func (s Status) Deliver() (Status, error) {
	if s != InTransit {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to deliver", s.String()),
		)
	}

	return Delivered, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
//
// An order with a courier already working on it cannot be cancelled.
func (s Status) Cancel() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}

	return Cancelled, nil
}
