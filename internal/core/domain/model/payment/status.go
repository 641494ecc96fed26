package payment

import (
	"fmt"

	"github.com/Salamjean/kksExpress-backend/internal/pkg/errs"
)

// Status represents the settlement state of a payment row.
//
// State transitions:
//
//	Pending ──> Complete
//	   ├──────> Failed
//	   └──────> Cancelled
//
// Complete, Failed and Cancelled are terminal. Partial never comes out of
// a transition: it survives in the enum for rows imported from the legacy
// system and is accepted on restore only.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending is the initial status of a mobile-money payment
	// awaiting gateway confirmation.
	StatusPending

	// StatusComplete means the money was received.
	StatusComplete

	// StatusFailed means the gateway refused the payment.
	StatusFailed

	// StatusCancelled means the payer abandoned the payment.
	StatusCancelled

	// StatusPartial is a legacy value kept for imported rows. New rows
	// never get it: a cash payment is Complete regardless of whether it
	// settles the day, the day shortfall lives in the Settlement stamp.
	StatusPartial
)

func getStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:   "pending",
		StatusComplete:  "complete",
		StatusFailed:    "failed",
		StatusCancelled: "cancelled",
		StatusPartial:   "partial",
	}
}

// StatusFromString parses the persistence representation of a status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid payment status", s),
	)
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

// String returns the persistence name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the gateway can no longer change this row.
func (s Status) IsTerminal() bool {
	return s == StatusComplete || s == StatusFailed || s == StatusCancelled
}

// CountsAsPaid reports whether the row contributes to the day's total.
// Only Complete rows do: Partial day stamps and everything pending or
// dead are excluded from ledger sums.
func (s Status) CountsAsPaid() bool {
	return s == StatusComplete
}
