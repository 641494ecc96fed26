package courier

import (
	"fmt"

	"github.com/Salamjean/kksExpress-backend/internal/pkg/errs"
)

// Status represents the employment state of a courier. Only Active
// couriers may accept orders; the other states keep the account around
// without letting it work.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusActive means the courier may accept and deliver orders.
	StatusActive

	// StatusInactive means the account exists but is not working,
	// typically a new registration awaiting approval.
	StatusInactive

	// StatusOnLeave means the courier is temporarily away.
	StatusOnLeave

	// StatusSuspended means the platform barred the courier.
	StatusSuspended
)

func getStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusActive:    "active",
		StatusInactive:  "inactive",
		StatusOnLeave:   "on_leave",
		StatusSuspended: "suspended",
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
		fmt.Errorf("%q is not a valid courier status", s),
	)
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid courier status", s))
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

// CanAcceptOrders reports whether the status allows claiming orders.
func (s Status) CanAcceptOrders() bool {
	return s == StatusActive
}
