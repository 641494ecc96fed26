package kernel

import (
	"time"

	"github.com/Salamjean/kksExpress-backend/internal/pkg/errs"
)

// dateLayout is the ISO calendar-date format used for persistence and APIs.
const dateLayout = "2006-01-02"

// Date is a calendar date without a clock component or time zone.
// Payments are bucketed by Date, and the ledger compares dates to the current
// day to classify settlement status, so day arithmetic must not be affected
// by the hour a payment was posted.
type Date struct {
	year  int
	month time.Month
	day   int
}

// NewDate creates a Date from its components.
func NewDate(year int, month time.Month, day int) Date {
	return Date{year: year, month: month, day: day}
}

// DateOf truncates a time.Time to its calendar date in the time's location.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return Date{year: year, month: month, day: day}
}

// ParseDate parses an ISO "YYYY-MM-DD" string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, errs.NewValueIsInvalidErrorWithCause("date", err)
	}
	return DateOf(t), nil
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	if d.year != other.year {
		return d.year < other.year
	}
	if d.month != other.month {
		return d.month < other.month
	}
	return d.day < other.day
}

// IsEqual compares two dates.
func (d Date) IsEqual(other Date) bool {
	return d == other
}

// AddDays returns the date shifted by the given number of days.
func (d Date) AddDays(days int) Date {
	return DateOf(d.ToTime().AddDate(0, 0, days))
}

// ToTime returns midnight UTC of the date.
func (d Date) ToTime() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// IsZero reports whether the date is the zero value.
func (d Date) IsZero() bool {
	return d.year == 0 && d.month == 0 && d.day == 0
}

// String returns the ISO "YYYY-MM-DD" representation.
func (d Date) String() string {
	return d.ToTime().Format(dateLayout)
}
