package queries

import (
	"errors"
	"time"

	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/kernel"
	"github.com/Salamjean/kksExpress-backend/internal/pkg/errs"
	"github.com/Salamjean/kksExpress-backend/internal/pkg/guard"
)

var (
	ErrGetPaymentHistoryQueryIsNotConstructed = errors.New(
		"GetPaymentHistoryQuery must be created via NewGetPaymentHistoryQuery constructor",
	)
)

// GetPaymentHistoryQuery retrieves a courier's versement history grouped
// by calendar day, optionally narrowed to one month. Passing zero for
// both year and month returns the full history; the filter must be given
// whole, a month without a year is rejected.
//
// Example:
//
//	all, err := NewGetPaymentHistoryQuery(courierID, 0, 0)
//	august, err := NewGetPaymentHistoryQuery(courierID, 2026, time.August)
type GetPaymentHistoryQuery struct {
	courierID kernel.UUID
	year      int
	month     time.Month

	guard guard.ConstructorGuard
}

// NewGetPaymentHistoryQuery creates a payment history query for the courier.
func NewGetPaymentHistoryQuery(courierID kernel.UUID, year int, month time.Month) (GetPaymentHistoryQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetPaymentHistoryQuery{}, err
	}
	if (year == 0) != (month == 0) {
		return GetPaymentHistoryQuery{}, errs.NewValueIsInvalidError("month filter")
	}
	if month < 0 || month > time.December {
		return GetPaymentHistoryQuery{}, errs.NewValueIsInvalidError("month")
	}
	return GetPaymentHistoryQuery{
		courierID: courierID,
		year:      year,
		month:     month,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPaymentHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetPaymentHistoryQueryIsNotConstructed)
}

// CourierID returns the courier whose history is requested.
func (q GetPaymentHistoryQuery) CourierID() kernel.UUID {
	return q.courierID
}

// Year returns the filter year, zero when unfiltered.
func (q GetPaymentHistoryQuery) Year() int {
	return q.year
}

// Month returns the filter month, zero when unfiltered.
func (q GetPaymentHistoryQuery) Month() time.Month {
	return q.month
}

// HasMonthFilter reports whether the history is narrowed to one month.
func (q GetPaymentHistoryQuery) HasMonthFilter() bool {
	return q.year != 0
}

// PaymentHistoryDay is the summary of one day with at least one payment row.
type PaymentHistoryDay struct {
	Date         kernel.Date
	AmountDue    kernel.Money
	TotalPaid    kernel.Money
	Remaining    kernel.Money
	Settlement   string
	PaymentCount int
}

// GetPaymentHistoryQueryResponse is the day-by-day history plus the
// totals over the selected period.
type GetPaymentHistoryQueryResponse struct {
	Days []PaymentHistoryDay

	TotalPaid kernel.Money
	TotalDue  kernel.Money
	Arrears   kernel.Money
}
