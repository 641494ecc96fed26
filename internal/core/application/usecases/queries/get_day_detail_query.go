package queries

import (
	"errors"
	"time"

	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/kernel"
	"github.com/Salamjean/kksExpress-backend/internal/pkg/errs"
	"github.com/Salamjean/kksExpress-backend/internal/pkg/guard"
)

var (
	ErrGetDayDetailQueryIsNotConstructed = errors.New(
		"GetDayDetailQuery must be created via NewGetDayDetailQuery constructor",
	)
)

// GetDayDetailQuery drills into one calendar day of a courier's ledger:
// the day balance plus every payment row posted to it.
type GetDayDetailQuery struct {
	courierID kernel.UUID
	date      kernel.Date

	guard guard.ConstructorGuard
}

// NewGetDayDetailQuery creates a day detail query for the courier and date.
func NewGetDayDetailQuery(courierID kernel.UUID, date kernel.Date) (GetDayDetailQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetDayDetailQuery{}, err
	}
	if date.IsZero() {
		return GetDayDetailQuery{}, errs.NewValueIsRequiredError("date")
	}
	return GetDayDetailQuery{
		courierID: courierID,
		date:      date,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDayDetailQuery) Validate() error {
	return q.guard.Validate(ErrGetDayDetailQueryIsNotConstructed)
}

// CourierID returns the courier whose day is requested.
func (q GetDayDetailQuery) CourierID() kernel.UUID {
	return q.courierID
}

// Date returns the day being inspected.
func (q GetDayDetailQuery) Date() kernel.Date {
	return q.date
}

// DayDetailPayment is one payment row on the inspected day.
type DayDetailPayment struct {
	Reference string
	Amount    kernel.Money
	Method    string
	PhoneUsed string
	Status    string
	PaidAt    time.Time
}

// GetDayDetailQueryResponse is the balance of one day and its rows.
type GetDayDetailQueryResponse struct {
	Date       kernel.Date
	AmountDue  kernel.Money
	TotalPaid  kernel.Money
	Remaining  kernel.Money
	Settlement string

	Payments []DayDetailPayment
}
