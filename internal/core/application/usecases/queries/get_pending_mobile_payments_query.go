package queries

import (
	"errors"
	"time"

	"github.com/Salamjean/kksExpress-backend/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetPendingMobilePaymentsQueryIsNotConstructed = errors.New(
		"GetPendingMobilePaymentsQuery must be created via NewGetPendingMobilePaymentsQuery constructor",
	)
)

// GetPendingMobilePaymentsQuery lists the mobile payments still awaiting
// gateway confirmation, across all couriers, younger than 24 hours. This
// is the back-office view of what the sweep job is chasing.
type GetPendingMobilePaymentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingMobilePaymentsQuery creates a pending mobile payment listing.
func NewGetPendingMobilePaymentsQuery() GetPendingMobilePaymentsQuery {
	return GetPendingMobilePaymentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPendingMobilePaymentsQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingMobilePaymentsQueryIsNotConstructed)
}

// GetPendingMobilePaymentsQueryResponse is one unconfirmed mobile payment.
type GetPendingMobilePaymentsQueryResponse struct {
	Reference    string
	CourierName  string
	CourierPhone string
	Amount       decimal.Decimal
	Method       string
	PhoneUsed    string
	PaidAt       time.Time
}
