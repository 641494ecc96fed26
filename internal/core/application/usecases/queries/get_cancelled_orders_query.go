package queries

import (
	"errors"
	"time"

	"github.com/Salamjean/kksExpress-backend/internal/pkg/errs"
	"github.com/Salamjean/kksExpress-backend/internal/pkg/guard"
)

var (
	ErrGetCancelledOrdersQueryIsNotConstructed = errors.New(
		"GetCancelledOrdersQuery must be created via NewGetCancelledOrdersQuery constructor",
	)
)

// GetCancelledOrdersQuery retrieves the orders a sender withdrew before
// any courier picked them up.
type GetCancelledOrdersQuery struct {
	senderPhone string

	guard guard.ConstructorGuard
}

// NewGetCancelledOrdersQuery creates a cancelled order listing for the sender.
func NewGetCancelledOrdersQuery(senderPhone string) (GetCancelledOrdersQuery, error) {
	if senderPhone == "" {
		return GetCancelledOrdersQuery{}, errs.NewValueIsRequiredError("sender phone")
	}
	return GetCancelledOrdersQuery{
		senderPhone: senderPhone,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCancelledOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCancelledOrdersQueryIsNotConstructed)
}

// SenderPhone returns the phone number identifying the sender.
func (q GetCancelledOrdersQuery) SenderPhone() string {
	return q.senderPhone
}

// GetCancelledOrdersQueryResponse is one withdrawn order.
type GetCancelledOrdersQueryResponse struct {
	Reference       string
	RecipientName   string
	DeliveryAddress string
	PackageLabel    string
	CreatedAt       time.Time
	CancelledAt     time.Time
}
