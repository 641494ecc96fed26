package queries

import (
	"errors"
	"time"

	"github.com/Salamjean/kksExpress-backend/internal/pkg/errs"
	"github.com/Salamjean/kksExpress-backend/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetSenderOrdersQueryIsNotConstructed = errors.New(
		"GetSenderOrdersQuery must be created via NewGetSenderOrdersQuery constructor",
	)
)

// GetSenderOrdersQuery retrieves every order a sender has placed. Senders
// are identified by the phone number frozen on the order at creation.
type GetSenderOrdersQuery struct {
	senderPhone string

	guard guard.ConstructorGuard
}

// NewGetSenderOrdersQuery creates an order listing query for the sender.
func NewGetSenderOrdersQuery(senderPhone string) (GetSenderOrdersQuery, error) {
	if senderPhone == "" {
		return GetSenderOrdersQuery{}, errs.NewValueIsRequiredError("sender phone")
	}
	return GetSenderOrdersQuery{
		senderPhone: senderPhone,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSenderOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetSenderOrdersQueryIsNotConstructed)
}

// SenderPhone returns the phone number identifying the sender.
func (q GetSenderOrdersQuery) SenderPhone() string {
	return q.senderPhone
}

// GetSenderOrdersQueryResponse is one of the sender's orders, whatever
// its status, with the courier contact once one has claimed it.
type GetSenderOrdersQueryResponse struct {
	Reference       string
	Status          string
	RecipientName   string
	DeliveryAddress string
	PackageLabel    string
	Fee             decimal.Decimal
	CourierName     string
	CourierPhone    string
	CreatedAt       time.Time
}
