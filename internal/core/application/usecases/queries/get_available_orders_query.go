package queries

import (
	"errors"
	"time"

	"github.com/Salamjean/kksExpress-backend/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetAvailableOrdersQueryIsNotConstructed = errors.New(
		"GetAvailableOrdersQuery must be created via NewGetAvailableOrdersQuery constructor",
	)
)

// GetAvailableOrdersQuery retrieves the orders couriers can still claim:
// pending and unassigned, newest first. This is the marketplace feed every
// connected courier polls.
//
// Example:
//
//	query := NewGetAvailableOrdersQuery()
//	orders, err := handler.Handle(ctx, query)
type GetAvailableOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableOrdersQuery creates a query for the claimable order feed.
func NewGetAvailableOrdersQuery() GetAvailableOrdersQuery {
	return GetAvailableOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableOrdersQueryIsNotConstructed)
}

// GetAvailableOrdersQueryResponse is one claimable order in the feed.
// It carries what a courier needs to decide: where to pick up, where to
// deliver, what is inside and what the run pays.
type GetAvailableOrdersQueryResponse struct {
	Reference       string
	SenderName      string
	PickupAddress   string
	RecipientName   string
	DeliveryAddress string
	PackageCategory string
	PackageNature   string
	PackageLabel    string
	Fee             decimal.Decimal
	CreatedAt       time.Time
}
