package queries

import (
	"errors"
	"time"

	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/kernel"
	"github.com/Salamjean/kksExpress-backend/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetCourierDeliveriesQueryIsNotConstructed = errors.New(
		"GetCourierDeliveriesQuery must be created via NewGetCourierDeliveriesQuery constructor",
	)
)

// GetCourierDeliveriesQuery retrieves the delivery history of one courier:
// every order the courier has carried to completion.
type GetCourierDeliveriesQuery struct {
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCourierDeliveriesQuery creates a delivery history query for the courier.
func NewGetCourierDeliveriesQuery(courierID kernel.UUID) (GetCourierDeliveriesQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetCourierDeliveriesQuery{}, err
	}
	return GetCourierDeliveriesQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCourierDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierDeliveriesQueryIsNotConstructed)
}

// CourierID returns the courier whose deliveries are requested.
func (q GetCourierDeliveriesQuery) CourierID() kernel.UUID {
	return q.courierID
}

// GetCourierDeliveriesQueryResponse is one completed delivery in the
// courier's history.
type GetCourierDeliveriesQueryResponse struct {
	Reference       string
	RecipientName   string
	DeliveryAddress string
	Fee             decimal.Decimal
	DeliveredAt     time.Time
}
