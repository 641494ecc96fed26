package queries

import (
	"errors"

	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/kernel"
	"github.com/Salamjean/kksExpress-backend/internal/pkg/guard"
)

var (
	ErrGetAmountDueTodayQueryIsNotConstructed = errors.New(
		"GetAmountDueTodayQuery must be created via NewGetAmountDueTodayQuery constructor",
	)
)

// GetAmountDueTodayQuery asks what a courier owes right now: today's quota
// plus whatever accumulated over underpaid past days. This is the figure
// the courier app shows on the versement screen.
//
// Example:
//
//	query, err := NewGetAmountDueTodayQuery(courierID)
//	if err != nil {
//	    return err
//	}
//
//	due, err := handler.Handle(ctx, query)
//	fmt.Printf("owes %s (arrears %s)\n", due.RemainingDue, due.Arrears)
type GetAmountDueTodayQuery struct {
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAmountDueTodayQuery creates a balance query for the courier.
func NewGetAmountDueTodayQuery(courierID kernel.UUID) (GetAmountDueTodayQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetAmountDueTodayQuery{}, err
	}
	return GetAmountDueTodayQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAmountDueTodayQuery) Validate() error {
	return q.guard.Validate(ErrGetAmountDueTodayQueryIsNotConstructed)
}

// CourierID returns the courier whose balance is requested.
func (q GetAmountDueTodayQuery) CourierID() kernel.UUID {
	return q.courierID
}

// GetAmountDueTodayQueryResponse is the courier's standing at the time of
// the query. RemainingDue is the amount that would settle the account
// completely today.
type GetAmountDueTodayQueryResponse struct {
	Date         kernel.Date
	Quota        kernel.Money
	Arrears      kernel.Money
	TotalDue     kernel.Money
	PaidToday    kernel.Money
	RemainingDue kernel.Money
}
