package queries

import (
	"context"
	"time"

	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/kernel"
	"github.com/Salamjean/kksExpress-backend/internal/core/domain/services"
	"github.com/Salamjean/kksExpress-backend/internal/core/ports"
	"github.com/Salamjean/kksExpress-backend/internal/pkg/errs"
)

// GetAmountDueTodayQueryHandler derives a courier's current balance from
// the payment history. The ledger is never stored, so this handler reads
// the rows and lets the calculator do the arithmetic.
type GetAmountDueTodayQueryHandler struct {
	payments   ports.PaymentRepository
	calculator services.LedgerCalculator
	now        func() time.Time
}

// NewGetAmountDueTodayQueryHandler creates a handler for courier balance queries.
func NewGetAmountDueTodayQueryHandler(
	payments ports.PaymentRepository,
	policy kernel.Policy,
	now func() time.Time,
) (GetAmountDueTodayQueryHandler, error) {
	if payments == nil {
		return GetAmountDueTodayQueryHandler{}, errs.NewValueIsRequiredError("payments")
	}
	if now == nil {
		return GetAmountDueTodayQueryHandler{}, errs.NewValueIsRequiredError("now")
	}
	calculator, err := services.NewLedgerCalculator(policy)
	if err != nil {
		return GetAmountDueTodayQueryHandler{}, err
	}
	return GetAmountDueTodayQueryHandler{
		payments:   payments,
		calculator: calculator,
		now:        now,
	}, nil
}

// Handle computes what the courier owes as of the handler's clock.
func (h GetAmountDueTodayQueryHandler) Handle(
	ctx context.Context,
	query GetAmountDueTodayQuery,
) (GetAmountDueTodayQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAmountDueTodayQueryResponse{}, err
	}

	history, err := h.payments.GetAllByCourier(ctx, query.CourierID())
	if err != nil {
		return GetAmountDueTodayQueryResponse{}, err
	}

	today := kernel.DateOf(h.now())
	due := h.calculator.AmountDueToday(history, today)

	return GetAmountDueTodayQueryResponse{
		Date:         today,
		Quota:        due.Quota,
		Arrears:      due.Arrears,
		TotalDue:     due.TotalDue,
		PaidToday:    due.PaidToday,
		RemainingDue: due.RemainingDue,
	}, nil
}
