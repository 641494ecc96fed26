package queries

import (
	"context"
	"time"

	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/kernel"
	"github.com/Salamjean/kksExpress-backend/internal/core/domain/services"
	"github.com/Salamjean/kksExpress-backend/internal/core/ports"
	"github.com/Salamjean/kksExpress-backend/internal/pkg/errs"
)

// GetDayDetailQueryHandler resolves one day of a courier's ledger.
type GetDayDetailQueryHandler struct {
	payments   ports.PaymentRepository
	calculator services.LedgerCalculator
	now        func() time.Time
}

// NewGetDayDetailQueryHandler creates a handler for day detail queries.
func NewGetDayDetailQueryHandler(
	payments ports.PaymentRepository,
	policy kernel.Policy,
	now func() time.Time,
) (GetDayDetailQueryHandler, error) {
	if payments == nil {
		return GetDayDetailQueryHandler{}, errs.NewValueIsRequiredError("payments")
	}
	if now == nil {
		return GetDayDetailQueryHandler{}, errs.NewValueIsRequiredError("now")
	}
	calculator, err := services.NewLedgerCalculator(policy)
	if err != nil {
		return GetDayDetailQueryHandler{}, err
	}
	return GetDayDetailQueryHandler{
		payments:   payments,
		calculator: calculator,
		now:        now,
	}, nil
}

// Handle returns the day's balance and its payment rows, oldest row first.
// A day with no rows comes back as an untouched quota, not an error.
func (h GetDayDetailQueryHandler) Handle(
	ctx context.Context,
	query GetDayDetailQuery,
) (GetDayDetailQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDayDetailQueryResponse{}, err
	}

	history, err := h.payments.GetAllByCourier(ctx, query.CourierID())
	if err != nil {
		return GetDayDetailQueryResponse{}, err
	}

	today := kernel.DateOf(h.now())
	ledger := h.calculator.LedgerForDay(history, query.Date(), today)

	response := GetDayDetailQueryResponse{
		Date:       ledger.Date,
		AmountDue:  ledger.AmountDue,
		TotalPaid:  ledger.TotalPaid,
		Remaining:  ledger.Remaining,
		Settlement: ledger.Settlement.String(),
		Payments:   make([]DayDetailPayment, 0, ledger.PaymentCount),
	}

	for _, row := range history {
		if !row.PaidOn().IsEqual(query.Date()) {
			continue
		}
		response.Payments = append(response.Payments, DayDetailPayment{
			Reference: row.Reference(),
			Amount:    row.Amount(),
			Method:    row.Method().String(),
			PhoneUsed: row.PhoneUsed(),
			Status:    row.Status().String(),
			PaidAt:    row.PaidAt(),
		})
	}

	return response, nil
}
