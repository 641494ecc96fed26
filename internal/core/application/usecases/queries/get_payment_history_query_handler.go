package queries

import (
	"context"
	"time"

	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/kernel"
	"github.com/Salamjean/kksExpress-backend/internal/core/domain/services"
	"github.com/Salamjean/kksExpress-backend/internal/core/ports"
	"github.com/Salamjean/kksExpress-backend/internal/pkg/errs"
)

// GetPaymentHistoryQueryHandler builds the day-by-day versement history
// of one courier. Day balances are recomputed from the rows on the fly,
// the stamped audit columns are ignored here.
type GetPaymentHistoryQueryHandler struct {
	payments   ports.PaymentRepository
	calculator services.LedgerCalculator
	now        func() time.Time
}

// NewGetPaymentHistoryQueryHandler creates a handler for payment history queries.
func NewGetPaymentHistoryQueryHandler(
	payments ports.PaymentRepository,
	policy kernel.Policy,
	now func() time.Time,
) (GetPaymentHistoryQueryHandler, error) {
	if payments == nil {
		return GetPaymentHistoryQueryHandler{}, errs.NewValueIsRequiredError("payments")
	}
	if now == nil {
		return GetPaymentHistoryQueryHandler{}, errs.NewValueIsRequiredError("now")
	}
	calculator, err := services.NewLedgerCalculator(policy)
	if err != nil {
		return GetPaymentHistoryQueryHandler{}, err
	}
	return GetPaymentHistoryQueryHandler{
		payments:   payments,
		calculator: calculator,
		now:        now,
	}, nil
}

// Handle returns the courier's day summaries, most recent day first,
// with totals over the selected period. The arrears figure is always
// the courier's full standing, never narrowed by the month filter.
func (h GetPaymentHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetPaymentHistoryQuery,
) (GetPaymentHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPaymentHistoryQueryResponse{}, err
	}

	history, err := h.payments.GetAllByCourier(ctx, query.CourierID())
	if err != nil {
		return GetPaymentHistoryQueryResponse{}, err
	}

	today := kernel.DateOf(h.now())
	ledgers := h.calculator.AllDayLedgers(history, today)

	response := GetPaymentHistoryQueryResponse{
		Days:      make([]PaymentHistoryDay, 0, len(ledgers)),
		TotalPaid: kernel.ZeroMoney(),
		TotalDue:  kernel.ZeroMoney(),
		Arrears:   h.calculator.Arrears(history, today),
	}

	for i := len(ledgers) - 1; i >= 0; i-- {
		ledger := ledgers[i]
		if !h.matchesFilter(query, ledger.Date) {
			continue
		}

		response.Days = append(response.Days, PaymentHistoryDay{
			Date:         ledger.Date,
			AmountDue:    ledger.AmountDue,
			TotalPaid:    ledger.TotalPaid,
			Remaining:    ledger.Remaining,
			Settlement:   ledger.Settlement.String(),
			PaymentCount: ledger.PaymentCount,
		})
		response.TotalPaid = response.TotalPaid.Add(ledger.TotalPaid)
		response.TotalDue = response.TotalDue.Add(ledger.AmountDue)
	}

	return response, nil
}

func (h GetPaymentHistoryQueryHandler) matchesFilter(query GetPaymentHistoryQuery, date kernel.Date) bool {
	if !query.HasMonthFilter() {
		return true
	}
	t := date.ToTime()
	return t.Year() == query.Year() && t.Month() == query.Month()
}
