package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/kernel"
	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/payment"
	"github.com/Salamjean/kksExpress-backend/internal/core/domain/services"
	"github.com/Salamjean/kksExpress-backend/internal/pkg/errs"
)

// RecordCashPaymentCommandHandler posts a cash payment to a courier's
// ledger. Cash is trusted, the row lands Complete immediately and the
// day's audit stamps are rewritten in the same transaction.
type RecordCashPaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
	calculator services.LedgerCalculator
	now        func() time.Time
}

// NewRecordCashPaymentCommandHandler creates a handler for cash payments.
// The clock is injected so reconciliation around midnight stays testable.
func NewRecordCashPaymentCommandHandler(
	uowFactory PaymentUoWFactory,
	policy kernel.Policy,
	now func() time.Time,
) (RecordCashPaymentCommandHandler, error) {
	calculator, err := services.NewLedgerCalculator(policy)
	if err != nil {
		return RecordCashPaymentCommandHandler{}, err
	}

	return RecordCashPaymentCommandHandler{
		uowFactory: uowFactory,
		calculator: calculator,
		now:        now,
	}, nil
}

// Handle processes the cash payment.
// A payment may never push the day's total past what the courier owes:
// the quota plus arrears. Overpayment is rejected with a validation
// error naming the remaining balance.
func (h *RecordCashPaymentCommandHandler) Handle(ctx context.Context, cmd RecordCashPaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	courierAggregate, err := uow.CourierRepository().Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	paymentRepo := uow.PaymentRepository()

	history, err := paymentRepo.GetAllByCourier(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	now := h.now()
	today := kernel.DateOf(now)

	due := h.calculator.AmountDueToday(history, today)
	if cmd.Amount().GreaterThan(due.RemainingDue) {
		return errs.NewValueIsInvalidError(
			fmt.Sprintf("amount exceeds the remaining balance of %s", due.RemainingDue),
		)
	}

	row, err := payment.NewCashPayment(
		cmd.PaymentID(),
		kernel.NewPaymentReference(kernel.PaymentReferencePrefixCash, cmd.CourierID(), now),
		courierAggregate.ID(),
		courierAggregate.Name(),
		courierAggregate.Phone(),
		cmd.Amount(),
		cmd.Description(),
		now,
	)
	if err != nil {
		return err
	}

	if err = paymentRepo.Add(ctx, row); err != nil {
		return err
	}

	history = append(history, row)
	if err = restampLedgers(ctx, paymentRepo, h.calculator, history, today); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
