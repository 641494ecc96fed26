package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/kernel"
	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/payment"
	"github.com/Salamjean/kksExpress-backend/internal/core/domain/services"
	"github.com/Salamjean/kksExpress-backend/internal/core/ports"
	"github.com/Salamjean/kksExpress-backend/internal/pkg/errs"
)

// InitiateMobilePaymentResult is returned to the caller so the courier's
// app can open the gateway checkout page.
type InitiateMobilePaymentResult struct {
	Reference  string
	PaymentURL string
}

// InitiateMobilePaymentCommandHandler opens a mobile-money checkout for
// a quota payment. The row is persisted Pending before the gateway is
// called; if the gateway refuses to open the session the row is kept as
// Failed so the attempt stays visible in the history.
type InitiateMobilePaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
	gateway    ports.PaymentGateway
	calculator services.LedgerCalculator
	now        func() time.Time
}

// NewInitiateMobilePaymentCommandHandler creates a handler for
// mobile-money payment initiation.
func NewInitiateMobilePaymentCommandHandler(
	uowFactory PaymentUoWFactory,
	gateway ports.PaymentGateway,
	policy kernel.Policy,
	now func() time.Time,
) (InitiateMobilePaymentCommandHandler, error) {
	calculator, err := services.NewLedgerCalculator(policy)
	if err != nil {
		return InitiateMobilePaymentCommandHandler{}, err
	}

	return InitiateMobilePaymentCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
		calculator: calculator,
		now:        now,
	}, nil
}

// Handle processes the initiation.
// The same overpayment rule as cash applies: the charge may not exceed
// the courier's remaining balance for today.
func (h *InitiateMobilePaymentCommandHandler) Handle(
	ctx context.Context,
	cmd InitiateMobilePaymentCommand,
) (InitiateMobilePaymentResult, error) {
	if err := cmd.Validate(); err != nil {
		return InitiateMobilePaymentResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return InitiateMobilePaymentResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	courierAggregate, err := uow.CourierRepository().Get(ctx, cmd.CourierID())
	if err != nil {
		return InitiateMobilePaymentResult{}, err
	}

	paymentRepo := uow.PaymentRepository()

	history, err := paymentRepo.GetAllByCourier(ctx, cmd.CourierID())
	if err != nil {
		return InitiateMobilePaymentResult{}, err
	}

	now := h.now()
	today := kernel.DateOf(now)

	due := h.calculator.AmountDueToday(history, today)
	if cmd.Amount().GreaterThan(due.RemainingDue) {
		return InitiateMobilePaymentResult{}, errs.NewValueIsInvalidError(
			fmt.Sprintf("amount exceeds the remaining balance of %s", due.RemainingDue),
		)
	}

	row, err := payment.NewMobilePayment(
		cmd.PaymentID(),
		kernel.NewPaymentReference(kernel.PaymentReferencePrefixMobile, cmd.CourierID(), now),
		courierAggregate.ID(),
		courierAggregate.Name(),
		courierAggregate.Phone(),
		cmd.Amount(),
		cmd.Method(),
		cmd.PhoneUsed(),
		cmd.Description(),
		now,
	)
	if err != nil {
		return InitiateMobilePaymentResult{}, err
	}

	if err = paymentRepo.Add(ctx, row); err != nil {
		return InitiateMobilePaymentResult{}, err
	}

	checkout, gatewayErr := h.gateway.Initiate(ctx, ports.InitiatePaymentRequest{
		Reference:     row.Reference(),
		Amount:        row.Amount(),
		Method:        row.Method(),
		CustomerName:  courierAggregate.Name(),
		CustomerEmail: courierAggregate.Email(),
		CustomerPhone: cmd.PhoneUsed(),
		Description:   cmd.Description(),
	})
	if gatewayErr != nil {
		if err = row.Fail(gatewayErr.Error()); err != nil {
			return InitiateMobilePaymentResult{}, err
		}
		if err = paymentRepo.Update(ctx, row); err != nil {
			return InitiateMobilePaymentResult{}, err
		}
		if err = uow.Commit(ctx); err != nil {
			return InitiateMobilePaymentResult{}, err
		}

		return InitiateMobilePaymentResult{}, errs.NewExternalServiceErrorWithCause("payment gateway", gatewayErr)
	}

	if err = uow.Commit(ctx); err != nil {
		return InitiateMobilePaymentResult{}, err
	}

	return InitiateMobilePaymentResult{
		Reference:  row.Reference(),
		PaymentURL: checkout.PaymentURL,
	}, nil
}
