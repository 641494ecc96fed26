package commands

import (
	"context"
	"time"

	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/kernel"
	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/payment"
	"github.com/Salamjean/kksExpress-backend/internal/core/domain/services"
	"github.com/Salamjean/kksExpress-backend/internal/core/ports"
)

// ConfirmMobilePaymentResult reports the payment status after the
// gateway poll.
type ConfirmMobilePaymentResult struct {
	Reference string
	Status    payment.Status
}

// ConfirmMobilePaymentCommandHandler polls the gateway for the verdict
// on a mobile-money payment and applies it to the row. Rows already in
// a terminal status are returned as-is without touching the gateway, so
// the operation is safe to retry.
type ConfirmMobilePaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
	gateway    ports.PaymentGateway
	calculator services.LedgerCalculator
	now        func() time.Time
}

// NewConfirmMobilePaymentCommandHandler creates a handler for payment confirmation.
func NewConfirmMobilePaymentCommandHandler(
	uowFactory PaymentUoWFactory,
	gateway ports.PaymentGateway,
	policy kernel.Policy,
	now func() time.Time,
) (ConfirmMobilePaymentCommandHandler, error) {
	calculator, err := services.NewLedgerCalculator(policy)
	if err != nil {
		return ConfirmMobilePaymentCommandHandler{}, err
	}

	return ConfirmMobilePaymentCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
		calculator: calculator,
		now:        now,
	}, nil
}

// Handle processes the confirmation.
// An accepted verdict completes the row and rewrites the courier's
// audit stamps, a refusal fails it, a cancellation cancels it and a
// still-pending verdict leaves the row untouched.
func (h *ConfirmMobilePaymentCommandHandler) Handle(
	ctx context.Context,
	cmd ConfirmMobilePaymentCommand,
) (ConfirmMobilePaymentResult, error) {
	if err := cmd.Validate(); err != nil {
		return ConfirmMobilePaymentResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ConfirmMobilePaymentResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	paymentRepo := uow.PaymentRepository()

	row, err := paymentRepo.GetByReference(ctx, cmd.Reference())
	if err != nil {
		return ConfirmMobilePaymentResult{}, err
	}

	if row.Status().IsTerminal() {
		return ConfirmMobilePaymentResult{Reference: row.Reference(), Status: row.Status()}, nil
	}

	verdict, err := h.gateway.CheckStatus(ctx, row.Reference())
	if err != nil {
		return ConfirmMobilePaymentResult{}, err
	}

	switch verdict.Status {
	case ports.GatewayStatusAccepted:
		if err = row.Complete(); err != nil {
			return ConfirmMobilePaymentResult{}, err
		}
	case ports.GatewayStatusRefused:
		if err = row.Fail(verdict.Message); err != nil {
			return ConfirmMobilePaymentResult{}, err
		}
	case ports.GatewayStatusCancelled:
		if err = row.Cancel(); err != nil {
			return ConfirmMobilePaymentResult{}, err
		}
	case ports.GatewayStatusPending, ports.GatewayStatusUnknown:
		return ConfirmMobilePaymentResult{Reference: row.Reference(), Status: row.Status()}, nil
	}

	if err = paymentRepo.Update(ctx, row); err != nil {
		return ConfirmMobilePaymentResult{}, err
	}

	if row.Status() == payment.StatusComplete {
		history, err := paymentRepo.GetAllByCourier(ctx, row.CourierID())
		if err != nil {
			return ConfirmMobilePaymentResult{}, err
		}

		if err = restampLedgers(ctx, paymentRepo, h.calculator, history, kernel.DateOf(h.now())); err != nil {
			return ConfirmMobilePaymentResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return ConfirmMobilePaymentResult{}, err
	}

	return ConfirmMobilePaymentResult{Reference: row.Reference(), Status: row.Status()}, nil
}
