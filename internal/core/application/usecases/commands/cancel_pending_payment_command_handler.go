package commands

import (
	"context"
)

// CancelPendingPaymentCommandHandler cancels a mobile-money payment the
// courier abandoned. Cancelling an already cancelled row is a no-op;
// completed or failed rows refuse with a conflict.
type CancelPendingPaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
}

// NewCancelPendingPaymentCommandHandler creates a handler for payment cancellation.
func NewCancelPendingPaymentCommandHandler(uowFactory PaymentUoWFactory) CancelPendingPaymentCommandHandler {
	return CancelPendingPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation.
func (h *CancelPendingPaymentCommandHandler) Handle(ctx context.Context, cmd CancelPendingPaymentCommand) error {
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

	paymentRepo := uow.PaymentRepository()

	row, err := paymentRepo.GetByReference(ctx, cmd.Reference())
	if err != nil {
		return err
	}

	if err = row.Cancel(); err != nil {
		return err
	}

	if err = paymentRepo.Update(ctx, row); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
