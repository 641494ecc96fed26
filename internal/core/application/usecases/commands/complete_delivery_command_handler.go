package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/Salamjean/kksExpress-backend/internal/core/ports"
	"github.com/Salamjean/kksExpress-backend/internal/pkg/errs"
)

// CompleteDeliveryCommandHandler finishes a delivery once the courier
// presents the recipient's confirmation code. A wrong code keeps the
// order in transit.
type CompleteDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewCompleteDeliveryCommandHandler creates a handler for the delivery transition.
func NewCompleteDeliveryCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the delivery command.
// Matches the submitted confirmation code against the order and, on
// success, stamps the delivered timestamp and notifies the sender.
// Notification failures are logged and never undo the delivery.
func (h *CompleteDeliveryCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveryCommand) error {
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

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !aggregate.BelongsToCourier(cmd.CourierID()) {
		return errs.NewConflictError("order belongs to another courier")
	}

	if err = aggregate.Deliver(cmd.ConfirmationCode(), time.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.notifier.SendStatusChanged(ctx, aggregate); err != nil {
		h.logger.WarnContext(ctx, "failed to send delivery notification",
			slog.String("order_reference", aggregate.Reference()),
			slog.Any("error", err),
		)
	}

	return nil
}
