package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/Salamjean/kksExpress-backend/internal/core/ports"
	"github.com/Salamjean/kksExpress-backend/internal/pkg/errs"
)

// PickUpOrderCommandHandler marks an accepted order as picked up.
// Pickup mints the delivery confirmation code and emails it to the
// sender. Notification delivery is best effort, a failed send is logged
// and never rolls back the transition.
type PickUpOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewPickUpOrderCommandHandler creates a handler for the pickup transition.
func NewPickUpOrderCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) PickUpOrderCommandHandler {
	return PickUpOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the pickup command.
// Verifies the order belongs to the acting courier, generates the
// confirmation code and persists the transition before notifying the
// sender.
func (h *PickUpOrderCommandHandler) Handle(ctx context.Context, cmd PickUpOrderCommand) error {
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

	if err = aggregate.PickUp(time.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.notifier.SendDeliveryCode(ctx, aggregate); err != nil {
		h.logger.WarnContext(ctx, "failed to send delivery code",
			slog.String("order_reference", aggregate.Reference()),
			slog.Any("error", err),
		)
	}

	return nil
}
