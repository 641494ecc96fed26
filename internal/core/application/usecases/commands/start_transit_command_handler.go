package commands

import (
	"context"
	"time"

	"github.com/Salamjean/kksExpress-backend/internal/pkg/errs"
)

// StartTransitCommandHandler moves a picked up order into transit.
// From this point the courier's position reports are reflected on the
// order and the recipient can follow the delivery live.
type StartTransitCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewStartTransitCommandHandler creates a handler for the transit transition.
func NewStartTransitCommandHandler(uowFactory OrderUoWFactory) StartTransitCommandHandler {
	return StartTransitCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the start transit command.
func (h *StartTransitCommandHandler) Handle(ctx context.Context, cmd StartTransitCommand) error {
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

	if err = aggregate.StartTransit(time.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
