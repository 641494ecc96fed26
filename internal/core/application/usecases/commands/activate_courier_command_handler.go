package commands

import (
	"context"
)

// ActivateCourierCommandHandler moves a registered courier to Active
// status so they can accept orders.
type ActivateCourierCommandHandler struct {
	uowFactory CourierUoWFactory
}

// NewActivateCourierCommandHandler creates a handler for courier activation.
func NewActivateCourierCommandHandler(uowFactory CourierUoWFactory) ActivateCourierCommandHandler {
	return ActivateCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the activation. Activating an already active courier
// is a no-op.
func (h *ActivateCourierCommandHandler) Handle(ctx context.Context, cmd ActivateCourierCommand) error {
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

	courierRepo := uow.CourierRepository()

	aggregate, err := courierRepo.Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	aggregate.Activate()

	if err = courierRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
