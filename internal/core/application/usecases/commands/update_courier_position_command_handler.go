package commands

import (
	"context"
	"time"
)

// UpdateCourierPositionCommandHandler records a courier position report.
// The courier aggregate stores the new coordinates and the report is
// mirrored onto every order the courier currently has in transit, so
// live tracking reflects it immediately.
type UpdateCourierPositionCommandHandler struct {
	uowFactory UoWFactory
}

// NewUpdateCourierPositionCommandHandler creates a handler for position reports.
func NewUpdateCourierPositionCommandHandler(uowFactory UoWFactory) UpdateCourierPositionCommandHandler {
	return UpdateCourierPositionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the position report.
// Orders in other statuses keep the courier snapshot taken at accept
// time; only in-transit orders follow the courier's movement.
func (h *UpdateCourierPositionCommandHandler) Handle(ctx context.Context, cmd UpdateCourierPositionCommand) error {
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

	if err = aggregate.MoveTo(cmd.Position(), time.Now()); err != nil {
		return err
	}

	if err = courierRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()

	inTransit, err := orderRepo.GetInTransitByCourier(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	for _, orderAggregate := range inTransit {
		if err = orderAggregate.RefreshCourierPosition(cmd.Position()); err != nil {
			return err
		}

		if err = orderRepo.Update(ctx, orderAggregate); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
