package commands

import (
	"context"
	"time"

	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/kernel"
	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/order"
	"github.com/Salamjean/kksExpress-backend/internal/pkg/errs"
)

// AcceptOrderCommandHandler assigns a pending order to a courier.
// Only active couriers below the concurrent-order cap may accept, and
// the persistence layer guards against two couriers winning the same
// order with a conditional update.
type AcceptOrderCommandHandler struct {
	uowFactory UoWFactory
	policy     kernel.Policy
}

// NewAcceptOrderCommandHandler creates a handler for order acceptance.
func NewAcceptOrderCommandHandler(uowFactory UoWFactory, policy kernel.Policy) (AcceptOrderCommandHandler, error) {
	if err := policy.Validate(); err != nil {
		return AcceptOrderCommandHandler{}, err
	}

	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}, nil
}

// Handle processes the accept command.
// Verifies the courier is allowed to take work, snapshots the courier
// onto the order and persists the transition with a conditional update
// so a concurrent accept of the same order fails with a conflict.
func (h *AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) error {
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

	aggregate, err := uow.CourierRepository().Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	if !aggregate.CanAcceptOrders() {
		return errs.NewConflictError("courier is not active")
	}

	orderRepo := uow.OrderRepository()

	activeCount, err := orderRepo.CountActiveByCourier(ctx, cmd.CourierID())
	if err != nil {
		return err
	}
	if activeCount >= h.policy.MaxActiveOrders() {
		return errs.NewConflictError("courier has reached the active order limit")
	}

	orderAggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	courierInfo, err := order.NewCourierInfo(
		aggregate.ID(),
		aggregate.Name(),
		aggregate.Phone(),
		aggregate.Email(),
		aggregate.Position(),
	)
	if err != nil {
		return err
	}

	if err = orderAggregate.Accept(courierInfo, time.Now()); err != nil {
		return err
	}

	if err = orderRepo.UpdateAccepted(ctx, orderAggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
