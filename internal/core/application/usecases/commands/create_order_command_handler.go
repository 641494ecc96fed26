package commands

import (
	"context"
	"time"

	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/kernel"
	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/order"
)

// CreateOrderResult carries the identifiers the sender needs to follow
// the new order.
type CreateOrderResult struct {
	Reference string
}

// CreateOrderCommandHandler handles the business logic for order creation.
// New orders are registered in "pending" status and become visible to
// couriers browsing available deliveries.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     kernel.Policy
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence and the business
// policy supplying the default delivery fee.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, policy kernel.Policy) (CreateOrderCommandHandler, error) {
	if err := policy.Validate(); err != nil {
		return CreateOrderCommandHandler{}, err
	}

	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}, nil
}

// Handle processes the order creation command.
// Generates a human-readable tracking reference, applies the default fee
// when none was requested and persists the order in "pending" status.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	now := time.Now()

	fee := cmd.Fee()
	if fee.IsZero() {
		fee = h.policy.DefaultFee()
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		kernel.NewOrderReference(now),
		cmd.Sender(),
		cmd.Recipient(),
		cmd.Package(),
		fee,
		now,
	)
	if err != nil {
		return CreateOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	return CreateOrderResult{Reference: newOrder.Reference()}, nil
}
