package ports

import (
	"context"

	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/kernel"
	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// UpdateAccepted persists the accept transition with a conditional
	// update guarding against a concurrent accept: the write only lands
	// on a row still pending with no courier. When another courier won
	// the race the method returns a conflict and writes nothing.
	UpdateAccepted(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByReference retrieves an order aggregate by its business reference.
	GetByReference(ctx context.Context, reference string) (*order.Order, error)

	// CountActiveByCourier counts the courier's orders in an active
	// status (accepted, picked up or in transit). Used to enforce the
	// concurrent-order cap before an accept.
	CountActiveByCourier(ctx context.Context, courierID kernel.UUID) (int, error)

	// GetInTransitByCourier retrieves the courier's orders currently in
	// transit. Position reports are propagated to exactly these orders.
	GetInTransitByCourier(ctx context.Context, courierID kernel.UUID) ([]*order.Order, error)
}
