package ports

import (
	"context"
	"time"

	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/kernel"
	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for payment rows.
type PaymentRepository interface {
	// Add persists a new payment row.
	// The payment must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *payment.Payment) error

	// Update persists changes to an existing payment row, including the
	// audit stamps rewritten by the reconciliation pass.
	Update(ctx context.Context, aggregate *payment.Payment) error

	// Get retrieves a payment by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error)

	// GetByReference retrieves a payment by its business reference.
	// Gateway callbacks identify payments this way.
	GetByReference(ctx context.Context, reference string) (*payment.Payment, error)

	// GetAllByCourier retrieves the courier's full payment history,
	// oldest first. The ledger calculator derives everything from it.
	GetAllByCourier(ctx context.Context, courierID kernel.UUID) ([]*payment.Payment, error)

	// GetPendingMobileSince retrieves pending mobile-money payments
	// created after the cutoff, across all couriers. The confirmation
	// sweep polls the gateway for each of them.
	GetPendingMobileSince(ctx context.Context, cutoff time.Time) ([]*payment.Payment, error)
}
