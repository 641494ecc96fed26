package ports

import (
	"context"

	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/order"
)

// Notifier sends customer-facing notifications about order progress.
// Deliveries are best effort: handlers log failures and move on, a lost
// email never blocks a state transition.
type Notifier interface {
	// SendDeliveryCode sends the confirmation code to the sender once
	// the package is picked up.
	SendDeliveryCode(ctx context.Context, aggregate *order.Order) error

	// SendStatusChanged informs the sender that the order moved to a
	// new status.
	SendStatusChanged(ctx context.Context, aggregate *order.Order) error
}
