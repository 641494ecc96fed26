package queries

import (
	"context"

	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetCancelledOrdersQueryHandler lists a sender's withdrawn orders.
type GetCancelledOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCancelledOrdersQueryHandler creates a handler for cancelled order listings.
func NewGetCancelledOrdersQueryHandler(db *gorm.DB) GetCancelledOrdersQueryHandler {
	return GetCancelledOrdersQueryHandler{db: db}
}

// Handle returns the sender's cancelled orders, most recently cancelled first.
func (h GetCancelledOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCancelledOrdersQuery,
) ([]GetCancelledOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetCancelledOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			reference,
			recipient_name,
			recipient_address,
			package_label,
			created_at,
			cancelled_at
		FROM orders
		WHERE sender_phone = ? AND status = ?
		ORDER BY cancelled_at DESC
	`, query.SenderPhone(), order.Cancelled.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetCancelledOrdersQueryResponse

		err = rows.Scan(
			&orderResp.Reference,
			&orderResp.RecipientName,
			&orderResp.DeliveryAddress,
			&orderResp.PackageLabel,
			&orderResp.CreatedAt,
			&orderResp.CancelledAt,
		)
		if err != nil {
			return nil, err
		}

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
