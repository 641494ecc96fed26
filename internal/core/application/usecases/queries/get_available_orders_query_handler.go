package queries

import (
	"context"

	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetAvailableOrdersQueryHandler reads the claimable order feed straight
// from the orders table.
type GetAvailableOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableOrdersQueryHandler creates a handler for the order feed.
func NewGetAvailableOrdersQueryHandler(db *gorm.DB) GetAvailableOrdersQueryHandler {
	return GetAvailableOrdersQueryHandler{db: db}
}

// Handle returns all pending unassigned orders, newest first.
func (h GetAvailableOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableOrdersQuery,
) ([]GetAvailableOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetAvailableOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			reference,
			sender_name,
			sender_pickup_address,
			recipient_name,
			recipient_address,
			package_category,
			package_nature,
			package_label,
			fee,
			created_at
		FROM orders
		WHERE status = ? AND courier_id IS NULL
		ORDER BY created_at DESC
	`, order.Pending.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetAvailableOrdersQueryResponse

		err = rows.Scan(
			&orderResp.Reference,
			&orderResp.SenderName,
			&orderResp.PickupAddress,
			&orderResp.RecipientName,
			&orderResp.DeliveryAddress,
			&orderResp.PackageCategory,
			&orderResp.PackageNature,
			&orderResp.PackageLabel,
			&orderResp.Fee,
			&orderResp.CreatedAt,
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
