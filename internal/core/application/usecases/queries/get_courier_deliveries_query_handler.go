package queries

import (
	"context"

	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetCourierDeliveriesQueryHandler reads a courier's completed deliveries.
type GetCourierDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetCourierDeliveriesQueryHandler creates a handler for delivery history queries.
func NewGetCourierDeliveriesQueryHandler(db *gorm.DB) GetCourierDeliveriesQueryHandler {
	return GetCourierDeliveriesQueryHandler{db: db}
}

// Handle returns the courier's delivered orders, most recent first.
func (h GetCourierDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetCourierDeliveriesQuery,
) ([]GetCourierDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	deliveries := make([]GetCourierDeliveriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			reference,
			recipient_name,
			recipient_address,
			fee,
			delivered_at
		FROM orders
		WHERE courier_id = ? AND status = ?
		ORDER BY delivered_at DESC
	`, query.CourierID().Bytes(), order.Delivered.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var delivery GetCourierDeliveriesQueryResponse

		err = rows.Scan(
			&delivery.Reference,
			&delivery.RecipientName,
			&delivery.DeliveryAddress,
			&delivery.Fee,
			&delivery.DeliveredAt,
		)
		if err != nil {
			return nil, err
		}

		deliveries = append(deliveries, delivery)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}
