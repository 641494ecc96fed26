package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetSenderOrdersQueryHandler lists the orders placed under a sender's
// phone number.
type GetSenderOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetSenderOrdersQueryHandler creates a handler for sender order listings.
func NewGetSenderOrdersQueryHandler(db *gorm.DB) GetSenderOrdersQueryHandler {
	return GetSenderOrdersQueryHandler{db: db}
}

// Handle returns the sender's orders, newest first.
func (h GetSenderOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetSenderOrdersQuery,
) ([]GetSenderOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetSenderOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			reference,
			status,
			recipient_name,
			recipient_address,
			package_label,
			fee,
			courier_name,
			courier_phone,
			created_at
		FROM orders
		WHERE sender_phone = ?
		ORDER BY created_at DESC
	`, query.SenderPhone()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetSenderOrdersQueryResponse

		err = rows.Scan(
			&orderResp.Reference,
			&orderResp.Status,
			&orderResp.RecipientName,
			&orderResp.DeliveryAddress,
			&orderResp.PackageLabel,
			&orderResp.Fee,
			&orderResp.CourierName,
			&orderResp.CourierPhone,
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
