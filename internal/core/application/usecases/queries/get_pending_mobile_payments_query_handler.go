package queries

import (
	"context"
	"time"

	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/payment"
	"github.com/Salamjean/kksExpress-backend/internal/pkg/errs"

	"gorm.io/gorm"
)

// gatewayConfirmationWindow is how long a pending mobile payment stays
// worth chasing. Older rows are considered abandoned by the gateway.
const gatewayConfirmationWindow = 24 * time.Hour

// GetPendingMobilePaymentsQueryHandler lists unconfirmed mobile payments
// directly from the payments table.
type GetPendingMobilePaymentsQueryHandler struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGetPendingMobilePaymentsQueryHandler creates a handler for the pending payment listing.
func NewGetPendingMobilePaymentsQueryHandler(db *gorm.DB, now func() time.Time) (GetPendingMobilePaymentsQueryHandler, error) {
	if now == nil {
		return GetPendingMobilePaymentsQueryHandler{}, errs.NewValueIsRequiredError("now")
	}
	return GetPendingMobilePaymentsQueryHandler{db: db, now: now}, nil
}

// Handle returns pending mobile payments younger than 24 hours, oldest first.
func (h GetPendingMobilePaymentsQueryHandler) Handle(
	ctx context.Context,
	query GetPendingMobilePaymentsQuery,
) ([]GetPendingMobilePaymentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cutoff := h.now().Add(-gatewayConfirmationWindow)
	payments := make([]GetPendingMobilePaymentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			reference,
			courier_name,
			courier_phone,
			amount,
			method,
			phone_used,
			paid_at
		FROM payments
		WHERE status = ? AND method <> ? AND paid_at > ?
		ORDER BY paid_at ASC
	`, payment.StatusPending.String(), payment.MethodCash.String(), cutoff).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var paymentResp GetPendingMobilePaymentsQueryResponse

		err = rows.Scan(
			&paymentResp.Reference,
			&paymentResp.CourierName,
			&paymentResp.CourierPhone,
			&paymentResp.Amount,
			&paymentResp.Method,
			&paymentResp.PhoneUsed,
			&paymentResp.PaidAt,
		)
		if err != nil {
			return nil, err
		}

		payments = append(payments, paymentResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return payments, nil
}
