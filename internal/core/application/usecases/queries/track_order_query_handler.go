package queries

import (
	"context"
	"database/sql"

	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/kernel"
	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/order"
	"github.com/Salamjean/kksExpress-backend/internal/pkg/errs"

	"gorm.io/gorm"
)

// TrackOrderQueryHandler serves the public tracking page. It reads the
// order row directly and, while the order is in transit, derives the
// remaining distance and a naive ETA from the courier's last known
// position.
type TrackOrderQueryHandler struct {
	db     *gorm.DB
	policy kernel.Policy
}

// NewTrackOrderQueryHandler creates a handler for order tracking queries.
// The policy supplies the average courier speed used for ETA estimates.
func NewTrackOrderQueryHandler(db *gorm.DB, policy kernel.Policy) (TrackOrderQueryHandler, error) {
	if err := policy.Validate(); err != nil {
		return TrackOrderQueryHandler{}, err
	}
	return TrackOrderQueryHandler{db: db, policy: policy}, nil
}

// Handle resolves the reference to the order's tracking projection.
// Returns ObjectNotFound when no order carries the reference.
func (h TrackOrderQueryHandler) Handle(
	ctx context.Context,
	query TrackOrderQuery,
) (TrackOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackOrderQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			reference,
			status,
			recipient_address,
			recipient_lat,
			recipient_lng,
			courier_name,
			courier_phone,
			courier_lat,
			courier_lng,
			created_at,
			delivered_at
		FROM orders
		WHERE reference = ?
	`, query.Reference()).Rows()
	if err != nil {
		return TrackOrderQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return TrackOrderQueryResponse{}, err
		}
		return TrackOrderQueryResponse{}, errs.NewObjectNotFoundError("reference", query.Reference())
	}

	var response TrackOrderQueryResponse
	var recipientLat, recipientLng float64
	var courierLat, courierLng sql.NullFloat64
	var deliveredAt sql.NullTime

	err = rows.Scan(
		&response.Reference,
		&response.Status,
		&response.RecipientAddress,
		&recipientLat,
		&recipientLng,
		&response.CourierName,
		&response.CourierPhone,
		&courierLat,
		&courierLng,
		&response.CreatedAt,
		&deliveredAt,
	)
	if err != nil {
		return TrackOrderQueryResponse{}, err
	}

	if deliveredAt.Valid {
		at := deliveredAt.Time
		response.DeliveredAt = &at
	}

	if response.Status == order.InTransit.String() && courierLat.Valid && courierLng.Valid {
		h.estimateArrival(&response, courierLat.Float64, courierLng.Float64, recipientLat, recipientLng)
	}

	return response, nil
}

// estimateArrival fills in the remaining distance and minute estimate.
// Bad stored coordinates leave the estimate empty rather than failing
// the whole tracking request.
func (h TrackOrderQueryHandler) estimateArrival(
	response *TrackOrderQueryResponse,
	courierLat, courierLng, recipientLat, recipientLng float64,
) {
	courierPos, err := kernel.NewGeoPoint(courierLat, courierLng)
	if err != nil {
		return
	}
	destination, err := kernel.NewGeoPoint(recipientLat, recipientLng)
	if err != nil {
		return
	}

	distanceKm := courierPos.DistanceKmTo(destination)
	minutes := kernel.EstimateMinutes(distanceKm, h.policy.AverageSpeedKmh())

	response.RemainingKm = &distanceKm
	response.EstimatedMinutes = &minutes
}
