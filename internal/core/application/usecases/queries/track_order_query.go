package queries

import (
	"errors"
	"time"

	"github.com/Salamjean/kksExpress-backend/internal/pkg/errs"
	"github.com/Salamjean/kksExpress-backend/internal/pkg/guard"
)

var (
	ErrTrackOrderQueryIsNotConstructed = errors.New(
		"TrackOrderQuery must be created via NewTrackOrderQuery constructor",
	)
)

// TrackOrderQuery looks an order up by its public reference. It is the
// query behind the anonymous tracking page, so it takes the reference
// printed on the receipt rather than an internal id.
//
// Example:
//
//	query, err := NewTrackOrderQuery("CMD2608301234")
//	if err != nil {
//	    return err
//	}
//
//	status, err := handler.Handle(ctx, query)
type TrackOrderQuery struct {
	reference string

	guard guard.ConstructorGuard
}

// NewTrackOrderQuery creates a tracking query for the given order reference.
func NewTrackOrderQuery(reference string) (TrackOrderQuery, error) {
	if reference == "" {
		return TrackOrderQuery{}, errs.NewValueIsRequiredError("reference")
	}
	return TrackOrderQuery{
		reference: reference,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackOrderQuery) Validate() error {
	return q.guard.Validate(ErrTrackOrderQueryIsNotConstructed)
}

// Reference returns the order reference being tracked.
func (q TrackOrderQuery) Reference() string {
	return q.reference
}

// TrackOrderQueryResponse is the public projection of an order's progress.
// Courier contact details appear once a courier has taken the order; the
// remaining distance and minute estimate appear only while the order is
// in transit and both live positions are known.
type TrackOrderQueryResponse struct {
	Reference        string
	Status           string
	RecipientAddress string
	CreatedAt        time.Time
	DeliveredAt      *time.Time

	CourierName  string
	CourierPhone string

	RemainingKm      *float64
	EstimatedMinutes *int
}
