package http_test

import (
	"context"
	"sort"
	"time"

	"github.com/Salamjean/kksExpress-backend/internal/core/application/usecases/commands"
	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/courier"
	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/kernel"
	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/order"
	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/payment"
	"github.com/Salamjean/kksExpress-backend/internal/core/ports"
	"github.com/Salamjean/kksExpress-backend/internal/pkg/errs"
)

// memStore is an in-memory stand-in for the postgres repositories so
// endpoint tests run without a database.
type memStore struct {
	orders   map[string]*order.Order
	couriers map[string]*courier.Courier
	payments map[string]*payment.Payment
}

func newMemStore() *memStore {
	return &memStore{
		orders:   make(map[string]*order.Order),
		couriers: make(map[string]*courier.Courier),
		payments: make(map[string]*payment.Payment),
	}
}

func (s *memStore) Add(ctx context.Context, aggregate *order.Order) error {
	if _, ok := s.orders[aggregate.ID().String()]; ok {
		return errs.NewConflictError("order already exists")
	}
	s.orders[aggregate.ID().String()] = aggregate
	return nil
}

func (s *memStore) Update(_ context.Context, aggregate *order.Order) error {
	s.orders[aggregate.ID().String()] = aggregate
	return nil
}

func (s *memStore) UpdateAccepted(_ context.Context, aggregate *order.Order) error {
	s.orders[aggregate.ID().String()] = aggregate
	return nil
}

func (s *memStore) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	aggregate, ok := s.orders[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id)
	}
	return aggregate, nil
}

func (s *memStore) GetByReference(_ context.Context, reference string) (*order.Order, error) {
	for _, aggregate := range s.orders {
		if aggregate.Reference() == reference {
			return aggregate, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("reference", reference)
}

func (s *memStore) CountActiveByCourier(_ context.Context, courierID kernel.UUID) (int, error) {
	count := 0
	for _, aggregate := range s.orders {
		switch aggregate.Status() {
		case order.Accepted, order.PickedUp, order.InTransit:
			if aggregate.BelongsToCourier(courierID) {
				count++
			}
		}
	}
	return count, nil
}

func (s *memStore) GetInTransitByCourier(_ context.Context, courierID kernel.UUID) ([]*order.Order, error) {
	inTransit := make([]*order.Order, 0)
	for _, aggregate := range s.orders {
		if aggregate.Status() == order.InTransit && aggregate.BelongsToCourier(courierID) {
			inTransit = append(inTransit, aggregate)
		}
	}
	return inTransit, nil
}

type memCourierRepo struct{ store *memStore }

func (r memCourierRepo) Add(_ context.Context, aggregate *courier.Courier) error {
	if _, ok := r.store.couriers[aggregate.ID().String()]; ok {
		return errs.NewConflictError("courier already exists")
	}
	r.store.couriers[aggregate.ID().String()] = aggregate
	return nil
}

func (r memCourierRepo) Update(_ context.Context, aggregate *courier.Courier) error {
	r.store.couriers[aggregate.ID().String()] = aggregate
	return nil
}

func (r memCourierRepo) Get(_ context.Context, id kernel.UUID) (*courier.Courier, error) {
	aggregate, ok := r.store.couriers[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("courier", id)
	}
	return aggregate, nil
}

type memPaymentRepo struct{ store *memStore }

func (r memPaymentRepo) Add(_ context.Context, aggregate *payment.Payment) error {
	if _, ok := r.store.payments[aggregate.Reference()]; ok {
		return errs.NewConflictError("payment reference already exists")
	}
	r.store.payments[aggregate.Reference()] = aggregate
	return nil
}

func (r memPaymentRepo) Update(_ context.Context, aggregate *payment.Payment) error {
	r.store.payments[aggregate.Reference()] = aggregate
	return nil
}

func (r memPaymentRepo) Get(_ context.Context, id kernel.UUID) (*payment.Payment, error) {
	for _, aggregate := range r.store.payments {
		if aggregate.ID().IsEqual(id) {
			return aggregate, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("payment", id)
}

func (r memPaymentRepo) GetByReference(_ context.Context, reference string) (*payment.Payment, error) {
	aggregate, ok := r.store.payments[reference]
	if !ok {
		return nil, errs.NewObjectNotFoundError("reference", reference)
	}
	return aggregate, nil
}

func (r memPaymentRepo) GetAllByCourier(_ context.Context, courierID kernel.UUID) ([]*payment.Payment, error) {
	rows := make([]*payment.Payment, 0)
	for _, aggregate := range r.store.payments {
		if aggregate.CourierID().IsEqual(courierID) {
			rows = append(rows, aggregate)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].PaidAt().Before(rows[j].PaidAt()) })
	return rows, nil
}

func (r memPaymentRepo) GetPendingMobileSince(_ context.Context, cutoff time.Time) ([]*payment.Payment, error) {
	rows := make([]*payment.Payment, 0)
	for _, aggregate := range r.store.payments {
		if aggregate.Status() == payment.StatusPending &&
			aggregate.Method() != payment.MethodCash &&
			aggregate.PaidAt().After(cutoff) {
			rows = append(rows, aggregate)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].PaidAt().Before(rows[j].PaidAt()) })
	return rows, nil
}

// memUoW satisfies every unit of work shape the command handlers need.
type memUoW struct{ store *memStore }

func (u memUoW) Begin(context.Context) error    { return nil }
func (u memUoW) Commit(context.Context) error   { return nil }
func (u memUoW) Rollback(context.Context) error { return nil }

func (u memUoW) OrderRepository() ports.OrderRepository {
	return u.store
}

func (u memUoW) CourierRepository() ports.CourierRepository {
	return memCourierRepo{store: u.store}
}

func (u memUoW) PaymentRepository() ports.PaymentRepository {
	return memPaymentRepo{store: u.store}
}

type memOrderUoWFactory struct{ uow memUoW }

func (f memOrderUoWFactory) Create() commands.OrderUoW { return f.uow }

type memCourierUoWFactory struct{ uow memUoW }

func (f memCourierUoWFactory) Create() commands.CourierUoW { return f.uow }

type memUoWFactory struct{ uow memUoW }

func (f memUoWFactory) Create() commands.UoW { return f.uow }

type memPaymentUoWFactory struct{ uow memUoW }

func (f memPaymentUoWFactory) Create() commands.PaymentUoW { return f.uow }

type noopNotifier struct{}

func (noopNotifier) SendDeliveryCode(context.Context, *order.Order) error  { return nil }
func (noopNotifier) SendStatusChanged(context.Context, *order.Order) error { return nil }

// stubGateway accepts every checkout it is asked to open.
type stubGateway struct{}

func (stubGateway) Initiate(_ context.Context, req ports.InitiatePaymentRequest) (ports.InitiatePaymentResponse, error) {
	return ports.InitiatePaymentResponse{
		PaymentURL:       "https://secure.cinetpay.com/?method=token&token=stub",
		PaymentToken:     "stub",
		GatewayReference: "CPM-" + req.Reference,
	}, nil
}

func (stubGateway) CheckStatus(context.Context, string) (ports.CheckPaymentResult, error) {
	return ports.CheckPaymentResult{Status: ports.GatewayStatusAccepted}, nil
}
