package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/Salamjean/kksExpress-backend/internal/adapters/out/postgres/orderrepo"
	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/kernel"
	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/order"
	"github.com/Salamjean/kksExpress-backend/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	sender, err := order.NewSender("Awa Diabate", "+2250701020304", "awa@example.com", "", "Cocody Riviera 3", nil)
	suite.Require().NoError(err)

	geo, err := kernel.NewGeoPoint(5.3599, -4.0083)
	suite.Require().NoError(err)
	recipient, err := order.NewRecipient("Mamadou Kone", "+2250504030201", "", "Treichville Avenue 16", geo)
	suite.Require().NoError(err)

	pkg, err := order.NewPackage(order.CategoryDocuments, order.NatureStandard, "Contract", "Signed originals")
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewOrderReference(time.Now()),
		sender,
		recipient,
		pkg,
		kernel.MustMoneyFromInt(1500),
		time.Now(),
	)
	suite.Require().NoError(err)
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) createCourierInfo() order.CourierInfo {
	pos, err := kernel.NewGeoPoint(5.3364, -4.0267)
	suite.Require().NoError(err)
	info, err := order.NewCourierInfo(kernel.NewUUID(), "Issa Traore", "+2250102030405", "issa@example.com", &pos)
	suite.Require().NoError(err)
	return info
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	restored, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.Reference(), restored.Reference())
	suite.Equal(order.Pending, restored.Status())
	suite.Equal(testOrder.Sender().Name(), restored.Sender().Name())
	suite.Equal(testOrder.Recipient().Address(), restored.Recipient().Address())
	suite.Equal(order.CategoryDocuments, restored.Package().Category())
	suite.True(restored.Fee().IsEqual(kernel.MustMoneyFromInt(1500)))
	suite.Nil(restored.Courier())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByReference() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	restored, err := suite.repository.GetByReference(ctx, testOrder.Reference())
	suite.Require().NoError(err)
	suite.True(restored.ID().IsEqual(testOrder.ID()))

	_, err = suite.repository.GetByReference(ctx, "CMD2608300000")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsLifecycle() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	info := suite.createCourierInfo()
	suite.Require().NoError(testOrder.Accept(info, time.Now()))
	suite.Require().NoError(suite.repository.UpdateAccepted(ctx, testOrder))
	suite.Require().NoError(testOrder.PickUp(time.Now()))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	restored, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.PickedUp, restored.Status())
	suite.Require().NotNil(restored.Courier())
	suite.True(restored.Courier().ID().IsEqual(info.ID()))
	suite.Equal(testOrder.ConfirmationCode(), restored.ConfirmationCode())
	suite.NotNil(restored.AcceptedAt())
	suite.NotNil(restored.PickedUpAt())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateAccepted_SecondCourierLosesRace() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	winner, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	loser, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(winner.Accept(suite.createCourierInfo(), time.Now()))
	suite.Require().NoError(suite.repository.UpdateAccepted(ctx, winner))

	suite.Require().NoError(loser.Accept(suite.createCourierInfo(), time.Now()))
	err = suite.repository.UpdateAccepted(ctx, loser)
	suite.Require().ErrorIs(err, errs.ErrConflict)

	restored, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(restored.Courier().ID().IsEqual(winner.Courier().ID()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestCountActiveByCourier() {
	ctx := context.Background()
	info := suite.createCourierInfo()

	for range 3 {
		o := suite.createTestOrder()
		suite.Require().NoError(o.Accept(info, time.Now()))
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	delivered := suite.createTestOrder()
	suite.Require().NoError(delivered.Accept(info, time.Now()))
	suite.Require().NoError(delivered.PickUp(time.Now()))
	suite.Require().NoError(delivered.StartTransit(time.Now()))
	suite.Require().NoError(delivered.Deliver(delivered.ConfirmationCode(), time.Now()))
	suite.Require().NoError(suite.repository.Add(ctx, delivered))

	count, err := suite.repository.CountActiveByCourier(ctx, info.ID())
	suite.Require().NoError(err)
	suite.Equal(3, count)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetInTransitByCourier() {
	ctx := context.Background()
	info := suite.createCourierInfo()

	moving := suite.createTestOrder()
	suite.Require().NoError(moving.Accept(info, time.Now()))
	suite.Require().NoError(moving.PickUp(time.Now()))
	suite.Require().NoError(moving.StartTransit(time.Now()))
	suite.Require().NoError(suite.repository.Add(ctx, moving))

	waiting := suite.createTestOrder()
	suite.Require().NoError(waiting.Accept(info, time.Now()))
	suite.Require().NoError(suite.repository.Add(ctx, waiting))

	inTransit, err := suite.repository.GetInTransitByCourier(ctx, info.ID())
	suite.Require().NoError(err)
	suite.Require().Len(inTransit, 1)
	suite.True(inTransit[0].ID().IsEqual(moving.ID()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
