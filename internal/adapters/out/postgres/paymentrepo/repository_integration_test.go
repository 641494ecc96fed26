package paymentrepo_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Salamjean/kksExpress-backend/internal/adapters/out/postgres/paymentrepo"
	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/kernel"
	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/payment"
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

// PaymentRepositoryIntegrationTestSuite provides integration tests for PaymentRepository
// using PostgreSQL containers to verify database persistence behavior.
type PaymentRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *paymentrepo.GormPaymentRepository
	tracker    *MockAggregateTracker
}

func (suite *PaymentRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&paymentrepo.PaymentDTO{}))
}

func (suite *PaymentRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE payments").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = paymentrepo.NewGormPaymentRepository(suite.db, suite.tracker)
}

func (suite *PaymentRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *PaymentRepositoryIntegrationTestSuite) createCashPayment(courierID kernel.UUID, amount int64, at time.Time) *payment.Payment {
	row, err := payment.NewCashPayment(
		kernel.NewUUID(),
		kernel.NewPaymentReference(kernel.PaymentReferencePrefixCash, courierID, at),
		courierID,
		"Issa Traore",
		"+2250102030405",
		kernel.MustMoneyFromInt(amount),
		"versement espece",
		at,
	)
	suite.Require().NoError(err)
	return row
}

func (suite *PaymentRepositoryIntegrationTestSuite) createMobilePayment(courierID kernel.UUID, amount int64, at time.Time) *payment.Payment {
	row, err := payment.NewMobilePayment(
		kernel.NewUUID(),
		kernel.NewPaymentReference(kernel.PaymentReferencePrefixMobile, courierID, at),
		courierID,
		"Issa Traore",
		"+2250102030405",
		kernel.MustMoneyFromInt(amount),
		payment.MethodWave,
		"+2250102030405",
		"versement wave",
		at,
	)
	suite.Require().NoError(err)
	return row
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	courierID := kernel.NewUUID()
	at := time.Now().Truncate(time.Second)
	row := suite.createCashPayment(courierID, 5000, at)

	suite.Require().NoError(suite.repository.Add(ctx, row))

	restored, err := suite.repository.Get(ctx, row.ID())
	suite.Require().NoError(err)
	suite.Equal(row.Reference(), restored.Reference())
	suite.True(restored.CourierID().IsEqual(courierID))
	suite.True(restored.Amount().IsEqual(kernel.MustMoneyFromInt(5000)))
	suite.Equal(payment.MethodCash, restored.Method())
	suite.Equal(payment.StatusComplete, restored.Status())
	suite.True(restored.PaidOn().IsEqual(kernel.DateOf(at)))
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestGetByReference() {
	ctx := context.Background()
	row := suite.createMobilePayment(kernel.NewUUID(), 3000, time.Now())
	suite.Require().NoError(suite.repository.Add(ctx, row))

	restored, err := suite.repository.GetByReference(ctx, row.Reference())
	suite.Require().NoError(err)
	suite.True(restored.ID().IsEqual(row.ID()))
	suite.Equal(payment.StatusPending, restored.Status())

	_, err = suite.repository.GetByReference(ctx, "ES0000000000000000")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestUpdate_PersistsStatusAndAudit() {
	ctx := context.Background()
	row := suite.createMobilePayment(kernel.NewUUID(), 7000, time.Now())
	suite.Require().NoError(suite.repository.Add(ctx, row))

	suite.Require().NoError(row.Complete())
	suite.Require().NoError(row.StampDayAudit(
		kernel.MustMoneyFromInt(7000),
		kernel.ZeroMoney(),
		kernel.MustMoneyFromInt(2000),
		payment.SettlementComplete,
	))
	suite.Require().NoError(suite.repository.Update(ctx, row))

	restored, err := suite.repository.Get(ctx, row.ID())
	suite.Require().NoError(err)
	suite.Equal(payment.StatusComplete, restored.Status())
	suite.True(restored.AmountDueForDay().IsEqual(kernel.MustMoneyFromInt(7000)))
	suite.True(restored.RemainingForDay().IsZero())
	suite.True(restored.Arrears().IsEqual(kernel.MustMoneyFromInt(2000)))
	suite.Equal(payment.SettlementComplete, restored.DaySettlement())
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestGetAllByCourier_OrderedAndScoped() {
	ctx := context.Background()
	courierID := kernel.NewUUID()
	base := time.Now().Add(-72 * time.Hour)

	newest := suite.createCashPayment(courierID, 3000, base.Add(48*time.Hour))
	oldest := suite.createCashPayment(courierID, 1000, base)
	middle := suite.createCashPayment(courierID, 2000, base.Add(24*time.Hour))
	other := suite.createCashPayment(kernel.NewUUID(), 9000, base)

	for _, row := range []*payment.Payment{newest, oldest, middle, other} {
		suite.Require().NoError(suite.repository.Add(ctx, row))
	}

	rows, err := suite.repository.GetAllByCourier(ctx, courierID)
	suite.Require().NoError(err)
	suite.Require().Len(rows, 3)
	suite.True(rows[0].ID().IsEqual(oldest.ID()))
	suite.True(rows[1].ID().IsEqual(middle.ID()))
	suite.True(rows[2].ID().IsEqual(newest.ID()))
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestGetPendingMobileSince() {
	ctx := context.Background()
	courierID := kernel.NewUUID()
	now := time.Now()

	recent := suite.createMobilePayment(courierID, 2000, now.Add(-1*time.Hour))
	stale := suite.createMobilePayment(courierID, 2000, now.Add(-48*time.Hour))
	settled := suite.createMobilePayment(courierID, 2000, now.Add(-2*time.Hour))
	suite.Require().NoError(settled.Complete())
	cash := suite.createCashPayment(courierID, 2000, now.Add(-1*time.Hour))

	for _, row := range []*payment.Payment{recent, stale, settled, cash} {
		suite.Require().NoError(suite.repository.Add(ctx, row))
	}

	rows, err := suite.repository.GetPendingMobileSince(ctx, now.Add(-24*time.Hour))
	suite.Require().NoError(err)
	suite.Require().Len(rows, 1)
	suite.True(rows[0].ID().IsEqual(recent.ID()))
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestReferenceIsUnique() {
	ctx := context.Background()
	row := suite.createCashPayment(kernel.NewUUID(), 1000, time.Now())
	suite.Require().NoError(suite.repository.Add(ctx, row))

	duplicate, err := payment.NewCashPayment(
		kernel.NewUUID(),
		row.Reference(),
		row.CourierID(),
		"Issa Traore",
		"+2250102030405",
		kernel.MustMoneyFromInt(1000),
		fmt.Sprintf("doublon de %s", row.Reference()),
		time.Now(),
	)
	suite.Require().NoError(err)
	suite.Require().Error(suite.repository.Add(ctx, duplicate))
}

func TestPaymentRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentRepositoryIntegrationTestSuite))
}
