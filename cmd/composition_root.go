package cmd

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"gorm.io/gorm"

	adapterhttp "github.com/Salamjean/kksExpress-backend/internal/adapters/in/http"
	"github.com/Salamjean/kksExpress-backend/internal/adapters/out/cinetpay"
	"github.com/Salamjean/kksExpress-backend/internal/adapters/out/notification"
	"github.com/Salamjean/kksExpress-backend/internal/adapters/out/postgres"
	"github.com/Salamjean/kksExpress-backend/internal/adapters/out/postgres/paymentrepo"
	"github.com/Salamjean/kksExpress-backend/internal/core/application/usecases/commands"
	"github.com/Salamjean/kksExpress-backend/internal/core/application/usecases/queries"
	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/kernel"
	"github.com/Salamjean/kksExpress-backend/internal/core/ports"
	"github.com/Salamjean/kksExpress-backend/internal/jobs"
)

const gatewayHTTPTimeout = 30 * time.Second

// CompositionRoot wires adapters and use cases together.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	policy     kernel.Policy
	gateway    ports.PaymentGateway
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewCompositionRoot builds the object graph from the loaded config.
func NewCompositionRoot(ctx context.Context, config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	gateway, err := cinetpay.NewClient(&http.Client{Timeout: gatewayHTTPTimeout}, cinetpay.Config{
		APIKey:    config.CinetPayAPIKey,
		SiteID:    config.CinetPaySiteID,
		BaseURL:   config.CinetPayBaseURL,
		NotifyURL: config.CinetPayNotifyURL,
		ReturnURL: config.CinetPayReturnURL,
	})
	if err != nil {
		return CompositionRoot{}, err
	}

	sender, err := notification.NewSESV2Sender(ctx, config.SESRegion, config.SESFromEmail)
	if err != nil {
		return CompositionRoot{}, err
	}

	notifier, err := notification.NewEmailNotifier(sender)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		policy:     kernel.DefaultPolicy(),
		gateway:    gateway,
		notifier:   notifier,
		logger:     logger,
	}, nil
}

// CreateHTTPServer builds the REST server with every handler wired.
func (c *CompositionRoot) CreateHTTPServer() (*adapterhttp.Server, error) {
	createOrder, err := commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.policy)
	if err != nil {
		return nil, err
	}

	acceptOrder, err := commands.NewAcceptOrderCommandHandler(c.crossUoWFactory(), c.policy)
	if err != nil {
		return nil, err
	}

	recordCash, err := commands.NewRecordCashPaymentCommandHandler(c.paymentUoWFactory(), c.policy, time.Now)
	if err != nil {
		return nil, err
	}

	initiateMobile, err := commands.NewInitiateMobilePaymentCommandHandler(
		c.paymentUoWFactory(), c.gateway, c.policy, time.Now,
	)
	if err != nil {
		return nil, err
	}

	confirmMobile, err := c.createConfirmMobilePaymentCommandHandler()
	if err != nil {
		return nil, err
	}

	gatewayCallback, err := commands.NewProcessGatewayCallbackCommandHandler(
		c.paymentUoWFactory(), c.policy, time.Now, c.logger,
	)
	if err != nil {
		return nil, err
	}

	trackOrder, err := queries.NewTrackOrderQueryHandler(c.gormDB, c.policy)
	if err != nil {
		return nil, err
	}

	amountDue, err := queries.NewGetAmountDueTodayQueryHandler(c.paymentReadRepository(), c.policy, time.Now)
	if err != nil {
		return nil, err
	}

	paymentHistory, err := queries.NewGetPaymentHistoryQueryHandler(c.paymentReadRepository(), c.policy, time.Now)
	if err != nil {
		return nil, err
	}

	dayDetail, err := queries.NewGetDayDetailQueryHandler(c.paymentReadRepository(), c.policy, time.Now)
	if err != nil {
		return nil, err
	}

	pendingMobile, err := queries.NewGetPendingMobilePaymentsQueryHandler(c.gormDB, time.Now)
	if err != nil {
		return nil, err
	}

	return adapterhttp.NewServer(
		createOrder,
		acceptOrder,
		commands.NewPickUpOrderCommandHandler(c.orderUoWFactory(), c.notifier, c.logger),
		commands.NewStartTransitCommandHandler(c.orderUoWFactory()),
		commands.NewCompleteDeliveryCommandHandler(c.orderUoWFactory(), c.notifier, c.logger),
		commands.NewCancelOrderCommandHandler(c.orderUoWFactory()),
		commands.NewRegisterCourierCommandHandler(c.courierUoWFactory()),
		commands.NewActivateCourierCommandHandler(c.courierUoWFactory()),
		commands.NewUpdateCourierPositionCommandHandler(c.crossUoWFactory()),
		recordCash,
		initiateMobile,
		confirmMobile,
		commands.NewCancelPendingPaymentCommandHandler(c.paymentUoWFactory()),
		gatewayCallback,
		trackOrder,
		queries.NewGetAvailableOrdersQueryHandler(c.gormDB),
		queries.NewGetCourierDeliveriesQueryHandler(c.gormDB),
		queries.NewGetSenderOrdersQueryHandler(c.gormDB),
		queries.NewGetCancelledOrdersQueryHandler(c.gormDB),
		amountDue,
		paymentHistory,
		dayDetail,
		pendingMobile,
	), nil
}

// CreateJobManager builds the background jobs.
func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	confirmMobile, err := c.createConfirmMobilePaymentCommandHandler()
	if err != nil {
		return nil, err
	}

	sweep := jobs.NewPendingPaymentSweepJob(c.paymentReadRepository(), confirmMobile, c.logger)

	return jobs.NewJobManager(sweep), nil
}

func (c *CompositionRoot) createConfirmMobilePaymentCommandHandler() (commands.ConfirmMobilePaymentCommandHandler, error) {
	return commands.NewConfirmMobilePaymentCommandHandler(c.paymentUoWFactory(), c.gateway, c.policy, time.Now)
}

// paymentReadRepository serves read paths that run outside a unit of work.
func (c *CompositionRoot) paymentReadRepository() ports.PaymentRepository {
	return paymentrepo.NewGormPaymentRepository(c.gormDB, noopTracker{})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) courierUoWFactory() commands.CourierUoWFactory {
	return FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) crossUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) paymentUoWFactory() commands.PaymentUoWFactory {
	return FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}

// noopTracker satisfies the repositories' tracker dependency on read
// paths, where no aggregate changes need recording.
type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}
