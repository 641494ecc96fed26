package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/kernel"
	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/payment"
	"github.com/Salamjean/kksExpress-backend/internal/core/domain/services"
)

// ProcessGatewayCallbackResult tells the webhook endpoint how to answer
// the gateway: a positive ack stops redeliveries.
type ProcessGatewayCallbackResult struct {
	Acknowledged bool
	Status       payment.Status
}

// ProcessGatewayCallbackCommandHandler applies a gateway webhook to the
// payment it names. Webhooks are redelivered and arrive in any order,
// so the handler is idempotent and never returns an error: every
// outcome folds into the ack the gateway expects.
type ProcessGatewayCallbackCommandHandler struct {
	uowFactory PaymentUoWFactory
	calculator services.LedgerCalculator
	now        func() time.Time
	logger     *slog.Logger
}

// NewProcessGatewayCallbackCommandHandler creates a handler for gateway webhooks.
func NewProcessGatewayCallbackCommandHandler(
	uowFactory PaymentUoWFactory,
	policy kernel.Policy,
	now func() time.Time,
	logger *slog.Logger,
) (ProcessGatewayCallbackCommandHandler, error) {
	calculator, err := services.NewLedgerCalculator(policy)
	if err != nil {
		return ProcessGatewayCallbackCommandHandler{}, err
	}

	return ProcessGatewayCallbackCommandHandler{
		uowFactory: uowFactory,
		calculator: calculator,
		now:        now,
		logger:     logger,
	}, nil
}

// Handle processes the webhook.
// A success announcement completes the row and rewrites the audit
// stamps, a failure announcement fails it, a cancellation cancels it.
// Unrecognized vocabulary and rows already terminal leave the row
// untouched with a positive ack; an unknown reference acks negatively.
func (h *ProcessGatewayCallbackCommandHandler) Handle(
	ctx context.Context,
	cmd ProcessGatewayCallbackCommand,
) ProcessGatewayCallbackResult {
	if err := cmd.Validate(); err != nil {
		return ProcessGatewayCallbackResult{}
	}

	if cmd.Reference() == "" {
		return ProcessGatewayCallbackResult{}
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		h.logger.ErrorContext(ctx, "failed to open webhook transaction", slog.Any("error", err))
		return ProcessGatewayCallbackResult{}
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	paymentRepo := uow.PaymentRepository()

	row, err := paymentRepo.GetByReference(ctx, cmd.Reference())
	if err != nil {
		h.logger.WarnContext(ctx, "webhook names unknown payment",
			slog.String("reference", cmd.Reference()),
			slog.Any("error", err),
		)
		return ProcessGatewayCallbackResult{}
	}

	if row.Status().IsTerminal() {
		return ProcessGatewayCallbackResult{Acknowledged: true, Status: row.Status()}
	}

	switch classifyCallback(cmd.PageAction(), cmd.ErrorMessage()) {
	case payment.StatusComplete:
		err = row.Complete()
	case payment.StatusFailed:
		err = row.Fail(cmd.ErrorMessage())
	case payment.StatusCancelled:
		err = row.Cancel()
	default:
		return ProcessGatewayCallbackResult{Acknowledged: true, Status: row.Status()}
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to apply webhook verdict",
			slog.String("reference", row.Reference()),
			slog.Any("error", err),
		)
		return ProcessGatewayCallbackResult{}
	}

	if err = paymentRepo.Update(ctx, row); err != nil {
		h.logger.ErrorContext(ctx, "failed to persist webhook verdict",
			slog.String("reference", row.Reference()),
			slog.Any("error", err),
		)
		return ProcessGatewayCallbackResult{}
	}

	if row.Status() == payment.StatusComplete {
		history, err := paymentRepo.GetAllByCourier(ctx, row.CourierID())
		if err == nil {
			err = restampLedgers(ctx, paymentRepo, h.calculator, history, kernel.DateOf(h.now()))
		}
		if err != nil {
			h.logger.ErrorContext(ctx, "failed to restamp ledger after webhook",
				slog.String("reference", row.Reference()),
				slog.Any("error", err),
			)
			return ProcessGatewayCallbackResult{}
		}
	}

	if err = uow.Commit(ctx); err != nil {
		h.logger.ErrorContext(ctx, "failed to commit webhook transaction",
			slog.String("reference", row.Reference()),
			slog.Any("error", err),
		)
		return ProcessGatewayCallbackResult{}
	}

	return ProcessGatewayCallbackResult{Acknowledged: true, Status: row.Status()}
}

// classifyCallback translates the gateway's webhook vocabulary into the
// target payment status. The gateway announces success through the
// error message field as often as through the page action, and PAYMENT
// means the payer is still on the checkout page.
func classifyCallback(pageAction, errorMessage string) payment.Status {
	switch errorMessage {
	case "SUCCES", "SUCCESS":
		return payment.StatusComplete
	}

	switch pageAction {
	case "SUCCESS", "ACCEPTED":
		return payment.StatusComplete
	case "PAYMENT":
		return payment.StatusPending
	case "CANCELLED":
		return payment.StatusCancelled
	}

	if strings.Contains(errorMessage, "REFUSED") ||
		strings.Contains(errorMessage, "FAILED") ||
		strings.Contains(errorMessage, "ECHEC") {
		return payment.StatusFailed
	}

	return payment.StatusUnknown
}
