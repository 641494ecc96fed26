package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/Salamjean/kksExpress-backend/internal/core/application/usecases/commands"
	"github.com/Salamjean/kksExpress-backend/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// sweepWindow bounds how far back the sweep chases unconfirmed mobile
// payments. Older sessions are abandoned on the gateway side.
const sweepWindow = 24 * time.Hour

// PendingPaymentSweepJob periodically polls the gateway for mobile
// payments stuck in pending. Payers frequently close the checkout page
// before the webhook fires, the sweep picks those up.
type PendingPaymentSweepJob struct {
	payments ports.PaymentRepository
	handler  commands.ConfirmMobilePaymentCommandHandler
	cron     *cron.Cron
	logger   *slog.Logger
	now      func() time.Time
}

// NewPendingPaymentSweepJob creates a sweep job running every five minutes.
func NewPendingPaymentSweepJob(
	payments ports.PaymentRepository,
	handler commands.ConfirmMobilePaymentCommandHandler,
	logger *slog.Logger,
) *PendingPaymentSweepJob {
	return &PendingPaymentSweepJob{
		payments: payments,
		handler:  handler,
		cron:     cron.New(),
		logger:   logger.With("component", "pending_payment_sweep_job"),
		now:      time.Now,
	}
}

// Start schedules the sweep every five minutes.
func (j *PendingPaymentSweepJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * *", func() {
		j.Sweep(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending payment sweep job started (running every five minutes)")
	return nil
}

// Sweep runs one pass: list pending mobile payments younger than the
// window and ask the gateway about each. Failures on one payment never
// stop the rest of the pass.
func (j *PendingPaymentSweepJob) Sweep(ctx context.Context) {
	cutoff := j.now().Add(-sweepWindow)

	rows, err := j.payments.GetPendingMobileSince(ctx, cutoff)
	if err != nil {
		j.logger.ErrorContext(ctx, "Pending payment sweep failed to list payments", "error", err)
		return
	}

	for _, row := range rows {
		cmd, err := commands.NewConfirmMobilePaymentCommand(row.Reference())
		if err != nil {
			j.logger.ErrorContext(ctx, "Pending payment sweep built an invalid command",
				"payment_reference", row.Reference(), "error", err)
			continue
		}

		result, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.WarnContext(ctx, "Pending payment sweep could not confirm payment",
				"payment_reference", row.Reference(), "error", err)
			continue
		}

		if result.Status != row.Status() {
			j.logger.InfoContext(ctx, "Pending payment resolved by sweep",
				"payment_reference", row.Reference(), "status", result.Status.String())
		}
	}
}

// Stop stops the sweep job.
func (j *PendingPaymentSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending payment sweep job stopped")
}
