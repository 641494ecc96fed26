package commands

import (
	"context"

	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/kernel"
	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/payment"
	"github.com/Salamjean/kksExpress-backend/internal/core/domain/services"
	"github.com/Salamjean/kksExpress-backend/internal/core/ports"
)

// restampLedgers rewrites the per-day audit stamps on all of a courier's
// payment rows after the ledger changed. Every row carries the balance
// of its day plus the arrears that stood before that day, so finance can
// read the whole history off the rows without replaying the calculator.
func restampLedgers(
	ctx context.Context,
	repo ports.PaymentRepository,
	calc services.LedgerCalculator,
	payments []*payment.Payment,
	today kernel.Date,
) error {
	ledgers := calc.AllDayLedgers(payments, today)

	arrears := kernel.ZeroMoney()
	for _, ledger := range ledgers {
		for _, row := range payments {
			if !row.PaidOn().IsEqual(ledger.Date) {
				continue
			}

			if err := row.StampDayAudit(ledger.AmountDue, ledger.Remaining, arrears, ledger.Settlement); err != nil {
				return err
			}

			if err := repo.Update(ctx, row); err != nil {
				return err
			}
		}

		if ledger.Settlement == payment.SettlementLate {
			arrears = arrears.Add(ledger.Remaining)
		}
	}

	return nil
}
