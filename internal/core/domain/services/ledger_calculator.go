package services

import (
	"sort"

	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/kernel"
	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/payment"
)

// DayLedger is the derived balance of one calendar day for one courier.
// It is never persisted as its own row: it is recomputed from payment
// rows on demand, and its values are stamped back onto the rows for audit.
type DayLedger struct {
	Date       kernel.Date
	AmountDue  kernel.Money
	TotalPaid  kernel.Money
	Remaining  kernel.Money
	Settlement payment.Settlement

	// PaymentCount is the number of rows on the day, whatever their status.
	PaymentCount int
	// CompleteCount is the number of rows that counted toward TotalPaid.
	CompleteCount int
}

// AmountDue is what a courier owes right now: today's quota plus the
// arrears accumulated over underpaid past days.
type AmountDue struct {
	Quota        kernel.Money
	Arrears      kernel.Money
	TotalDue     kernel.Money
	PaidToday    kernel.Money
	RemainingDue kernel.Money
	Today        DayLedger
}

// LedgerCalculator is the daily-quota reconciliation engine. It is a pure
// domain service: the reference day is always a parameter, so handlers,
// jobs and tests decide what "today" means.
type LedgerCalculator struct {
	policy kernel.Policy
}

// NewLedgerCalculator creates a calculator bound to the given policy.
func NewLedgerCalculator(policy kernel.Policy) (LedgerCalculator, error) {
	if err := policy.Validate(); err != nil {
		return LedgerCalculator{}, err
	}
	return LedgerCalculator{policy: policy}, nil
}

// LedgerForDay derives the balance of one calendar day from the courier's
// payment rows. Rows posted to other days are ignored, so callers may
// pass the courier's full history unfiltered.
//
// Only Complete rows count toward TotalPaid. The settlement is complete
// when nothing remains, late when the day is strictly in the past and
// underpaid, partial otherwise.
func (c LedgerCalculator) LedgerForDay(payments []*payment.Payment, date kernel.Date, today kernel.Date) DayLedger {
	quota := c.policy.DailyQuota()

	totalPaid := kernel.ZeroMoney()
	paymentCount := 0
	completeCount := 0
	for _, p := range payments {
		if !p.PaidOn().IsEqual(date) {
			continue
		}
		paymentCount++
		if p.Status().CountsAsPaid() {
			totalPaid = totalPaid.Add(p.Amount())
			completeCount++
		}
	}

	remaining := quota.SubFloorZero(totalPaid)

	settlement := payment.SettlementPartial
	switch {
	case remaining.IsZero():
		settlement = payment.SettlementComplete
	case date.Before(today):
		settlement = payment.SettlementLate
	}

	return DayLedger{
		Date:          date,
		AmountDue:     quota,
		TotalPaid:     totalPaid,
		Remaining:     remaining,
		Settlement:    settlement,
		PaymentCount:  paymentCount,
		CompleteCount: completeCount,
	}
}

// Arrears sums the shortfall of every late day. A day participates only
// when the courier has at least one payment row on it: a silent day with
// no payment attempt at all accrues nothing.
func (c LedgerCalculator) Arrears(payments []*payment.Payment, today kernel.Date) kernel.Money {
	arrears := kernel.ZeroMoney()
	for _, ledger := range c.PastDayLedgers(payments, today) {
		if ledger.Settlement == payment.SettlementLate {
			arrears = arrears.Add(ledger.Remaining)
		}
	}
	return arrears
}

// AmountDueToday derives what the courier owes right now: the daily
// quota, the accumulated arrears, and what of today's total is already
// covered by Complete rows.
func (c LedgerCalculator) AmountDueToday(payments []*payment.Payment, today kernel.Date) AmountDue {
	todayLedger := c.LedgerForDay(payments, today, today)
	arrears := c.Arrears(payments, today)

	totalDue := c.policy.DailyQuota().Add(arrears)
	paidToday := todayLedger.TotalPaid
	remainingDue := totalDue.SubFloorZero(paidToday)

	return AmountDue{
		Quota:        c.policy.DailyQuota(),
		Arrears:      arrears,
		TotalDue:     totalDue,
		PaidToday:    paidToday,
		RemainingDue: remainingDue,
		Today:        todayLedger,
	}
}

// PastDayLedgers derives the ledger of every day strictly before today
// that has at least one payment row, ordered oldest first.
func (c LedgerCalculator) PastDayLedgers(payments []*payment.Payment, today kernel.Date) []DayLedger {
	return c.dayLedgers(payments, today, true)
}

// AllDayLedgers derives the ledger of every day with at least one payment
// row, today included, ordered oldest first. The re-stamp pass walks this
// list to rewrite row audit fields.
func (c LedgerCalculator) AllDayLedgers(payments []*payment.Payment, today kernel.Date) []DayLedger {
	return c.dayLedgers(payments, today, false)
}

func (c LedgerCalculator) dayLedgers(payments []*payment.Payment, today kernel.Date, pastOnly bool) []DayLedger {
	seen := make(map[kernel.Date]struct{})
	dates := make([]kernel.Date, 0, len(payments))
	for _, p := range payments {
		date := p.PaidOn()
		if pastOnly && !date.Before(today) {
			continue
		}
		if _, ok := seen[date]; ok {
			continue
		}
		seen[date] = struct{}{}
		dates = append(dates, date)
	}

	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	ledgers := make([]DayLedger, 0, len(dates))
	for _, date := range dates {
		ledgers = append(ledgers, c.LedgerForDay(payments, date, today))
	}
	return ledgers
}
