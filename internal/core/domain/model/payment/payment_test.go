package payment_test

import (
	"testing"
	"time"

	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/kernel"
	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/payment"
	"github.com/Salamjean/kksExpress-backend/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var paymentTime = time.Date(2026, time.August, 30, 14, 30, 0, 0, time.UTC)

func cashPayment(t *testing.T) *payment.Payment {
	t.Helper()
	p, err := payment.NewCashPayment(
		kernel.NewUUID(), "ES0042345678904821", kernel.NewUUID(),
		"Issa Traore", "+2250709080706",
		kernel.MustMoneyFromInt(3000), "", paymentTime,
	)
	require.NoError(t, err)
	return p
}

func mobilePayment(t *testing.T) *payment.Payment {
	t.Helper()
	p, err := payment.NewMobilePayment(
		kernel.NewUUID(), "CP0042345678904821", kernel.NewUUID(),
		"Issa Traore", "+2250709080706",
		kernel.MustMoneyFromInt(4000), payment.MethodWave, "+2250701020304", "", paymentTime,
	)
	require.NoError(t, err)
	return p
}

func TestNewCashPayment(t *testing.T) {
	t.Run("should create complete payment immediately", func(t *testing.T) {
		p := cashPayment(t)

		require.NoError(t, p.Validate())
		assert.Equal(t, payment.StatusComplete, p.Status())
		assert.Equal(t, payment.MethodCash, p.Method())
		assert.Empty(t, p.PhoneUsed())
		assert.Equal(t, "2026-08-30", p.PaidOn().String())
		assert.Equal(t, paymentTime, p.PaidAt())
		assert.Equal(t, payment.SettlementPartial, p.DaySettlement())
	})

	t.Run("should fail with zero amount", func(t *testing.T) {
		p, err := payment.NewCashPayment(
			kernel.NewUUID(), "ES0042345678904821", kernel.NewUUID(),
			"Issa Traore", "", kernel.ZeroMoney(), "", paymentTime,
		)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, p)
	})

	t.Run("should fail with empty reference", func(t *testing.T) {
		p, err := payment.NewCashPayment(
			kernel.NewUUID(), "", kernel.NewUUID(),
			"Issa Traore", "", kernel.MustMoneyFromInt(3000), "", paymentTime,
		)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, p)
	})

	t.Run("should fail with zero payment time", func(t *testing.T) {
		p, err := payment.NewCashPayment(
			kernel.NewUUID(), "ES0042345678904821", kernel.NewUUID(),
			"Issa Traore", "", kernel.MustMoneyFromInt(3000), "", time.Time{},
		)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, p)
	})
}

func TestNewMobilePayment(t *testing.T) {
	t.Run("should create pending payment", func(t *testing.T) {
		p := mobilePayment(t)

		require.NoError(t, p.Validate())
		assert.Equal(t, payment.StatusPending, p.Status())
		assert.Equal(t, payment.MethodWave, p.Method())
		assert.Equal(t, "+2250701020304", p.PhoneUsed())
	})

	t.Run("should reject cash as mobile method", func(t *testing.T) {
		p, err := payment.NewMobilePayment(
			kernel.NewUUID(), "CP0042345678904821", kernel.NewUUID(),
			"Issa Traore", "", kernel.MustMoneyFromInt(4000),
			payment.MethodCash, "+2250701020304", "", paymentTime,
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Nil(t, p)
	})

	t.Run("should require a phone number", func(t *testing.T) {
		p, err := payment.NewMobilePayment(
			kernel.NewUUID(), "CP0042345678904821", kernel.NewUUID(),
			"Issa Traore", "", kernel.MustMoneyFromInt(4000),
			payment.MethodOrangeMoney, "", "", paymentTime,
		)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, p)
	})
}

func TestPaymentTransitions(t *testing.T) {
	t.Run("should complete pending payment", func(t *testing.T) {
		p := mobilePayment(t)

		require.NoError(t, p.Complete())

		assert.Equal(t, payment.StatusComplete, p.Status())
	})

	t.Run("should treat repeated complete as a no-op", func(t *testing.T) {
		p := mobilePayment(t)
		require.NoError(t, p.Complete())

		require.NoError(t, p.Complete())

		assert.Equal(t, payment.StatusComplete, p.Status())
	})

	t.Run("should fail pending payment and keep the gateway message", func(t *testing.T) {
		p := mobilePayment(t)

		require.NoError(t, p.Fail("INSUFFICIENT_FUNDS"))

		assert.Equal(t, payment.StatusFailed, p.Status())
		assert.Equal(t, "INSUFFICIENT_FUNDS", p.GatewayMessage())
	})

	t.Run("should cancel pending payment", func(t *testing.T) {
		p := mobilePayment(t)

		require.NoError(t, p.Cancel())

		assert.Equal(t, payment.StatusCancelled, p.Status())
	})

	t.Run("should reject crossing terminal statuses", func(t *testing.T) {
		p := mobilePayment(t)
		require.NoError(t, p.Fail("REFUSED"))

		require.ErrorIs(t, p.Complete(), errs.ErrConflict)
		require.ErrorIs(t, p.Cancel(), errs.ErrConflict)
		assert.Equal(t, payment.StatusFailed, p.Status())
	})

	t.Run("should reject failing a complete payment", func(t *testing.T) {
		p := cashPayment(t)

		require.ErrorIs(t, p.Fail("REFUSED"), errs.ErrConflict)
		assert.Equal(t, payment.StatusComplete, p.Status())
	})
}

func TestPaymentStampDayAudit(t *testing.T) {
	t.Run("should rewrite the audit stamps", func(t *testing.T) {
		p := cashPayment(t)

		err := p.StampDayAudit(
			kernel.MustMoneyFromInt(7000),
			kernel.MustMoneyFromInt(4000),
			kernel.MustMoneyFromInt(2500),
			payment.SettlementLate,
		)

		require.NoError(t, err)
		assert.Equal(t, "7000", p.AmountDueForDay().String())
		assert.Equal(t, "4000", p.RemainingForDay().String())
		assert.Equal(t, "2500", p.Arrears().String())
		assert.Equal(t, payment.SettlementLate, p.DaySettlement())
	})

	t.Run("should reject invalid settlement", func(t *testing.T) {
		p := cashPayment(t)

		err := p.StampDayAudit(kernel.MustMoneyFromInt(7000), kernel.ZeroMoney(), kernel.ZeroMoney(), payment.SettlementUnknown)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRestorePayment(t *testing.T) {
	t.Run("should restore a stamped row", func(t *testing.T) {
		id := kernel.NewUUID()
		courierID := kernel.NewUUID()
		paidOn, _ := kernel.ParseDate("2026-08-28")

		p, err := payment.RestorePayment(
			id, "CP0042345678904821", courierID,
			"Issa Traore", "+2250709080706",
			kernel.MustMoneyFromInt(4000), payment.MethodMTNMoney, "+2250701020304",
			payment.StatusComplete, paidOn, paymentTime, "solde du jour", "",
			kernel.MustMoneyFromInt(7000), kernel.MustMoneyFromInt(3000), kernel.ZeroMoney(),
			payment.SettlementLate,
		)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsEqual(id))
		assert.Equal(t, "2026-08-28", p.PaidOn().String())
		assert.Equal(t, payment.SettlementLate, p.DaySettlement())
		assert.Equal(t, "3000", p.RemainingForDay().String())
	})

	t.Run("should accept legacy partial status", func(t *testing.T) {
		p, err := payment.RestorePayment(
			kernel.NewUUID(), "ES0042345678904821", kernel.NewUUID(),
			"Issa Traore", "", kernel.MustMoneyFromInt(2000),
			payment.MethodCash, "",
			payment.StatusPartial, kernel.Date{}, paymentTime, "", "",
			kernel.ZeroMoney(), kernel.ZeroMoney(), kernel.ZeroMoney(),
			payment.SettlementPartial,
		)

		require.NoError(t, err)
		assert.Equal(t, payment.StatusPartial, p.Status())
	})

	t.Run("should fail with invalid status", func(t *testing.T) {
		p, err := payment.RestorePayment(
			kernel.NewUUID(), "ES0042345678904821", kernel.NewUUID(),
			"Issa Traore", "", kernel.MustMoneyFromInt(2000),
			payment.MethodCash, "",
			payment.StatusUnknown, kernel.Date{}, paymentTime, "", "",
			kernel.ZeroMoney(), kernel.ZeroMoney(), kernel.ZeroMoney(),
			payment.SettlementPartial,
		)

		require.Error(t, err)
		assert.Nil(t, p)
	})
}

func TestPaymentValidate(t *testing.T) {
	t.Run("should fail for payment not created via constructor", func(t *testing.T) {
		var p payment.Payment
		require.ErrorIs(t, p.Validate(), payment.ErrPaymentIsNotConstructed)
	})

	t.Run("should fail for nil payment", func(t *testing.T) {
		var p *payment.Payment
		require.ErrorIs(t, p.Validate(), payment.ErrPaymentIsNotConstructed)
	})
}

func TestMethodFromString(t *testing.T) {
	t.Run("should round trip every method", func(t *testing.T) {
		for _, m := range []payment.Method{
			payment.MethodCash, payment.MethodWave,
			payment.MethodOrangeMoney, payment.MethodMTNMoney,
		} {
			parsed, err := payment.MethodFromString(m.String())
			require.NoError(t, err)
			assert.Equal(t, m, parsed)
		}
	})

	t.Run("should flag mobile methods", func(t *testing.T) {
		assert.False(t, payment.MethodCash.IsMobile())
		assert.True(t, payment.MethodWave.IsMobile())
		assert.True(t, payment.MethodOrangeMoney.IsMobile())
		assert.True(t, payment.MethodMTNMoney.IsMobile())
	})

	t.Run("should return error for unknown name", func(t *testing.T) {
		_, err := payment.MethodFromString("especes")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatusCountsAsPaid(t *testing.T) {
	t.Run("should count only complete rows", func(t *testing.T) {
		assert.True(t, payment.StatusComplete.CountsAsPaid())
		assert.False(t, payment.StatusPending.CountsAsPaid())
		assert.False(t, payment.StatusFailed.CountsAsPaid())
		assert.False(t, payment.StatusCancelled.CountsAsPaid())
		assert.False(t, payment.StatusPartial.CountsAsPaid())
	})
}
