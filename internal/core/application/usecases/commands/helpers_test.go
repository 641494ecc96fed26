package commands_test

import (
	"testing"
	"time"

	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/courier"
	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/kernel"
	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/order"
	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/payment"

	"github.com/stretchr/testify/require"
)

func testSender(t *testing.T) order.Sender {
	t.Helper()
	sender, err := order.NewSender("Awa Diabate", "+2250701020304", "awa@example.com", "", "Cocody Riviera 3", nil)
	require.NoError(t, err)
	return sender
}

func testRecipient(t *testing.T) order.Recipient {
	t.Helper()
	geo, err := kernel.NewGeoPoint(5.3599, -4.0083)
	require.NoError(t, err)
	recipient, err := order.NewRecipient("Mamadou Kone", "+2250504030201", "", "Treichville Avenue 16", geo)
	require.NoError(t, err)
	return recipient
}

func testPackage(t *testing.T) order.Package {
	t.Helper()
	pkg, err := order.NewPackage(order.CategoryDevices, order.NatureStandard, "Phone", "Samsung A14 in box")
	require.NoError(t, err)
	return pkg
}

func testPendingOrder(t *testing.T, id kernel.UUID) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		id,
		kernel.NewOrderReference(time.Now()),
		testSender(t),
		testRecipient(t),
		testPackage(t),
		kernel.MustMoneyFromInt(1500),
		time.Now(),
	)
	require.NoError(t, err)
	return o
}

func testActiveCourier(t *testing.T, id kernel.UUID) *courier.Courier {
	t.Helper()
	c, err := courier.NewCourier(id, "Issa Traore", "+2250102030405", "issa@example.com", courier.VehicleMoto)
	require.NoError(t, err)
	c.Activate()
	return c
}

func testMobilePayment(t *testing.T, courierID kernel.UUID, amount int64, at time.Time) *payment.Payment {
	t.Helper()
	p, err := payment.NewMobilePayment(
		kernel.NewUUID(),
		kernel.NewPaymentReference(kernel.PaymentReferencePrefixMobile, courierID, at),
		courierID,
		"Issa Traore",
		"+2250102030405",
		kernel.MustMoneyFromInt(amount),
		payment.MethodWave,
		"+2250102030405",
		"wave quota payment",
		at,
	)
	require.NoError(t, err)
	return p
}

func testCashPayment(t *testing.T, courierID kernel.UUID, amount int64, at time.Time) *payment.Payment {
	t.Helper()
	p, err := payment.NewCashPayment(
		kernel.NewUUID(),
		kernel.NewPaymentReference(kernel.PaymentReferencePrefixCash, courierID, at),
		courierID,
		"Issa Traore",
		"+2250102030405",
		kernel.MustMoneyFromInt(amount),
		"cash at office",
		at,
	)
	require.NoError(t, err)
	return p
}
