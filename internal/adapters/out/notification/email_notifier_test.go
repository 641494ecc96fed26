package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/kernel"
	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedEmail struct {
	to      string
	subject string
	body    string
}

type fakeSender struct {
	sent []capturedEmail
	err  error
}

func (f *fakeSender) SendEmail(_ context.Context, to, subject, body string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, capturedEmail{to: to, subject: subject, body: body})
	return nil
}

func pickedUpOrder(t *testing.T, senderEmail string) *order.Order {
	t.Helper()

	sender, err := order.NewSender("Awa Diabate", "+2250701020304", senderEmail, "", "Cocody Riviera 3", nil)
	require.NoError(t, err)

	geo, err := kernel.NewGeoPoint(5.3599, -4.0083)
	require.NoError(t, err)
	recipient, err := order.NewRecipient("Mamadou Kone", "+2250504030201", "", "Treichville Avenue 16", geo)
	require.NoError(t, err)

	pkg, err := order.NewPackage(order.CategoryDocuments, order.NatureStandard, "Contract", "")
	require.NoError(t, err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewOrderReference(time.Now()),
		sender,
		recipient,
		pkg,
		kernel.MustMoneyFromInt(1500),
		time.Now(),
	)
	require.NoError(t, err)

	info, err := order.NewCourierInfo(kernel.NewUUID(), "Issa Traore", "+2250102030405", "issa@example.com", nil)
	require.NoError(t, err)
	require.NoError(t, aggregate.Accept(info, time.Now()))
	require.NoError(t, aggregate.PickUp(time.Now()))

	return aggregate
}

func TestEmailNotifier_SendDeliveryCode(t *testing.T) {
	sender := &fakeSender{}
	notifier, err := NewEmailNotifier(sender)
	require.NoError(t, err)

	aggregate := pickedUpOrder(t, "awa@example.com")

	err = notifier.SendDeliveryCode(t.Context(), aggregate)
	require.NoError(t, err)

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "awa@example.com", sender.sent[0].to)
	assert.Contains(t, sender.sent[0].subject, aggregate.Reference())
	assert.Contains(t, sender.sent[0].body, aggregate.ConfirmationCode())
}

func TestEmailNotifier_SendDeliveryCode_NoEmailSkips(t *testing.T) {
	sender := &fakeSender{}
	notifier, err := NewEmailNotifier(sender)
	require.NoError(t, err)

	err = notifier.SendDeliveryCode(t.Context(), pickedUpOrder(t, ""))
	require.NoError(t, err)
	assert.Empty(t, sender.sent)
}

func TestEmailNotifier_SendStatusChanged(t *testing.T) {
	sender := &fakeSender{}
	notifier, err := NewEmailNotifier(sender)
	require.NoError(t, err)

	aggregate := pickedUpOrder(t, "awa@example.com")
	require.NoError(t, aggregate.StartTransit(time.Now()))
	require.NoError(t, aggregate.Deliver(aggregate.ConfirmationCode(), time.Now()))

	err = notifier.SendStatusChanged(t.Context(), aggregate)
	require.NoError(t, err)

	require.Len(t, sender.sent, 1)
	assert.Contains(t, sender.sent[0].subject, "livree")
}

func TestEmailNotifier_SenderFailurePropagates(t *testing.T) {
	sender := &fakeSender{err: errors.New("ses throttled")}
	notifier, err := NewEmailNotifier(sender)
	require.NoError(t, err)

	err = notifier.SendDeliveryCode(t.Context(), pickedUpOrder(t, "awa@example.com"))
	require.Error(t, err)
}

func TestNewEmailNotifier_NilSender(t *testing.T) {
	_, err := NewEmailNotifier(nil)
	require.Error(t, err)
}
