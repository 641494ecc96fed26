package commands_test

import (
	"testing"

	"github.com/Salamjean/kksExpress-backend/internal/core/application/usecases/commands"
	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/kernel"
	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/payment"
	"github.com/Salamjean/kksExpress-backend/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestConfirmMobilePaymentCommandHandler_Handle_Accepted(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	pending := testMobilePayment(t, courierID, 5000, fixedClock())
	cmd, err := commands.NewConfirmMobilePaymentCommand(pending.Reference())
	require.NoError(t, err)

	paymentRepo := new(MockPaymentRepository)
	uow := new(MockPaymentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PaymentRepository").Return(paymentRepo).Once(),
		paymentRepo.On("GetByReference", ctx, pending.Reference()).Return(pending, nil).Once(),
		paymentRepo.On("Update", ctx, pending).Return(nil).Once(),
		paymentRepo.On("GetAllByCourier", ctx, courierID).Return([]*payment.Payment{pending}, nil).Once(),
		paymentRepo.On("Update", ctx, pending).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	gateway := new(MockPaymentGateway)
	gateway.On("CheckStatus", ctx, pending.Reference()).
		Return(ports.CheckPaymentResult{Status: ports.GatewayStatusAccepted}, nil).Once()

	factory := new(MockPaymentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h, err := commands.NewConfirmMobilePaymentCommandHandler(factory, gateway, kernel.DefaultPolicy(), fixedClock)
	require.NoError(t, err)

	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, payment.StatusComplete, result.Status)
	require.Equal(t, payment.StatusComplete, pending.Status())
	require.True(t, pending.RemainingForDay().IsEqual(kernel.MustMoneyFromInt(2000)))
	gateway.AssertExpectations(t)
}

func TestConfirmMobilePaymentCommandHandler_Handle_Refused(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	pending := testMobilePayment(t, courierID, 5000, fixedClock())
	cmd, err := commands.NewConfirmMobilePaymentCommand(pending.Reference())
	require.NoError(t, err)

	paymentRepo := new(MockPaymentRepository)
	uow := new(MockPaymentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PaymentRepository").Return(paymentRepo).Once(),
		paymentRepo.On("GetByReference", ctx, pending.Reference()).Return(pending, nil).Once(),
		paymentRepo.On("Update", ctx, pending).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	gateway := new(MockPaymentGateway)
	gateway.On("CheckStatus", ctx, pending.Reference()).
		Return(ports.CheckPaymentResult{Status: ports.GatewayStatusRefused, Message: "insufficient funds"}, nil).Once()

	factory := new(MockPaymentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h, err := commands.NewConfirmMobilePaymentCommandHandler(factory, gateway, kernel.DefaultPolicy(), fixedClock)
	require.NoError(t, err)

	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, payment.StatusFailed, result.Status)
	require.Equal(t, "insufficient funds", pending.GatewayMessage())
}

func TestConfirmMobilePaymentCommandHandler_Handle_StillPendingLeavesRowUntouched(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	pending := testMobilePayment(t, courierID, 5000, fixedClock())
	cmd, err := commands.NewConfirmMobilePaymentCommand(pending.Reference())
	require.NoError(t, err)

	paymentRepo := new(MockPaymentRepository)
	uow := new(MockPaymentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PaymentRepository").Return(paymentRepo).Once(),
		paymentRepo.On("GetByReference", ctx, pending.Reference()).Return(pending, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	gateway := new(MockPaymentGateway)
	gateway.On("CheckStatus", ctx, pending.Reference()).
		Return(ports.CheckPaymentResult{Status: ports.GatewayStatusPending}, nil).Once()

	factory := new(MockPaymentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h, err := commands.NewConfirmMobilePaymentCommandHandler(factory, gateway, kernel.DefaultPolicy(), fixedClock)
	require.NoError(t, err)

	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, payment.StatusPending, result.Status)
	paymentRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestConfirmMobilePaymentCommandHandler_Handle_TerminalRowSkipsGateway(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	settled := testMobilePayment(t, courierID, 5000, fixedClock())
	require.NoError(t, settled.Complete())
	cmd, err := commands.NewConfirmMobilePaymentCommand(settled.Reference())
	require.NoError(t, err)

	paymentRepo := new(MockPaymentRepository)
	uow := new(MockPaymentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PaymentRepository").Return(paymentRepo).Once(),
		paymentRepo.On("GetByReference", ctx, settled.Reference()).Return(settled, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	gateway := new(MockPaymentGateway)
	factory := new(MockPaymentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h, err := commands.NewConfirmMobilePaymentCommandHandler(factory, gateway, kernel.DefaultPolicy(), fixedClock)
	require.NoError(t, err)

	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, payment.StatusComplete, result.Status)
	gateway.AssertNotCalled(t, "CheckStatus", mock.Anything, mock.Anything)
}
