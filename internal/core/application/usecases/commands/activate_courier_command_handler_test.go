package commands_test

import (
	"testing"

	"github.com/Salamjean/kksExpress-backend/internal/core/application/usecases/commands"
	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/courier"
	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/kernel"
	"github.com/Salamjean/kksExpress-backend/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestActivateCourierCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	cmd, err := commands.NewActivateCourierCommand(courierID)
	require.NoError(t, err)

	registered, err := courier.NewCourier(courierID, "Issa Traore", "+2250102030405", "issa@example.com", courier.VehicleMoto)
	require.NoError(t, err)
	require.Equal(t, courier.StatusInactive, registered.Status())

	repo := new(MockCourierRepository)
	uow := new(MockCourierUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CourierRepository").Return(repo).Once(),
		repo.On("Get", ctx, courierID).Return(registered, nil).Once(),
		repo.On("Update", ctx, registered).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCourierUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewActivateCourierCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, courier.StatusActive, registered.Status())
	require.True(t, registered.CanAcceptOrders())
}

func TestActivateCourierCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	cmd, err := commands.NewActivateCourierCommand(courierID)
	require.NoError(t, err)

	repo := new(MockCourierRepository)
	uow := new(MockCourierUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CourierRepository").Return(repo).Once(),
		repo.On("Get", ctx, courierID).Return(nil, errs.NewObjectNotFoundError("courier", courierID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCourierUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewActivateCourierCommandHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrObjectNotFound)
}

func TestActivateCourierCommandHandler_Handle_NotConstructed(t *testing.T) {
	h := commands.NewActivateCourierCommandHandler(new(MockCourierUoWFactory))
	err := h.Handle(t.Context(), commands.ActivateCourierCommand{})
	require.ErrorIs(t, err, commands.ErrActivateCourierCommandIsNotConstructed)
}
