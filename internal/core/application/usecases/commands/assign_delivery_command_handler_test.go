package commands_test

import (
	"context"
	"testing"
	"time"

	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/domain/model/bulkorder"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func readyForDeliveryOrder(t *testing.T, orderType bulkorder.OrderType) *bulkorder.BulkOrder {
	t.Helper()
	chefID := kernel.NewUUID()
	item, err := bulkorder.NewItem("Buffet spread", 2, 18000)
	require.NoError(t, err)
	order, err := bulkorder.NewBulkOrder(
		kernel.NewUUID(), kernel.NewUUID(), chefID,
		orderType, time.Time{}, []bulkorder.Item{item},
		time.Date(2025, time.March, 1, 10, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	require.NoError(t, order.Accept(chefID, ""))
	require.NoError(t, order.StartPreparing(time.Now()))
	require.NoError(t, order.MarkReadyForDelivery(time.Now()))
	return order
}

func TestAssignDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	order := readyForDeliveryOrder(t, bulkorder.Delivery)

	cmd, err := commands.NewAssignDeliveryCommand(order.ID())
	require.NoError(t, err)

	repo := new(MockBulkOrderRepository)
	repo.On("Get", ctx, order.ID()).Return(order, nil).Once()
	_, factory := newOrderUoW(ctx, repo)

	dispatch := new(MockDeliveryDispatch)
	dispatch.On("Dispatch", ctx, order).Return(nil).Once()

	handler := commands.NewAssignDeliveryCommandHandler(factory, dispatch)

	dispatched, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, bulkorder.ReadyForDelivery, dispatched.Status())
	dispatch.AssertExpectations(t)
}

func TestAssignDeliveryCommandHandler_Handle_PickupOrder(t *testing.T) {
	ctx := context.Background()
	order := readyForDeliveryOrder(t, bulkorder.Pickup)

	cmd, err := commands.NewAssignDeliveryCommand(order.ID())
	require.NoError(t, err)

	repo := new(MockBulkOrderRepository)
	repo.On("Get", ctx, order.ID()).Return(order, nil).Once()
	_, factory := newOrderUoW(ctx, repo)

	dispatch := new(MockDeliveryDispatch)
	handler := commands.NewAssignDeliveryCommandHandler(factory, dispatch)

	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	dispatch.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
}

func TestAssignDeliveryCommandHandler_Handle_NotReady(t *testing.T) {
	ctx := context.Background()
	order := mustNewOrder(kernel.NewUUID(), kernel.NewUUID())

	cmd, err := commands.NewAssignDeliveryCommand(order.ID())
	require.NoError(t, err)

	repo := new(MockBulkOrderRepository)
	repo.On("Get", ctx, order.ID()).Return(order, nil).Once()
	_, factory := newOrderUoW(ctx, repo)

	dispatch := new(MockDeliveryDispatch)
	handler := commands.NewAssignDeliveryCommandHandler(factory, dispatch)

	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrStateConflict)
	dispatch.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
}
