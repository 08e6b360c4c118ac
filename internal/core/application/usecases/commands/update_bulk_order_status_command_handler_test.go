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

func acceptedOrder(t *testing.T, eventDate time.Time) *bulkorder.BulkOrder {
	t.Helper()
	chefID := kernel.NewUUID()
	item, err := bulkorder.NewItem("Canapé selection", 10, 900)
	require.NoError(t, err)
	order, err := bulkorder.NewBulkOrder(
		kernel.NewUUID(), kernel.NewUUID(), chefID,
		bulkorder.Delivery, eventDate, []bulkorder.Item{item},
		time.Date(2025, time.March, 1, 10, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	require.NoError(t, order.Accept(chefID, ""))
	return order
}

func newOrderUoW(ctx any, repo *MockBulkOrderRepository) (*MockUoW, *MockBulkOrderUoWFactory) {
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("BulkOrderRepository").Return(repo).Once()
	uow.On("Commit", ctx).Return(nil).Maybe()
	uow.On("Rollback", ctx).Return(nil)

	factory := new(MockBulkOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	return uow, factory
}

func TestUpdateBulkOrderStatusCommandHandler_Handle_StartsPreparing(t *testing.T) {
	ctx := context.Background()
	order := acceptedOrder(t, time.Time{})

	cmd, err := commands.NewUpdateBulkOrderStatusCommand(order.ID(), bulkorder.Preparing)
	require.NoError(t, err)

	repo := new(MockBulkOrderRepository)
	repo.On("Get", ctx, order.ID()).Return(order, nil).Once()
	repo.On("Update", ctx, order).Return(nil).Once()
	_, factory := newOrderUoW(ctx, repo)

	notifier := &FakeNotifier{}
	handler := commands.NewUpdateBulkOrderStatusCommandHandler(factory, notifier, nil)

	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, bulkorder.Preparing, updated.Status())
	assert.Len(t, notifier.StatusChanged, 1)
	repo.AssertExpectations(t)
}

func TestUpdateBulkOrderStatusCommandHandler_Handle_EventDateLocked(t *testing.T) {
	ctx := context.Background()
	today := time.Date(2025, time.June, 10, 15, 30, 0, 0, time.UTC)
	eventDate := time.Date(2025, time.June, 13, 0, 0, 0, 0, time.UTC)
	order := acceptedOrder(t, eventDate)

	cmd, err := commands.NewUpdateBulkOrderStatusCommand(order.ID(), bulkorder.Preparing)
	require.NoError(t, err)

	repo := new(MockBulkOrderRepository)
	repo.On("Get", ctx, order.ID()).Return(order, nil).Once()
	_, factory := newOrderUoW(ctx, repo)

	notifier := &FakeNotifier{}
	handler := commands.NewUpdateBulkOrderStatusCommandHandler(factory, notifier, func() time.Time { return today })

	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrEventDateLocked)

	var lockedErr *errs.EventDateLockedError
	require.ErrorAs(t, err, &lockedErr)
	assert.Equal(t, 3, lockedErr.DaysRemaining)

	assert.Equal(t, bulkorder.Accepted, order.Status())
	assert.Empty(t, notifier.StatusChanged)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateBulkOrderStatusCommandHandler_Handle_WrongSourceStatus(t *testing.T) {
	ctx := context.Background()
	order := acceptedOrder(t, time.Time{})

	// Completed is only reachable from ready_for_delivery.
	cmd, err := commands.NewUpdateBulkOrderStatusCommand(order.ID(), bulkorder.Completed)
	require.NoError(t, err)

	repo := new(MockBulkOrderRepository)
	repo.On("Get", ctx, order.ID()).Return(order, nil).Once()
	_, factory := newOrderUoW(ctx, repo)

	handler := commands.NewUpdateBulkOrderStatusCommandHandler(factory, &FakeNotifier{}, nil)

	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrStateConflict)
	assert.Equal(t, bulkorder.Accepted, order.Status())
}

func TestUpdateBulkOrderStatusCommandHandler_Handle_FullKitchenPipeline(t *testing.T) {
	ctx := context.Background()
	order := acceptedOrder(t, time.Time{})

	targets := []bulkorder.Status{
		bulkorder.Preparing, bulkorder.ReadyForDelivery, bulkorder.Completed,
	}
	for _, target := range targets {
		cmd, err := commands.NewUpdateBulkOrderStatusCommand(order.ID(), target)
		require.NoError(t, err)

		repo := new(MockBulkOrderRepository)
		repo.On("Get", ctx, order.ID()).Return(order, nil).Once()
		repo.On("Update", ctx, order).Return(nil).Once()
		_, factory := newOrderUoW(ctx, repo)

		handler := commands.NewUpdateBulkOrderStatusCommandHandler(factory, &FakeNotifier{}, nil)

		updated, err := handler.Handle(ctx, cmd)
		require.NoError(t, err, target.String())
		assert.Equal(t, target, updated.Status())
	}
}
