package commands

import (
	"context"

	"catering/internal/core/domain/model/bulkorder"
	"catering/internal/core/ports"
)

// CancelBulkOrderCommandHandler processes order cancellations.
type CancelBulkOrderCommandHandler struct {
	uowFactory BulkOrderUoWFactory
	notifier   ports.Notifier
}

// NewCancelBulkOrderCommandHandler creates a handler for order cancellations.
func NewCancelBulkOrderCommandHandler(uowFactory BulkOrderUoWFactory, notifier ports.Notifier) CancelBulkOrderCommandHandler {
	return CancelBulkOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle loads the order, applies the cancel transition, and persists it.
// Returns the updated aggregate.
func (h CancelBulkOrderCommandHandler) Handle(ctx context.Context, command CancelBulkOrderCommand) (*bulkorder.BulkOrder, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.BulkOrderRepository()

	order, err := repo.Get(ctx, command.OrderID())
	if err != nil {
		return nil, err
	}

	if err = order.Cancel(command.ActorID(), command.Reason()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, order); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.NotifyOrderStatusChanged(ctx, order)
	return order, nil
}
