package commands

import (
	"context"

	"catering/internal/core/domain/model/bulkorder"
	"catering/internal/core/ports"
)

// DeclineBulkOrderCommandHandler processes order declines by the primary chef.
type DeclineBulkOrderCommandHandler struct {
	uowFactory BulkOrderUoWFactory
	notifier   ports.Notifier
}

// NewDeclineBulkOrderCommandHandler creates a handler for order declines.
func NewDeclineBulkOrderCommandHandler(uowFactory BulkOrderUoWFactory, notifier ports.Notifier) DeclineBulkOrderCommandHandler {
	return DeclineBulkOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle loads the order, applies the decline transition, and persists it.
// Returns the updated aggregate. A racing accept that commits first makes
// this decline fail with a state conflict.
func (h DeclineBulkOrderCommandHandler) Handle(ctx context.Context, command DeclineBulkOrderCommand) (*bulkorder.BulkOrder, error) {
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

	if err = order.Decline(command.ChefID(), command.Reason()); err != nil {
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
