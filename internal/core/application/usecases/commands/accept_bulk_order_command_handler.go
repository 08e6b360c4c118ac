package commands

import (
	"context"

	"catering/internal/core/domain/model/bulkorder"
	"catering/internal/core/ports"
)

// AcceptBulkOrderCommandHandler processes order acceptance by the primary chef.
// The status change is persisted with a versioned conditional update, so a
// racing decline loses with a state conflict instead of silently overwriting.
type AcceptBulkOrderCommandHandler struct {
	uowFactory BulkOrderUoWFactory
	notifier   ports.Notifier
}

// NewAcceptBulkOrderCommandHandler creates a handler for order acceptance.
func NewAcceptBulkOrderCommandHandler(uowFactory BulkOrderUoWFactory, notifier ports.Notifier) AcceptBulkOrderCommandHandler {
	return AcceptBulkOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle loads the order, applies the accept transition, and persists it.
// Returns the updated aggregate so callers can respond without re-fetching.
// The customer notification is published only after a successful commit.
func (h AcceptBulkOrderCommandHandler) Handle(ctx context.Context, command AcceptBulkOrderCommand) (*bulkorder.BulkOrder, error) {
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

	if err = order.Accept(command.ChefID(), command.Note()); err != nil {
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
