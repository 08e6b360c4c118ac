package commands

import (
	"context"
	"time"

	"catering/internal/core/domain/model/bulkorder"
	"catering/internal/core/ports"
)

// UpdateBulkOrderStatusCommandHandler dispatches a kitchen status update to
// the matching aggregate operation. The clock is injected so the event-date
// lock can be tested without waiting for the calendar.
type UpdateBulkOrderStatusCommandHandler struct {
	uowFactory BulkOrderUoWFactory
	notifier   ports.Notifier
	now        func() time.Time
}

// NewUpdateBulkOrderStatusCommandHandler creates a handler for kitchen status
// updates. A nil now falls back to time.Now.
func NewUpdateBulkOrderStatusCommandHandler(
	uowFactory BulkOrderUoWFactory,
	notifier ports.Notifier,
	now func() time.Time,
) UpdateBulkOrderStatusCommandHandler {
	if now == nil {
		now = time.Now
	}
	return UpdateBulkOrderStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		now:        now,
	}
}

// Handle loads the order and applies the transition matching the requested
// target. Each transition consults the event-date lock; a locked order is
// left untouched and the lock error propagates to the caller.
func (h UpdateBulkOrderStatusCommandHandler) Handle(ctx context.Context, command UpdateBulkOrderStatusCommand) (*bulkorder.BulkOrder, error) {
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

	today := h.now()
	switch command.Target() {
	case bulkorder.Preparing:
		err = order.StartPreparing(today)
	case bulkorder.ReadyForDelivery:
		err = order.MarkReadyForDelivery(today)
	case bulkorder.Completed:
		err = order.Complete(today)
	}
	if err != nil {
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
