package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"catering/internal/core/domain/model/bulkorder"
	"catering/internal/core/ports"
	"catering/internal/pkg/errs"
)

// CancelStalePendingOrdersCommandHandler cancels pending orders whose chef
// never answered within the response window. The cancellation goes through
// the ordinary cancel transition, attributed to the customer since the
// system acts on the customer's behalf when the chef stays silent.
type CancelStalePendingOrdersCommandHandler struct {
	uowFactory BulkOrderUoWFactory
	notifier   ports.Notifier
	now        func() time.Time
}

// NewCancelStalePendingOrdersCommandHandler creates a handler for the stale
// order sweep. A nil now falls back to time.Now.
func NewCancelStalePendingOrdersCommandHandler(
	uowFactory BulkOrderUoWFactory,
	notifier ports.Notifier,
	now func() time.Time,
) CancelStalePendingOrdersCommandHandler {
	if now == nil {
		now = time.Now
	}
	return CancelStalePendingOrdersCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		now:        now,
	}
}

// Handle cancels every pending order created before now minus the window.
// An order a chef answers mid-sweep loses its conditional write and is
// skipped; the rest still cancel. Everything commits in one transaction
// (a skipped order is a CAS miss, not a statement failure, so the
// transaction stays healthy). Customers are notified after commit.
// Returns the cancelled orders.
func (h CancelStalePendingOrdersCommandHandler) Handle(
	ctx context.Context,
	command CancelStalePendingOrdersCommand,
) ([]*bulkorder.BulkOrder, error) {
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

	cutoff := h.now().Add(-command.Window())
	stale, err := repo.GetAllPendingCreatedBefore(ctx, cutoff)
	if err != nil {
		return nil, err
	}
	if len(stale) == 0 {
		return nil, uow.Commit(ctx)
	}

	reason := fmt.Sprintf("Automatically cancelled: no chef response within %s", command.Window())
	cancelled := make([]*bulkorder.BulkOrder, 0, len(stale))
	for _, order := range stale {
		if err = order.Cancel(order.CustomerID(), reason); err != nil {
			if errors.Is(err, errs.ErrStateConflict) {
				continue
			}
			return nil, err
		}
		if err = repo.Update(ctx, order); err != nil {
			if errors.Is(err, errs.ErrStateConflict) {
				continue
			}
			return nil, err
		}
		cancelled = append(cancelled, order)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	for _, order := range cancelled {
		h.notifier.NotifyOrderStatusChanged(ctx, order)
	}
	return cancelled, nil
}
