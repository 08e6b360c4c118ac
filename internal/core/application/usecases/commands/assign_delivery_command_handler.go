package commands

import (
	"context"

	"catering/internal/core/domain/model/bulkorder"
	"catering/internal/core/ports"
)

// AssignDeliveryCommandHandler publishes a dispatch request for a ready order.
// No aggregate state changes: the order stays ready_for_delivery until the
// delivery subsystem reports back, so nothing is written and the dispatch
// failure mode is simply a propagated error.
type AssignDeliveryCommandHandler struct {
	uowFactory BulkOrderUoWFactory
	dispatch   ports.DeliveryDispatch
}

// NewAssignDeliveryCommandHandler creates a handler for delivery dispatch.
func NewAssignDeliveryCommandHandler(uowFactory BulkOrderUoWFactory, dispatch ports.DeliveryDispatch) AssignDeliveryCommandHandler {
	return AssignDeliveryCommandHandler{
		uowFactory: uowFactory,
		dispatch:   dispatch,
	}
}

// Handle loads the order, checks it is dispatchable (ready_for_delivery and
// of the delivery type), and publishes the dispatch request.
func (h AssignDeliveryCommandHandler) Handle(ctx context.Context, command AssignDeliveryCommand) (*bulkorder.BulkOrder, error) {
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

	order, err := uow.BulkOrderRepository().Get(ctx, command.OrderID())
	if err != nil {
		return nil, err
	}

	if err = order.ValidateAssignDelivery(); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if err = h.dispatch.Dispatch(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}
