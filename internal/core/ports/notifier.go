package ports

import (
	"context"

	"catering/internal/core/domain/model/bulkorder"
	"catering/internal/core/domain/model/collab"
)

// Notifier publishes user-facing notifications about order and collaboration
// events. Notifications are best-effort: implementations log failures and
// never propagate them, so a broker outage cannot fail a committed command.
type Notifier interface {
	// NotifyOrderStatusChanged tells the order's customer that the order
	// moved to a new status.
	NotifyOrderStatusChanged(ctx context.Context, order *bulkorder.BulkOrder)

	// NotifyCollaborationRequested tells the invited chef that a
	// collaboration request awaits their answer.
	NotifyCollaborationRequested(ctx context.Context, request *collab.Request)

	// NotifyCollaborationAnswered tells the inviting chef that the invited
	// chef accepted or rejected the request.
	NotifyCollaborationAnswered(ctx context.Context, request *collab.Request)
}

// DeliveryDispatch hands a ready order over to the delivery subsystem.
// Unlike notifications, dispatch failures propagate: the caller must not
// report an order as dispatched when the hand-off did not happen.
type DeliveryDispatch interface {
	// Dispatch requests a courier assignment for the order.
	Dispatch(ctx context.Context, order *bulkorder.BulkOrder) error
}
