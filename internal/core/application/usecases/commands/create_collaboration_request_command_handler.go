package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"catering/internal/core/domain/model/bulkorder"
	"catering/internal/core/domain/model/collab"
	"catering/internal/core/ports"
	"catering/internal/pkg/errs"
)

// CreateCollaborationRequestCommandHandler creates a pending collaboration
// request after checking the cross-aggregate rules:
//   - the inviting chef is the order's primary chef
//   - the order is still pending or accepted
//   - no other pending request targets the same chef for the same order
//
// The pending-pair lookup gives a friendly error for the common sequential
// case; under concurrent inserts the partial unique index on
// (bulk_order_id, to_chef_id) WHERE status = 'pending' decides the race and
// the losing insert surfaces the same state conflict from the repository.
type CreateCollaborationRequestCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
	now        func() time.Time
}

// NewCreateCollaborationRequestCommandHandler creates a handler for
// collaboration invitations. A nil now falls back to time.Now.
func NewCreateCollaborationRequestCommandHandler(
	uowFactory UoWFactory,
	notifier ports.Notifier,
	now func() time.Time,
) CreateCollaborationRequestCommandHandler {
	if now == nil {
		now = time.Now
	}
	return CreateCollaborationRequestCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		now:        now,
	}
}

// Handle validates the invitation against the order and persists it.
// Returns the created request; the invited chef is notified after commit.
func (h CreateCollaborationRequestCommandHandler) Handle(
	ctx context.Context,
	command CreateCollaborationRequestCommand,
) (*collab.Request, error) {
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

	if !command.FromChefID().IsEqual(order.PrimaryChefID()) {
		return nil, errs.NewNotAuthorizedError(
			"chef "+command.FromChefID().String(), "invite collaborators to the bulk order")
	}

	if order.Status() != bulkorder.Pending && order.Status() != bulkorder.Accepted {
		return nil, errs.NewStateConflictError("create collaboration request", order.Status().String())
	}

	requestRepo := uow.CollaborationRequestRepository()

	existing, err := requestRepo.GetPendingByOrderAndChef(ctx, command.OrderID(), command.ToChefID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, errs.NewStateConflictErrorWithCause(
			"create collaboration request", collab.Pending.String(),
			fmt.Errorf("chef %s already has a pending request for this order", command.ToChefID()))
	}

	request, err := collab.NewRequest(
		command.RequestID(),
		command.OrderID(),
		command.FromChefID(),
		command.ToChefID(),
		command.Message(),
		command.WorkDistribution(),
		h.now(),
	)
	if err != nil {
		return nil, err
	}

	if err = requestRepo.Add(ctx, request); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.NotifyCollaborationRequested(ctx, request)
	return request, nil
}
