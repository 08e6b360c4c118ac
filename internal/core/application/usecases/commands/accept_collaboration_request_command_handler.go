package commands

import (
	"context"

	"catering/internal/core/domain/model/collab"
	"catering/internal/core/ports"
)

// AcceptCollaborationRequestCommandHandler accepts a pending request and
// joins the invited chef to the order in a single transaction: the request
// becomes accepted, the chef enters the order's collaborator set, and the
// order is promoted to collaborating (a no-op promotion when it already is).
// If the order has moved past collaborating, the whole operation aborts and
// neither aggregate changes. Sibling pending requests are untouched.
type AcceptCollaborationRequestCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
}

// NewAcceptCollaborationRequestCommandHandler creates a handler for request acceptance.
func NewAcceptCollaborationRequestCommandHandler(uowFactory UoWFactory, notifier ports.Notifier) AcceptCollaborationRequestCommandHandler {
	return AcceptCollaborationRequestCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the acceptance. Returns the accepted request; the
// inviting chef is notified after commit.
func (h AcceptCollaborationRequestCommandHandler) Handle(
	ctx context.Context,
	command AcceptCollaborationRequestCommand,
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

	requestRepo := uow.CollaborationRequestRepository()
	orderRepo := uow.BulkOrderRepository()

	request, err := requestRepo.Get(ctx, command.RequestID())
	if err != nil {
		return nil, err
	}

	order, err := orderRepo.Get(ctx, request.BulkOrderID())
	if err != nil {
		return nil, err
	}

	if err = request.Accept(); err != nil {
		return nil, err
	}

	if err = order.AcceptCollaboration(request.ToChefID()); err != nil {
		return nil, err
	}

	if err = requestRepo.Update(ctx, request); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.NotifyCollaborationAnswered(ctx, request)
	return request, nil
}
