package commands

import (
	"context"

	"catering/internal/core/domain/model/collab"
	"catering/internal/core/ports"
)

// RejectCollaborationRequestCommandHandler declines a pending request.
// Only the request aggregate changes; the order keeps its status.
type RejectCollaborationRequestCommandHandler struct {
	uowFactory CollaborationRequestUoWFactory
	notifier   ports.Notifier
}

// NewRejectCollaborationRequestCommandHandler creates a handler for request rejection.
func NewRejectCollaborationRequestCommandHandler(
	uowFactory CollaborationRequestUoWFactory,
	notifier ports.Notifier,
) RejectCollaborationRequestCommandHandler {
	return RejectCollaborationRequestCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the rejection. Returns the rejected request; the
// inviting chef is notified after commit.
func (h RejectCollaborationRequestCommandHandler) Handle(
	ctx context.Context,
	command RejectCollaborationRequestCommand,
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

	repo := uow.CollaborationRequestRepository()

	request, err := repo.Get(ctx, command.RequestID())
	if err != nil {
		return nil, err
	}

	if err = request.Reject(command.Reason()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, request); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.NotifyCollaborationAnswered(ctx, request)
	return request, nil
}
