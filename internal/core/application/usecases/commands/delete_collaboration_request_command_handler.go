package commands

import (
	"context"
)

// DeleteCollaborationRequestCommandHandler erases a request. After the
// deletion commits, the request disappears from lookups and listings.
type DeleteCollaborationRequestCommandHandler struct {
	uowFactory CollaborationRequestUoWFactory
}

// NewDeleteCollaborationRequestCommandHandler creates a handler for request deletion.
func NewDeleteCollaborationRequestCommandHandler(uowFactory CollaborationRequestUoWFactory) DeleteCollaborationRequestCommandHandler {
	return DeleteCollaborationRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion.
func (h DeleteCollaborationRequestCommandHandler) Handle(ctx context.Context, command DeleteCollaborationRequestCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CollaborationRequestRepository()

	request, err := repo.Get(ctx, command.RequestID())
	if err != nil {
		return err
	}

	if err = request.Delete(command.CallerID()); err != nil {
		return err
	}

	if err = repo.Update(ctx, request); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
