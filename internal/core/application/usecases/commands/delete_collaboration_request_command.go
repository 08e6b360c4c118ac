package commands

import (
	"errors"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/guard"
)

var ErrDeleteCollaborationRequestCommandIsNotConstructed = errors.New(
	"DeleteCollaborationRequestCommand must be created via NewDeleteCollaborationRequestCommand constructor",
)

// DeleteCollaborationRequestCommand erases a collaboration request. Either
// party may delete from any prior status; the aggregate checks the caller.
type DeleteCollaborationRequestCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID
	callerID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteCollaborationRequestCommand creates a deletion command.
func NewDeleteCollaborationRequestCommand(requestID, callerID kernel.UUID) (DeleteCollaborationRequestCommand, error) {
	command := DeleteCollaborationRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRequestID(requestID),
		command.setCallerID(callerID),
	); err != nil {
		return DeleteCollaborationRequestCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteCollaborationRequestCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCollaborationRequestCommandIsNotConstructed)
}

// RequestID returns the request to delete.
func (c DeleteCollaborationRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

// CallerID returns the chef performing the deletion.
func (c DeleteCollaborationRequestCommand) CallerID() kernel.UUID {
	return c.callerID
}

func (c *DeleteCollaborationRequestCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}

func (c *DeleteCollaborationRequestCommand) setCallerID(callerID kernel.UUID) error {
	if err := callerID.Validate(); err != nil {
		return err
	}

	c.callerID = callerID
	return nil
}
