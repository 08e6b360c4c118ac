package commands

import (
	"errors"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/guard"
)

var ErrAcceptCollaborationRequestCommandIsNotConstructed = errors.New(
	"AcceptCollaborationRequestCommand must be created via NewAcceptCollaborationRequestCommand constructor",
)

// AcceptCollaborationRequestCommand accepts a pending collaboration request,
// joining the invited chef to the order.
type AcceptCollaborationRequestCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptCollaborationRequestCommand creates an acceptance command.
func NewAcceptCollaborationRequestCommand(requestID kernel.UUID) (AcceptCollaborationRequestCommand, error) {
	command := AcceptCollaborationRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setRequestID(requestID); err != nil {
		return AcceptCollaborationRequestCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptCollaborationRequestCommand) Validate() error {
	return c.guard.Validate(ErrAcceptCollaborationRequestCommandIsNotConstructed)
}

// RequestID returns the request to accept.
func (c AcceptCollaborationRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

func (c *AcceptCollaborationRequestCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}
