package commands

import (
	"errors"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/guard"
)

var ErrRejectCollaborationRequestCommandIsNotConstructed = errors.New(
	"RejectCollaborationRequestCommand must be created via NewRejectCollaborationRequestCommand constructor",
)

// RejectCollaborationRequestCommand declines a pending collaboration request
// with an optional reason. The order is not touched.
type RejectCollaborationRequestCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID
	reason    string

	guard guard.ConstructorGuard
}

// NewRejectCollaborationRequestCommand creates a rejection command.
// The reason may be empty.
func NewRejectCollaborationRequestCommand(requestID kernel.UUID, reason string) (RejectCollaborationRequestCommand, error) {
	command := RejectCollaborationRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setRequestID(requestID); err != nil {
		return RejectCollaborationRequestCommand{}, err
	}

	command.reason = reason
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectCollaborationRequestCommand) Validate() error {
	return c.guard.Validate(ErrRejectCollaborationRequestCommandIsNotConstructed)
}

// RequestID returns the request to reject.
func (c RejectCollaborationRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

// Reason returns the rejection reason, possibly empty.
func (c RejectCollaborationRequestCommand) Reason() string {
	return c.reason
}

func (c *RejectCollaborationRequestCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}
