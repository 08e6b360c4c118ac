package commands

import (
	"errors"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"
	"catering/internal/pkg/guard"
)

var ErrCreateCollaborationRequestCommandIsNotConstructed = errors.New(
	"CreateCollaborationRequestCommand must be created via NewCreateCollaborationRequestCommand constructor",
)

// CreateCollaborationRequestCommand invites another chef to share a bulk
// order. Field-level rules (required message and work distribution, no
// self-invitation) are checked here so a malformed invitation never reaches
// the transaction; the cross-aggregate rules (primary-chef authorization,
// order status, pending-pair uniqueness) live in the handler.
type CreateCollaborationRequestCommand struct { //nolint:recvcheck //using for validation
	requestID        kernel.UUID
	orderID          kernel.UUID
	fromChefID       kernel.UUID
	toChefID         kernel.UUID
	message          string
	workDistribution string

	guard guard.ConstructorGuard
}

// NewCreateCollaborationRequestCommand creates a collaboration invitation command.
func NewCreateCollaborationRequestCommand(
	requestID kernel.UUID,
	orderID kernel.UUID,
	fromChefID kernel.UUID,
	toChefID kernel.UUID,
	message string,
	workDistribution string,
) (CreateCollaborationRequestCommand, error) {
	command := CreateCollaborationRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setIDs(requestID, orderID, fromChefID, toChefID),
		command.setMessage(message),
		command.setWorkDistribution(workDistribution),
	); err != nil {
		return CreateCollaborationRequestCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCollaborationRequestCommand) Validate() error {
	return c.guard.Validate(ErrCreateCollaborationRequestCommandIsNotConstructed)
}

// RequestID returns the identifier assigned to the new request.
func (c CreateCollaborationRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

// OrderID returns the bulk order being shared.
func (c CreateCollaborationRequestCommand) OrderID() kernel.UUID {
	return c.orderID
}

// FromChefID returns the inviting chef.
func (c CreateCollaborationRequestCommand) FromChefID() kernel.UUID {
	return c.fromChefID
}

// ToChefID returns the invited chef.
func (c CreateCollaborationRequestCommand) ToChefID() kernel.UUID {
	return c.toChefID
}

// Message returns the invitation message.
func (c CreateCollaborationRequestCommand) Message() string {
	return c.message
}

// WorkDistribution returns the proposed split of work.
func (c CreateCollaborationRequestCommand) WorkDistribution() string {
	return c.workDistribution
}

func (c *CreateCollaborationRequestCommand) setIDs(requestID, orderID, fromChefID, toChefID kernel.UUID) error {
	if err := errors.Join(
		requestID.Validate(),
		orderID.Validate(),
		fromChefID.Validate(),
		toChefID.Validate(),
	); err != nil {
		return err
	}
	if fromChefID.IsEqual(toChefID) {
		return errs.NewValueIsInvalidError("toChefId equals fromChefId")
	}

	c.requestID = requestID
	c.orderID = orderID
	c.fromChefID = fromChefID
	c.toChefID = toChefID
	return nil
}

func (c *CreateCollaborationRequestCommand) setMessage(message string) error {
	if message == "" {
		return errs.NewValueIsRequiredError("message")
	}
	c.message = message
	return nil
}

func (c *CreateCollaborationRequestCommand) setWorkDistribution(workDistribution string) error {
	if workDistribution == "" {
		return errs.NewValueIsRequiredError("workDistribution")
	}
	c.workDistribution = workDistribution
	return nil
}
