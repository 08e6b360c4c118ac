package commands

import (
	"errors"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/guard"
)

var ErrCancelBulkOrderCommandIsNotConstructed = errors.New(
	"CancelBulkOrderCommand must be created via NewCancelBulkOrderCommand constructor",
)

// CancelBulkOrderCommand withdraws an order from any non-terminal status.
// The actor must be the primary chef or the ordering customer; the aggregate
// enforces that rule.
type CancelBulkOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID
	reason  string

	guard guard.ConstructorGuard
}

// NewCancelBulkOrderCommand creates a cancellation command. The reason may
// be empty.
func NewCancelBulkOrderCommand(orderID, actorID kernel.UUID, reason string) (CancelBulkOrderCommand, error) {
	command := CancelBulkOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setActorID(actorID),
	); err != nil {
		return CancelBulkOrderCommand{}, err
	}

	command.reason = reason
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelBulkOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelBulkOrderCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c CancelBulkOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the cancelling party's identifier.
func (c CancelBulkOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Reason returns the cancellation reason, possibly empty.
func (c CancelBulkOrderCommand) Reason() string {
	return c.reason
}

func (c *CancelBulkOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CancelBulkOrderCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
