package commands

import (
	"errors"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/guard"
)

var ErrAcceptBulkOrderCommandIsNotConstructed = errors.New(
	"AcceptBulkOrderCommand must be created via NewAcceptBulkOrderCommand constructor",
)

// AcceptBulkOrderCommand represents the primary chef taking a pending bulk
// order, optionally attaching a note for the customer.
//
// Example:
//
//	cmd, err := NewAcceptBulkOrderCommand(orderID, chefID, "Ready to cook!")
//	if err != nil {
//	    return fmt.Errorf("invalid accept request: %w", err)
//	}
//	order, err := handler.Handle(ctx, cmd)
type AcceptBulkOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	chefID  kernel.UUID
	note    string

	guard guard.ConstructorGuard
}

// NewAcceptBulkOrderCommand creates a command for the primary chef to accept
// an order. The note may be empty.
func NewAcceptBulkOrderCommand(orderID, chefID kernel.UUID, note string) (AcceptBulkOrderCommand, error) {
	command := AcceptBulkOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setChefID(chefID),
	); err != nil {
		return AcceptBulkOrderCommand{}, err
	}

	command.note = note
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptBulkOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptBulkOrderCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c AcceptBulkOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ChefID returns the accepting chef's identifier.
func (c AcceptBulkOrderCommand) ChefID() kernel.UUID {
	return c.chefID
}

// Note returns the chef's note to the customer, possibly empty.
func (c AcceptBulkOrderCommand) Note() string {
	return c.note
}

func (c *AcceptBulkOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AcceptBulkOrderCommand) setChefID(chefID kernel.UUID) error {
	if err := chefID.Validate(); err != nil {
		return err
	}

	c.chefID = chefID
	return nil
}
