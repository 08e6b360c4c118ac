package commands

import (
	"errors"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/guard"
)

var ErrDeclineBulkOrderCommandIsNotConstructed = errors.New(
	"DeclineBulkOrderCommand must be created via NewDeclineBulkOrderCommand constructor",
)

// DeclineBulkOrderCommand represents the primary chef turning down a pending
// bulk order with an optional reason.
type DeclineBulkOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	chefID  kernel.UUID
	reason  string

	guard guard.ConstructorGuard
}

// NewDeclineBulkOrderCommand creates a command for the primary chef to decline
// an order. The reason may be empty.
func NewDeclineBulkOrderCommand(orderID, chefID kernel.UUID, reason string) (DeclineBulkOrderCommand, error) {
	command := DeclineBulkOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setChefID(chefID),
	); err != nil {
		return DeclineBulkOrderCommand{}, err
	}

	command.reason = reason
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DeclineBulkOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeclineBulkOrderCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c DeclineBulkOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ChefID returns the declining chef's identifier.
func (c DeclineBulkOrderCommand) ChefID() kernel.UUID {
	return c.chefID
}

// Reason returns the decline reason, possibly empty.
func (c DeclineBulkOrderCommand) Reason() string {
	return c.reason
}

func (c *DeclineBulkOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *DeclineBulkOrderCommand) setChefID(chefID kernel.UUID) error {
	if err := chefID.Validate(); err != nil {
		return err
	}

	c.chefID = chefID
	return nil
}
