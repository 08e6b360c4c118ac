package commands

import (
	"errors"

	"catering/internal/core/domain/model/bulkorder"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"
	"catering/internal/pkg/guard"
)

var ErrUpdateBulkOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateBulkOrderStatusCommand must be created via NewUpdateBulkOrderStatusCommand constructor",
)

// UpdateBulkOrderStatusCommand advances an order along the kitchen pipeline.
// Only the three kitchen targets are reachable through it; acceptance,
// collaboration, and cancellation have their own commands with their own
// authorization rules.
//
// Example:
//
//	cmd, err := NewUpdateBulkOrderStatusCommand(orderID, bulkorder.Preparing)
//	if err != nil {
//	    return fmt.Errorf("invalid status update: %w", err)
//	}
//	order, err := handler.Handle(ctx, cmd)
type UpdateBulkOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	target  bulkorder.Status

	guard guard.ConstructorGuard
}

// NewUpdateBulkOrderStatusCommand creates a kitchen status update command.
// The target must be Preparing, ReadyForDelivery, or Completed.
func NewUpdateBulkOrderStatusCommand(orderID kernel.UUID, target bulkorder.Status) (UpdateBulkOrderStatusCommand, error) {
	command := UpdateBulkOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setTarget(target),
	); err != nil {
		return UpdateBulkOrderStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateBulkOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateBulkOrderStatusCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c UpdateBulkOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested kitchen status.
func (c UpdateBulkOrderStatusCommand) Target() bulkorder.Status {
	return c.target
}

func (c *UpdateBulkOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateBulkOrderStatusCommand) setTarget(target bulkorder.Status) error {
	switch target {
	case bulkorder.Preparing, bulkorder.ReadyForDelivery, bulkorder.Completed:
		c.target = target
		return nil
	default:
		return errs.NewValueIsInvalidError("target status " + target.String())
	}
}
