package commands

import (
	"errors"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/guard"
)

var ErrAssignDeliveryCommandIsNotConstructed = errors.New(
	"AssignDeliveryCommand must be created via NewAssignDeliveryCommand constructor",
)

// AssignDeliveryCommand hands a ready-for-delivery order over to the delivery
// subsystem. The order status is not changed by dispatch; the delivery side
// reports completion separately.
type AssignDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignDeliveryCommand creates a dispatch command for the given order.
func NewAssignDeliveryCommand(orderID kernel.UUID) (AssignDeliveryCommand, error) {
	command := AssignDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return AssignDeliveryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAssignDeliveryCommandIsNotConstructed)
}

// OrderID returns the order to dispatch.
func (c AssignDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *AssignDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
