package commands

import (
	"errors"
	"time"

	"catering/internal/pkg/errs"
	"catering/internal/pkg/guard"
)

var ErrCancelStalePendingOrdersCommandIsNotConstructed = errors.New(
	"CancelStalePendingOrdersCommand must be created via NewCancelStalePendingOrdersCommand constructor",
)

// CancelStalePendingOrdersCommand sweeps pending bulk orders that have waited
// longer than the response window without a chef decision and cancels them.
// Issued by the background scheduler, not by users.
type CancelStalePendingOrdersCommand struct { //nolint:recvcheck //using for validation
	window time.Duration

	guard guard.ConstructorGuard
}

// NewCancelStalePendingOrdersCommand creates a sweep command for the given
// response window.
func NewCancelStalePendingOrdersCommand(window time.Duration) (CancelStalePendingOrdersCommand, error) {
	command := CancelStalePendingOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if window <= 0 {
		return CancelStalePendingOrdersCommand{}, errs.NewValueIsInvalidError("window")
	}
	command.window = window

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelStalePendingOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCancelStalePendingOrdersCommandIsNotConstructed)
}

// Window returns how long a pending order may wait before the sweep cancels it.
func (c CancelStalePendingOrdersCommand) Window() time.Duration {
	return c.window
}
