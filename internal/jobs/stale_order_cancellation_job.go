package jobs

import (
	"context"
	"log/slog"
	"time"

	"catering/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StaleOrderCancellationJob sweeps pending bulk orders that no chef answered
// within the configured window and cancels them through the ordinary cancel
// transition. Runs every minute.
type StaleOrderCancellationJob struct {
	handler commands.CancelStalePendingOrdersCommandHandler
	window  time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStaleOrderCancellationJob creates the sweep job. The window is how long
// a pending order may wait for a chef before automatic cancellation.
func NewStaleOrderCancellationJob(
	handler commands.CancelStalePendingOrdersCommandHandler,
	window time.Duration,
	logger *slog.Logger,
) *StaleOrderCancellationJob {
	return &StaleOrderCancellationJob{
		handler: handler,
		window:  window,
		cron:    cron.New(),
		logger:  logger.With("component", "stale_order_cancellation_job"),
	}
}

// Start begins the sweep to run every minute.
func (j *StaleOrderCancellationJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", j.runOnce)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order cancellation job started (running every minute)",
		"window", j.window.String())
	return nil
}

// Stop stops the sweep job.
func (j *StaleOrderCancellationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order cancellation job stopped")
}

func (j *StaleOrderCancellationJob) runOnce() {
	ctx := context.Background()

	cmd, err := commands.NewCancelStalePendingOrdersCommand(j.window)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale order cancellation job misconfigured", "error", err)
		return
	}

	cancelled, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale order sweep failed", "error", err)
		return
	}

	if len(cancelled) > 0 {
		j.logger.InfoContext(ctx, "Cancelled stale pending orders", "count", len(cancelled))
	}
}
