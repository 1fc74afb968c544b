package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"storefront/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

type reclaimHandler interface {
	Handle(ctx context.Context, cmd commands.ReclaimExpiredAssignmentsCommand) (commands.ReclaimExpiredAssignmentsResult, error)
}

// AssignmentTimeoutJob periodically hands deliveries that were not accepted
// within the SLA window to another rider.
type AssignmentTimeoutJob struct {
	handler  reclaimHandler
	interval time.Duration
	cron     *cron.Cron
	logger   *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
}

func NewAssignmentTimeoutJob(handler reclaimHandler, interval time.Duration, logger *slog.Logger) *AssignmentTimeoutJob {
	logger = logger.With("component", "assignment_timeout_job")
	ctx, cancel := context.WithCancel(context.Background())
	return &AssignmentTimeoutJob{
		handler:  handler,
		interval: interval,
		cron:     newCron(logger),
		logger:   logger,
		ctx:      ctx,
		cancel:   cancel,
	}
}

func (j *AssignmentTimeoutJob) Start() error {
	if _, err := j.cron.AddFunc(fmt.Sprintf("@every %s", j.interval), func() { j.RunOnce(j.ctx) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(j.ctx, "Assignment timeout job started", "interval", j.interval.String())
	return nil
}

// RunOnce performs a single sweep. Failures are logged; the next tick retries.
func (j *AssignmentTimeoutJob) RunOnce(ctx context.Context) {
	result, err := j.handler.Handle(ctx, commands.NewReclaimExpiredAssignmentsCommand())
	if err != nil {
		if ctx.Err() == nil {
			j.logger.ErrorContext(ctx, "Assignment timeout sweep failed", "error", err)
		}
		return
	}

	for _, outcome := range result.Outcomes {
		switch {
		case outcome.Err != nil:
			j.logger.ErrorContext(ctx, "Reassignment failed",
				"order_id", outcome.OrderID.String(),
				"previous_rider_id", outcome.PreviousRiderID.String(),
				"error", outcome.Err)
		case outcome.Skipped:
			j.logger.DebugContext(ctx, "Reassignment skipped",
				"order_id", outcome.OrderID.String(),
				"previous_rider_id", outcome.PreviousRiderID.String())
		default:
			j.logger.InfoContext(ctx, "Delivery reassigned after acceptance timeout",
				"order_id", outcome.OrderID.String(),
				"previous_rider_id", outcome.PreviousRiderID.String(),
				"rider_id", outcome.RiderID.String())
		}
	}
}

// Stop cancels an in-flight sweep and waits for it to return.
func (j *AssignmentTimeoutJob) Stop() {
	j.cancel()
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Assignment timeout job stopped")
}
