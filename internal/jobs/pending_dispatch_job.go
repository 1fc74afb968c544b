package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"storefront/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

type assignPendingHandler interface {
	Handle(ctx context.Context, cmd commands.AssignPendingOrdersCommand) (int, error)
}

// PendingDispatchJob retries rider assignment for paid home deliveries that
// found nobody free at payment time.
type PendingDispatchJob struct {
	handler  assignPendingHandler
	cmd      commands.AssignPendingOrdersCommand
	interval time.Duration
	cron     *cron.Cron
	logger   *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
}

func NewPendingDispatchJob(
	handler assignPendingHandler,
	interval time.Duration,
	batchSize int,
	logger *slog.Logger,
) (*PendingDispatchJob, error) {
	cmd, err := commands.NewAssignPendingOrdersCommand(batchSize)
	if err != nil {
		return nil, err
	}

	logger = logger.With("component", "pending_dispatch_job")
	ctx, cancel := context.WithCancel(context.Background())
	return &PendingDispatchJob{
		handler:  handler,
		cmd:      cmd,
		interval: interval,
		cron:     newCron(logger),
		logger:   logger,
		ctx:      ctx,
		cancel:   cancel,
	}, nil
}

func (j *PendingDispatchJob) Start() error {
	if _, err := j.cron.AddFunc(fmt.Sprintf("@every %s", j.interval), func() { j.RunOnce(j.ctx) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(j.ctx, "Pending dispatch job started", "interval", j.interval.String())
	return nil
}

func (j *PendingDispatchJob) RunOnce(ctx context.Context) {
	assigned, err := j.handler.Handle(ctx, j.cmd)
	if err != nil {
		if ctx.Err() == nil {
			j.logger.ErrorContext(ctx, "Pending dispatch failed", "assigned", assigned, "error", err)
		}
		return
	}
	if assigned > 0 {
		j.logger.InfoContext(ctx, "Pending orders dispatched", "assigned", assigned)
	}
}

func (j *PendingDispatchJob) Stop() {
	j.cancel()
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Pending dispatch job stopped")
}
