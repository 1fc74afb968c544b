package jobs_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReclaimHandler struct {
	mock.Mock
}

func (m *MockReclaimHandler) Handle(
	ctx context.Context,
	cmd commands.ReclaimExpiredAssignmentsCommand,
) (commands.ReclaimExpiredAssignmentsResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.ReclaimExpiredAssignmentsResult), args.Error(1)
}

type MockAssignPendingHandler struct {
	mock.Mock
}

func (m *MockAssignPendingHandler) Handle(ctx context.Context, cmd commands.AssignPendingOrdersCommand) (int, error) {
	args := m.Called(ctx, cmd)
	return args.Int(0), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAssignmentTimeoutJob_RunOnce_ToleratesFailedOutcomes(t *testing.T) {
	ctx := t.Context()
	replacement := kernel.NewUUID()
	result := commands.ReclaimExpiredAssignmentsResult{Outcomes: []commands.ReassignmentOutcome{
		{OrderID: kernel.NewUUID(), PreviousRiderID: kernel.NewUUID(), RiderID: &replacement},
		{OrderID: kernel.NewUUID(), PreviousRiderID: kernel.NewUUID(), Skipped: true},
		{OrderID: kernel.NewUUID(), PreviousRiderID: kernel.NewUUID(), Err: errors.New("connection reset")},
	}}

	handler := new(MockReclaimHandler)
	handler.On("Handle", ctx, mock.AnythingOfType("commands.ReclaimExpiredAssignmentsCommand")).Return(result, nil).Once()

	jobs.NewAssignmentTimeoutJob(handler, time.Second, discardLogger()).RunOnce(ctx)

	handler.AssertExpectations(t)
}

func TestAssignmentTimeoutJob_StopCancelsInFlightSweep(t *testing.T) {
	started := make(chan struct{})
	var sawCancel atomic.Bool

	handler := new(MockReclaimHandler)
	handler.On("Handle", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			ctx := args.Get(0).(context.Context)
			close(started)
			<-ctx.Done()
			sawCancel.Store(true)
		}).
		Return(commands.ReclaimExpiredAssignmentsResult{}, context.Canceled).Once()

	job := jobs.NewAssignmentTimeoutJob(handler, time.Second, discardLogger())
	require.NoError(t, job.Start())

	select {
	case <-started:
	case <-time.After(5 * time.Second):
		t.Fatal("sweep did not start")
	}

	job.Stop()
	assert.True(t, sawCancel.Load())
}

func TestPendingDispatchJob_RunOnce(t *testing.T) {
	ctx := t.Context()

	handler := new(MockAssignPendingHandler)
	handler.On("Handle", ctx, mock.MatchedBy(func(cmd commands.AssignPendingOrdersCommand) bool {
		return cmd.BatchSize() == 25
	})).Return(3, nil).Once()
	handler.On("Handle", ctx, mock.Anything).Return(1, errors.New("deadlock detected")).Once()

	job, err := jobs.NewPendingDispatchJob(handler, time.Second, 25, discardLogger())
	require.NoError(t, err)

	job.RunOnce(ctx)
	job.RunOnce(ctx)

	handler.AssertExpectations(t)
}

func TestNewPendingDispatchJob_InvalidBatch(t *testing.T) {
	_, err := jobs.NewPendingDispatchJob(new(MockAssignPendingHandler), time.Second, 0, discardLogger())
	require.Error(t, err)
}

func TestJobManager_StartAndStopAll(t *testing.T) {
	var sweeps, dispatches atomic.Int32
	reclaim := new(MockReclaimHandler)
	reclaim.On("Handle", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { sweeps.Add(1) }).
		Return(commands.ReclaimExpiredAssignmentsResult{}, nil).Maybe()
	assign := new(MockAssignPendingHandler)
	assign.On("Handle", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { dispatches.Add(1) }).
		Return(0, nil).Maybe()

	manager, err := jobs.NewJobManager(reclaim, assign, jobs.Schedule{
		SLASweepInterval: time.Second,
		DispatchInterval: time.Second,
		DispatchBatch:    10,
	}, discardLogger())
	require.NoError(t, err)

	require.NoError(t, manager.StartAll())
	require.Eventually(t, func() bool {
		return sweeps.Load() > 0 && dispatches.Load() > 0
	}, 5*time.Second, 50*time.Millisecond)
	manager.StopAll()
}
