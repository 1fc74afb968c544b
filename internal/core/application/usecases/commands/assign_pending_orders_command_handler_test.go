package commands_test

import (
	"context"
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/rider"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAssignPendingHandler(factory *MockUoWFactory) commands.AssignPendingOrdersCommandHandler {
	return commands.NewAssignPendingOrdersCommandHandler(factory, commands.NewRiderAssigner(), fixedClock())
}

func waitingListUoW(ctx context.Context, limit int, waiting []*order.Order) *MockUoW {
	orders := new(MockOrderRepository)
	orders.On("GetAllAwaitingRider", ctx, limit).Return(waiting, nil).Once()
	uow := new(MockUoW)
	uow.On("OrderRepository").Return(orders).Once()
	return uow
}

func TestAssignPendingOrdersCommandHandler_Handle_AssignsUntilRidersRunOut(t *testing.T) {
	ctx := t.Context()
	first := paidOrder(t, homeDelivery(t))
	second := paidOrder(t, homeDelivery(t))
	only := availableRider(t, "Only")

	riders := new(MockRiderRepository)
	orders := new(MockOrderRepository)
	tx := new(MockUoW)
	expectTransaction(ctx, tx, riders, orders)
	orders.On("Get", ctx, first.ID()).Return(first, nil).Once()
	riders.On("GetAllAvailable", ctx).Return([]*rider.Rider{only}, nil).Once()
	orders.On("CountActiveByRiders", ctx, riderIDs(only), kernel.StartOfDay(fixedNow)).
		Return(map[kernel.UUID]int{}, nil).Once()
	riders.On("Lock", ctx, only).Return(true, nil).Once()
	orders.On("Update", ctx, first).Return(nil).Once()
	expectCommit(ctx, tx)

	drainedRiders := new(MockRiderRepository)
	drainedOrders := new(MockOrderRepository)
	drained := new(MockUoW)
	expectTransaction(ctx, drained, drainedRiders, drainedOrders)
	drainedOrders.On("Get", ctx, second.ID()).Return(second, nil).Once()
	drainedRiders.On("GetAllAvailable", ctx).Return([]*rider.Rider{}, nil).Once()
	drained.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(waitingListUoW(ctx, 10, []*order.Order{first, second})).Once()
	factory.On("Create").Return(tx).Once()
	factory.On("Create").Return(drained).Once()

	cmd, err := commands.NewAssignPendingOrdersCommand(10)
	require.NoError(t, err)

	assigned, err := newAssignPendingHandler(factory).Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 1, assigned)
	assert.True(t, first.IsAssignedTo(only.ID()))
	assert.Equal(t, order.OutForDelivery, first.Status())
	assert.Equal(t, order.Paid, second.Status())
	drained.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestAssignPendingOrdersCommandHandler_Handle_SkipsOrdersDispatchedMeanwhile(t *testing.T) {
	ctx := t.Context()
	listed := paidOrder(t, homeDelivery(t))
	dispatched := assignedOrder(t, kernel.NewUUID(), fixedNow)

	riders := new(MockRiderRepository)
	orders := new(MockOrderRepository)
	tx := new(MockUoW)
	expectTransaction(ctx, tx, riders, orders)
	orders.On("Get", ctx, listed.ID()).Return(dispatched, nil).Once()
	tx.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(waitingListUoW(ctx, 5, []*order.Order{listed})).Once()
	factory.On("Create").Return(tx).Once()

	cmd, _ := commands.NewAssignPendingOrdersCommand(5)
	assigned, err := newAssignPendingHandler(factory).Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Zero(t, assigned)
	riders.AssertNotCalled(t, "GetAllAvailable", mock.Anything)
}

func TestNewAssignPendingOrdersCommand_BatchOutOfRange(t *testing.T) {
	_, err := commands.NewAssignPendingOrdersCommand(0)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}
