package commands_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/rider"
	"storefront/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllAwaitingAcceptance(ctx context.Context, assignedBefore time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, assignedBefore)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllAwaitingRider(ctx context.Context, limit int) ([]*order.Order, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) CountActiveByRiders(
	ctx context.Context,
	riderIDs []kernel.UUID,
	since time.Time,
) (map[kernel.UUID]int, error) {
	args := m.Called(ctx, riderIDs, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[kernel.UUID]int), args.Error(1)
}

type MockRiderRepository struct{ mock.Mock }

func (m *MockRiderRepository) Add(ctx context.Context, r *rider.Rider) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRiderRepository) Get(ctx context.Context, id kernel.UUID) (*rider.Rider, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rider.Rider), args.Error(1)
}

func (m *MockRiderRepository) GetAllAvailable(ctx context.Context) ([]*rider.Rider, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*rider.Rider), args.Error(1)
}

func (m *MockRiderRepository) Lock(ctx context.Context, r *rider.Rider) (bool, error) {
	args := m.Called(ctx, r)
	return args.Bool(0), args.Error(1)
}

func (m *MockRiderRepository) Release(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockUoW satisfies every narrowed unit of work of the commands package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) RiderRepository() ports.RiderRepository {
	args := m.Called()
	return args.Get(0).(ports.RiderRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockRiderUoWFactory struct{ mock.Mock }

func (m *MockRiderUoWFactory) Create() commands.RiderUoW {
	args := m.Called()
	return args.Get(0).(commands.RiderUoW)
}

var fixedNow = time.Date(2025, 3, 14, 12, 30, 0, 0, time.UTC)

func fixedClock() kernel.Clock {
	return kernel.ClockFunc(func() time.Time { return fixedNow })
}

func testItems(t *testing.T) []order.Item {
	t.Helper()
	price, err := kernel.NewMoney(decimal.RequireFromString("12.50"))
	require.NoError(t, err)
	item, err := order.NewItem(kernel.NewUUID(), "Margherita", 2, price)
	require.NoError(t, err)
	return []order.Item{item}
}

func homeDelivery(t *testing.T) order.Delivery {
	t.Helper()
	d, err := order.NewDelivery(order.HomeDelivery, "12 Baker St", "+15550100")
	require.NoError(t, err)
	return d
}

func pickupDelivery(t *testing.T) order.Delivery {
	t.Helper()
	d, err := order.NewDelivery(order.Pickup, "", "+15550100")
	require.NoError(t, err)
	return d
}

func pendingOrder(t *testing.T, delivery order.Delivery) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), testItems(t), delivery, order.Card, fixedNow.Add(-time.Hour))
	require.NoError(t, err)
	return o
}

func paidOrder(t *testing.T, delivery order.Delivery) *order.Order {
	t.Helper()
	o := pendingOrder(t, delivery)
	require.NoError(t, o.MarkPaid(fixedNow.Add(-30*time.Minute)))
	o.ClearDomainEvents()
	return o
}

// assignedOrder is out for delivery with riderID assigned at assignedAt.
func assignedOrder(t *testing.T, riderID kernel.UUID, assignedAt time.Time) *order.Order {
	t.Helper()
	o := paidOrder(t, homeDelivery(t))
	require.NoError(t, o.AssignRider(riderID, assignedAt))
	o.ClearDomainEvents()
	return o
}

func availableRider(t *testing.T, name string) *rider.Rider {
	t.Helper()
	r, err := rider.NewRider(kernel.NewUUID(), name, "+1555"+name)
	require.NoError(t, err)
	return r
}

func riderIDs(riders ...*rider.Rider) []kernel.UUID {
	ids := make([]kernel.UUID, len(riders))
	for i, r := range riders {
		ids[i] = r.ID()
	}
	return ids
}

// expectTransaction registers Begin and the repository getters of a handler
// that touches riders and orders.
func expectTransaction(ctx context.Context, uow *MockUoW, riders *MockRiderRepository, orders *MockOrderRepository) {
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("RiderRepository").Return(riders).Once()
	uow.On("OrderRepository").Return(orders).Once()
}

func expectCommit(ctx context.Context, uow *MockUoW) {
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
}
