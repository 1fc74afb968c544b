package commands

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// MarkOrderPaidCommandHandler confirms payment and, for home deliveries,
// dispatches a rider in the same transaction.
//
// When every rider is busy the order is still marked paid and stays without
// a rider; PendingDispatchJob retries it later.
type MarkOrderPaidCommandHandler struct {
	uowFactory UoWFactory
	assigner   RiderAssigner
	clock      kernel.Clock
}

// NewMarkOrderPaidCommandHandler creates the payment handler. Payment triggers
// dispatch in the same unit of work, hence the assigner.
func NewMarkOrderPaidCommandHandler(uowFactory UoWFactory, assigner RiderAssigner, clock kernel.Clock) MarkOrderPaidCommandHandler {
	return MarkOrderPaidCommandHandler{
		uowFactory: uowFactory,
		assigner:   assigner,
		clock:      clock,
	}
}

// Handle returns ErrNotOrderOwner, order.ErrAlreadyPaid, order.ErrInvalidTransition or a
// not-found error without writing anything.
func (h MarkOrderPaidCommandHandler) Handle(ctx context.Context, cmd MarkOrderPaidCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if cmd.Actor().Role == RoleRider {
		return nil, ErrRoleNotPermitted
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	riderRepo := uow.RiderRepository()
	orderRepo := uow.OrderRepository()

	paid, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if cmd.Actor().Role == RoleCustomer && !paid.OwnerID().IsEqual(cmd.Actor().ID) {
		return nil, ErrNotOrderOwner
	}

	now := h.clock.Now()
	if err = paid.MarkPaid(now); err != nil {
		return nil, err
	}

	if err = h.assigner.DispatchIfAwaiting(ctx, riderRepo, orderRepo, paid, now); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, paid); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return paid, nil
}
