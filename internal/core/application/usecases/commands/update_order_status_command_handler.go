package commands

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
)

// UpdateOrderStatusCommandHandler applies an explicit status change.
//
// Admins may apply any transition of the status table. Riders may only move
// an order assigned to them to delivered. Side effects follow the target:
//   - paid confirms payment and tries to dispatch a rider
//   - out_for_delivery on a home delivery without a rider dispatches one,
//     failing with ErrNoRiderAvailable when nobody is free
//   - delivered, cancelled and refunded release the assigned rider
type UpdateOrderStatusCommandHandler struct {
	uowFactory UoWFactory
	assigner   RiderAssigner
	clock      kernel.Clock
}

// NewUpdateOrderStatusCommandHandler creates the status change handler.
// The assigner serves transitions that put an order back into dispatch.
func NewUpdateOrderStatusCommandHandler(uowFactory UoWFactory, assigner RiderAssigner, clock kernel.Clock) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		assigner:   assigner,
		clock:      clock,
	}
}

// Handle checks the actor may request the target status, applies the
// transition and releases or assigns riders as the transition requires.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := authorizeStatusChange(cmd.Actor(), cmd.Target()); err != nil {
		return nil, err
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

	current, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if cmd.Actor().Role == RoleRider && !current.IsAssignedTo(cmd.Actor().ID) {
		return nil, order.ErrNotAssignedToCaller
	}

	if err = h.apply(ctx, riderRepo, orderRepo, current, cmd.Target(), h.clock.Now()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, current); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return current, nil
}

func (h UpdateOrderStatusCommandHandler) apply(
	ctx context.Context,
	riders ports.RiderRepository,
	orders ports.OrderRepository,
	current *order.Order,
	target order.Status,
	now time.Time,
) error {
	switch {
	case target == order.Paid:
		if _, err := current.ChangeStatus(target, now); err != nil {
			return err
		}
		return h.assigner.DispatchIfAwaiting(ctx, riders, orders, current, now)

	case target == order.OutForDelivery &&
		current.Status() == order.Paid &&
		current.Delivery().Type() == order.HomeDelivery &&
		current.Delivery().Rider() == nil:
		assigned, err := h.assigner.Assign(ctx, riders, orders, now)
		if err != nil {
			return err
		}
		return current.AssignRider(assigned.ID(), now)
	}

	released, err := current.ChangeStatus(target, now)
	if err != nil {
		return err
	}
	if released != nil {
		if _, err = riders.Release(ctx, *released); err != nil {
			return err
		}
	}
	return nil
}

func authorizeStatusChange(actor Actor, target order.Status) error {
	switch actor.Role {
	case RoleAdmin:
		return nil
	case RoleRider:
		if target == order.Delivered {
			return nil
		}
	}
	return ErrRoleNotPermitted
}
