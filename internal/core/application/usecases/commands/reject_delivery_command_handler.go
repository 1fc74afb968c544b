package commands

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// RejectDeliveryCommandHandler frees the rejecting rider and hands the order
// to somebody else. With nobody else free the order goes back to paid and
// waits for the dispatch job.
type RejectDeliveryCommandHandler struct {
	uowFactory UoWFactory
	assigner   RiderAssigner
	clock      kernel.Clock
}

// NewRejectDeliveryCommandHandler creates a handler for delivery rejection.
// Requires a UoWFactory because the rider is released and the order
// reassigned in one transaction.
func NewRejectDeliveryCommandHandler(uowFactory UoWFactory, assigner RiderAssigner, clock kernel.Clock) RejectDeliveryCommandHandler {
	return RejectDeliveryCommandHandler{
		uowFactory: uowFactory,
		assigner:   assigner,
		clock:      clock,
	}
}

// Handle frees the rejecting rider and hands the order to another one, or back
// to dispatch when nobody else is free. Accepted deliveries may be rejected too;
// the acceptance is cleared.
func (h RejectDeliveryCommandHandler) Handle(ctx context.Context, cmd RejectDeliveryCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
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

	rejected, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if !rejected.IsAssignedTo(cmd.RiderID()) {
		return nil, order.ErrNotAssignedToCaller
	}
	if rejected.Status() != order.OutForDelivery {
		return nil, &order.InvalidTransitionError{From: rejected.Status(), To: order.OutForDelivery}
	}

	if _, err = riderRepo.Release(ctx, cmd.RiderID()); err != nil {
		return nil, err
	}

	now := h.clock.Now()
	replacement, err := h.assigner.Assign(ctx, riderRepo, orderRepo, now, cmd.RiderID())
	switch {
	case errors.Is(err, ErrNoRiderAvailable):
		err = rejected.ReturnToDispatch(cmd.RiderID(), now)
	case err != nil:
		return nil, err
	default:
		err = rejected.ReassignRider(cmd.RiderID(), replacement.ID(), now)
	}
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, rejected); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return rejected, nil
}
