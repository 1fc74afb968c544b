package commands

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// AcceptDeliveryCommandHandler stops the acceptance clock of an assignment.
type AcceptDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
}

// NewAcceptDeliveryCommandHandler creates a handler for delivery acceptance.
// Requires an OrderUoWFactory; riders are not touched on accept.
func NewAcceptDeliveryCommandHandler(uowFactory OrderUoWFactory, clock kernel.Clock) AcceptDeliveryCommandHandler {
	return AcceptDeliveryCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle fails with order.ErrNotAssignedToCaller, order.ErrAlreadyAccepted or
// an invalid transition when the order left out_for_delivery. Racing the
// timeout sweep surfaces as errs.ErrVersionIsInvalid for whichever side
// writes second.
func (h AcceptDeliveryCommandHandler) Handle(ctx context.Context, cmd AcceptDeliveryCommand) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()

	accepted, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = accepted.Accept(cmd.RiderID(), h.clock.Now()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, accepted); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return accepted, nil
}
