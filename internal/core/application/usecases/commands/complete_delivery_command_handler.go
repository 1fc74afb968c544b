package commands

import (
	"context"

	"storefront/internal/core/domain/model/order"
)

// CompleteDeliveryCommandHandler is the rider's delivered button: a status
// change to delivered on behalf of the assigned rider.
type CompleteDeliveryCommandHandler struct {
	statusHandler UpdateOrderStatusCommandHandler
}

// NewCompleteDeliveryCommandHandler wraps the status handler; completion is a
// transition to delivered performed by the assigned rider.
func NewCompleteDeliveryCommandHandler(statusHandler UpdateOrderStatusCommandHandler) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{statusHandler: statusHandler}
}

// Handle moves the order to delivered and frees the rider. Riders other than
// the assigned one get order.ErrNotAssignedToCaller.
func (h CompleteDeliveryCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveryCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	statusCmd, err := NewUpdateOrderStatusCommand(
		cmd.OrderID(),
		order.Delivered,
		Actor{Role: RoleRider, ID: cmd.RiderID()},
	)
	if err != nil {
		return nil, err
	}

	return h.statusHandler.Handle(ctx, statusCmd)
}
