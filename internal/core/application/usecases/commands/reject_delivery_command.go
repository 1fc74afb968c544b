package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrRejectDeliveryCommandIsNotConstructed = errors.New(
	"RejectDeliveryCommand must be created via NewRejectDeliveryCommand constructor",
)

// RejectDeliveryCommand is the assigned rider turning the delivery down.
type RejectDeliveryCommand struct {
	orderID kernel.UUID
	riderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRejectDeliveryCommand creates a command for a rider declining a delivery.
func NewRejectDeliveryCommand(orderID, riderID kernel.UUID) (RejectDeliveryCommand, error) {
	if err := errors.Join(validateOrderID(orderID), validateRiderID(riderID)); err != nil {
		return RejectDeliveryCommand{}, err
	}
	return RejectDeliveryCommand{orderID: orderID, riderID: riderID, guard: guard.NewConstructorGuard()}, nil
}

func (c RejectDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrRejectDeliveryCommandIsNotConstructed)
}

func (c RejectDeliveryCommand) OrderID() kernel.UUID { return c.orderID }
func (c RejectDeliveryCommand) RiderID() kernel.UUID { return c.riderID }
