package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
	"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
)

// CompleteDeliveryCommand is the assigned rider reporting the hand-over.
type CompleteDeliveryCommand struct {
	orderID kernel.UUID
	riderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteDeliveryCommand creates a command for a rider handing over an order.
func NewCompleteDeliveryCommand(orderID, riderID kernel.UUID) (CompleteDeliveryCommand, error) {
	if err := errors.Join(validateOrderID(orderID), validateRiderID(riderID)); err != nil {
		return CompleteDeliveryCommand{}, err
	}
	return CompleteDeliveryCommand{orderID: orderID, riderID: riderID, guard: guard.NewConstructorGuard()}, nil
}

func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

func (c CompleteDeliveryCommand) OrderID() kernel.UUID { return c.orderID }
func (c CompleteDeliveryCommand) RiderID() kernel.UUID { return c.riderID }
