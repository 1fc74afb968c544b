package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrAcceptDeliveryCommandIsNotConstructed = errors.New(
	"AcceptDeliveryCommand must be created via NewAcceptDeliveryCommand constructor",
)

// AcceptDeliveryCommand is the assigned rider taking the delivery.
type AcceptDeliveryCommand struct {
	orderID kernel.UUID
	riderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptDeliveryCommand creates a command for a rider taking an assigned delivery.
// Both IDs must be set.
func NewAcceptDeliveryCommand(orderID, riderID kernel.UUID) (AcceptDeliveryCommand, error) {
	if err := errors.Join(validateOrderID(orderID), validateRiderID(riderID)); err != nil {
		return AcceptDeliveryCommand{}, err
	}
	return AcceptDeliveryCommand{orderID: orderID, riderID: riderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate reports whether the command was built by its constructor.
func (c AcceptDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAcceptDeliveryCommandIsNotConstructed)
}

func (c AcceptDeliveryCommand) OrderID() kernel.UUID { return c.orderID }
func (c AcceptDeliveryCommand) RiderID() kernel.UUID { return c.riderID }
