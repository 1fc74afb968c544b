package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrMarkOrderPaidCommandIsNotConstructed = errors.New(
	"MarkOrderPaidCommand must be created via NewMarkOrderPaidCommand constructor",
)

// MarkOrderPaidCommand is the payment confirmation for one order, sent by
// its owner or by an admin.
type MarkOrderPaidCommand struct {
	orderID kernel.UUID
	actor   Actor
	guard   guard.ConstructorGuard
}

// NewMarkOrderPaidCommand creates a payment confirmation issued by actor.
func NewMarkOrderPaidCommand(orderID kernel.UUID, actor Actor) (MarkOrderPaidCommand, error) {
	if err := errors.Join(validateOrderID(orderID), actor.Validate()); err != nil {
		return MarkOrderPaidCommand{}, err
	}
	return MarkOrderPaidCommand{orderID: orderID, actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (c MarkOrderPaidCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderPaidCommandIsNotConstructed)
}

func (c MarkOrderPaidCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c MarkOrderPaidCommand) Actor() Actor {
	return c.actor
}
