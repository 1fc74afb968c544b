package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand moves an order to target on behalf of actor.
type UpdateOrderStatusCommand struct {
	orderID kernel.UUID
	target  order.Status
	actor   Actor

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a status change requested by actor.
func NewUpdateOrderStatusCommand(orderID kernel.UUID, target order.Status, actor Actor) (UpdateOrderStatusCommand, error) {
	if err := errors.Join(
		validateOrderID(orderID),
		target.Validate(),
		actor.Validate(),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return UpdateOrderStatusCommand{
		orderID: orderID,
		target:  target,
		actor:   actor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

func (c UpdateOrderStatusCommand) OrderID() kernel.UUID { return c.orderID }
func (c UpdateOrderStatusCommand) Target() order.Status { return c.target }
func (c UpdateOrderStatusCommand) Actor() Actor         { return c.actor }
