package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand is checkout handing a priced cart to the order service.
//
// Example:
//
//	delivery, _ := order.NewDelivery(order.HomeDelivery, "12 Baker St", "+15550100")
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), customerID, items, delivery, order.CashOnDelivery)
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	ownerID       kernel.UUID
	items         []order.Item
	delivery      order.Delivery
	paymentMethod order.PaymentMethod

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates identifiers and requires at least one item.
// Items and delivery are value objects and were validated when built.
func NewCreateOrderCommand(
	orderID, ownerID kernel.UUID,
	items []order.Item,
	delivery order.Delivery,
	paymentMethod order.PaymentMethod,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		delivery:      delivery,
		paymentMethod: paymentMethod,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setOwnerID(ownerID),
		cmd.setItems(items),
		delivery.Type().Validate(),
		paymentMethod.Validate(),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID               { return c.orderID }
func (c CreateOrderCommand) OwnerID() kernel.UUID               { return c.ownerID }
func (c CreateOrderCommand) Items() []order.Item                { return c.items }
func (c CreateOrderCommand) Delivery() order.Delivery           { return c.delivery }
func (c CreateOrderCommand) PaymentMethod() order.PaymentMethod { return c.paymentMethod }

func (c *CreateOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *CreateOrderCommand) setOwnerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("owner", err)
	}
	c.ownerID = id
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	c.items = items
	return nil
}
