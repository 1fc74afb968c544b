package http

import (
	"errors"
	"fmt"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/generated/servers"
	"storefront/internal/pkg/errs"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func newCreateOrderCommand(ownerID kernel.UUID, body servers.NewOrder) (commands.CreateOrderCommand, error) {
	items := make([]order.Item, 0, len(body.Items))
	var itemErrs []error
	for i, line := range body.Items {
		item, err := newItem(line)
		if err != nil {
			itemErrs = append(itemErrs, fmt.Errorf("items[%d]: %w", i, err))
			continue
		}
		items = append(items, item)
	}
	if err := errors.Join(itemErrs...); err != nil {
		return commands.CreateOrderCommand{}, err
	}

	kind, err := order.ParseDeliveryType(string(body.Delivery.Type))
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}
	var address string
	if body.Delivery.Address != nil {
		address = *body.Delivery.Address
	}
	delivery, err := order.NewDelivery(kind, address, body.Delivery.ContactPhone)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	var method string
	if body.PaymentMethod != nil {
		method = string(*body.PaymentMethod)
	}
	paymentMethod, err := order.ParsePaymentMethod(method)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	return commands.NewCreateOrderCommand(kernel.NewUUID(), ownerID, items, delivery, paymentMethod)
}

func newItem(line servers.NewOrderItem) (order.Item, error) {
	productID, err := kernel.UUIDFromGoogle(line.ProductId)
	if err != nil {
		return order.Item{}, errs.NewValueIsRequiredErrorWithCause("product", err)
	}
	price, err := kernel.MoneyFromString(line.UnitPrice)
	if err != nil {
		return order.Item{}, err
	}
	return order.NewItem(productID, line.Name, line.Quantity, price)
}

func parseStatuses(filter *servers.StatusFilter) ([]order.Status, error) {
	if filter == nil {
		return nil, nil
	}

	statuses := make([]order.Status, 0, len(*filter))
	for _, name := range *filter {
		status, err := order.ParseStatus(string(name))
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}

// viewOf flattens an aggregate returned by a command into the read model
// the listings use, so both render through toOrder.
func viewOf(o *order.Order) queries.OrderView {
	delivery := o.Delivery()
	payment := o.Payment()

	items := make([]queries.ItemView, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, queries.ItemView{
			ProductID: item.ProductID(),
			Name:      item.Name(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
		})
	}

	return queries.OrderView{
		ID:            o.ID(),
		OwnerID:       o.OwnerID(),
		Status:        o.Status(),
		Total:         o.Total(),
		DeliveryType:  delivery.Type(),
		Address:       delivery.Address(),
		ContactPhone:  delivery.ContactPhone(),
		RiderID:       delivery.Rider(),
		AssignedAt:    delivery.AssignedAt(),
		AcceptedAt:    delivery.AcceptedAt(),
		DeliveredAt:   o.DeliveredAt(),
		PaymentMethod: payment.Method(),
		IsPaid:        payment.IsPaid(),
		PaidAt:        payment.PaidAt(),
		CreatedAt:     o.CreatedAt(),
		Items:         items,
	}
}

func toOrder(view queries.OrderView) servers.Order {
	items := make([]servers.OrderItem, len(view.Items))
	for i, item := range view.Items {
		items[i] = servers.OrderItem{
			ProductId: item.ProductID.Bytes(),
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.String(),
		}
	}

	delivery := servers.OrderDelivery{
		Type:         servers.DeliveryType(view.DeliveryType.String()),
		ContactPhone: view.ContactPhone,
		AssignedAt:   view.AssignedAt,
		AcceptedAt:   view.AcceptedAt,
	}
	if view.Address != "" {
		address := view.Address
		delivery.Address = &address
	}
	if view.RiderID != nil {
		var riderID openapi_types.UUID = view.RiderID.Bytes()
		delivery.RiderId = &riderID
	}

	return servers.Order{
		Id:          view.ID.Bytes(),
		OwnerId:     view.OwnerID.Bytes(),
		Status:      servers.OrderStatus(view.Status.String()),
		Total:       view.Total.String(),
		Items:       items,
		Delivery:    delivery,
		DeliveredAt: view.DeliveredAt,
		CreatedAt:   view.CreatedAt,
		Payment: servers.OrderPayment{
			Method: servers.PaymentMethod(view.PaymentMethod.String()),
			IsPaid: view.IsPaid,
			PaidAt: view.PaidAt,
		},
	}
}
