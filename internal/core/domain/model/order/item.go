package order

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

const maxItemQuantity = 1000

// Item is an ordered line: a product snapshot at checkout time.
type Item struct {
	productID kernel.UUID
	name      string
	quantity  int
	unitPrice kernel.Money
}

// NewItem validates the line. The name is copied from the catalog so later
// catalog edits do not rewrite order history.
func NewItem(productID kernel.UUID, name string, quantity int, unitPrice kernel.Money) (Item, error) {
	var nameErr, quantityErr error
	name = strings.TrimSpace(name)
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("item name")
	}
	if quantity < 1 || quantity > maxItemQuantity {
		quantityErr = errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxItemQuantity)
	}

	if err := errors.Join(productID.Validate(), nameErr, quantityErr); err != nil {
		return Item{}, err
	}

	return Item{productID: productID, name: name, quantity: quantity, unitPrice: unitPrice}, nil
}

func (i Item) ProductID() kernel.UUID {
	return i.productID
}

func (i Item) Name() string {
	return i.name
}

func (i Item) Quantity() int {
	return i.quantity
}

func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Subtotal is quantity × unit price.
func (i Item) Subtotal() kernel.Money {
	return i.unitPrice.Times(i.quantity)
}
