package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetMyOrdersQuery or NewGetOrdersQuery constructor",
)

// GetOrdersQuery lists orders newest first, optionally narrowed to one owner
// and to a set of statuses. An empty status set means every status.
//
// Example:
//
//	query, err := NewGetMyOrdersQuery(customerID)
//	orders, err := handler.Handle(ctx, query)
type GetOrdersQuery struct {
	ownerID  *kernel.UUID
	statuses []order.Status
	guard    guard.ConstructorGuard
}

// NewGetMyOrdersQuery is the order history of one customer.
func NewGetMyOrdersQuery(ownerID kernel.UUID) (GetOrdersQuery, error) {
	if err := ownerID.Validate(); err != nil {
		return GetOrdersQuery{}, errs.NewValueIsRequiredErrorWithCause("owner", err)
	}
	return GetOrdersQuery{ownerID: &ownerID, guard: guard.NewConstructorGuard()}, nil
}

// NewGetOrdersQuery is the operator listing across all customers.
func NewGetOrdersQuery(statuses []order.Status) (GetOrdersQuery, error) {
	if err := validateStatuses(statuses); err != nil {
		return GetOrdersQuery{}, err
	}
	return GetOrdersQuery{statuses: statuses, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

func (q GetOrdersQuery) OwnerID() *kernel.UUID {
	return q.ownerID
}

func (q GetOrdersQuery) Statuses() []order.Status {
	return q.statuses
}
