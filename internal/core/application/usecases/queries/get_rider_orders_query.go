package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrGetRiderOrdersQueryIsNotConstructed = errors.New(
	"GetRiderOrdersQuery must be created via NewGetRiderOrdersQuery constructor",
)

// GetRiderOrdersQuery lists the orders currently or previously assigned to a
// rider. Orders handed over to another rider are not included.
type GetRiderOrdersQuery struct {
	riderID  kernel.UUID
	statuses []order.Status
	guard    guard.ConstructorGuard
}

// NewGetRiderOrdersQuery lists orders assigned to riderID, optionally
// restricted to statuses.
func NewGetRiderOrdersQuery(riderID kernel.UUID, statuses []order.Status) (GetRiderOrdersQuery, error) {
	var riderErr error
	if err := riderID.Validate(); err != nil {
		riderErr = errs.NewValueIsRequiredErrorWithCause("rider", err)
	}
	if err := errors.Join(riderErr, validateStatuses(statuses)); err != nil {
		return GetRiderOrdersQuery{}, err
	}

	return GetRiderOrdersQuery{
		riderID:  riderID,
		statuses: statuses,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q GetRiderOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetRiderOrdersQueryIsNotConstructed)
}

func (q GetRiderOrdersQuery) RiderID() kernel.UUID {
	return q.riderID
}

func (q GetRiderOrdersQuery) Statuses() []order.Status {
	return q.statuses
}
