package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrGetAllRidersQueryIsNotConstructed = errors.New(
	"GetAllRidersQuery must be created via NewGetAllRidersQuery constructor",
)

// GetAllRidersQuery lists the fleet with the number of deliveries each rider
// is carrying right now.
type GetAllRidersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllRidersQuery lists every rider with their current load.
func NewGetAllRidersQuery() GetAllRidersQuery {
	return GetAllRidersQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAllRidersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllRidersQueryIsNotConstructed)
}

// GetAllRidersQueryResponse is one row of the rider listing.
type GetAllRidersQueryResponse struct {
	ID             kernel.UUID
	Name           string
	Phone          string
	Available      bool
	LastAssignedAt *time.Time
	ActiveOrders   int
}
