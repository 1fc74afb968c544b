package ports

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// OrderRepository persists order aggregates with their items.
type OrderRepository interface {
	// Add persists a new order.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update writes the aggregate only if the stored version still equals
	// aggregate.Version(), then bumps the version. A stale write returns
	// errs.VersionIsInvalidError and changes nothing; a missing order returns
	// errs.ObjectNotFoundError.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get returns errs.ObjectNotFoundError("order", id) when missing.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllAwaitingAcceptance returns out_for_delivery orders with a rider
	// that has not accepted and was assigned at or before assignedBefore.
	GetAllAwaitingAcceptance(ctx context.Context, assignedBefore time.Time) ([]*order.Order, error)

	// GetAllAwaitingRider returns up to limit paid home deliveries without a
	// rider, oldest first.
	GetAllAwaitingRider(ctx context.Context, limit int) ([]*order.Order, error)

	// CountActiveByRiders returns, per rider, the number of out_for_delivery
	// orders created at or after since. Riders without such orders are absent.
	CountActiveByRiders(ctx context.Context, riderIDs []kernel.UUID, since time.Time) (map[kernel.UUID]int, error)
}
