// Package ports defines the contracts between the core and its adapters:
// repositories, the unit of work and the event publisher.
package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/rider"
)

// RiderRepository persists riders. Availability is never written with a
// plain update: Lock and Release are conditional writes, so a caller that
// read available=true cannot assume it still holds.
type RiderRepository interface {
	// Add persists a newly provisioned rider.
	Add(ctx context.Context, aggregate *rider.Rider) error

	// Get returns errs.ObjectNotFoundError("rider", id) when missing.
	Get(ctx context.Context, id kernel.UUID) (*rider.Rider, error)

	// GetAllAvailable returns riders with available = true, longest idle first
	// (never-assigned riders lead). This order is the tie-break of dispatch.
	GetAllAvailable(ctx context.Context) ([]*rider.Rider, error)

	// Lock persists an aggregate already locked in memory by rider.Lock, only
	// if the stored row is still available. false means another dispatcher
	// won the race; it is not an error.
	Lock(ctx context.Context, aggregate *rider.Rider) (bool, error)

	// Release makes the rider available again. It reports whether the row
	// changed; releasing an available rider is a no-op.
	Release(ctx context.Context, id kernel.UUID) (bool, error)
}
