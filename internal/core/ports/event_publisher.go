package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
)

// EventPublisher delivers domain events to the outside world after the
// transaction that raised them has committed.
type EventPublisher interface {
	Publish(ctx context.Context, events ...kernel.DomainEvent) error
}
