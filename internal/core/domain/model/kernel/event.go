package kernel

import "time"

// DomainEvent is raised by an aggregate and published after the transaction
// that produced it commits.
type DomainEvent interface {
	EventID() UUID
	EventName() string
	AggregateID() UUID
	OccurredAt() time.Time
}
