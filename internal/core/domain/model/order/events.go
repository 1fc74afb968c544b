package order

import (
	"encoding/json"
	"time"

	"storefront/internal/core/domain/model/kernel"
)

const (
	StatusChangedEventName = "order.status_changed"
	RiderAssignedEventName = "order.rider_assigned"
)

// StatusChangedEvent is raised on every status change, including the
// out_for_delivery -> paid fallback when a rejected order finds no rider.
type StatusChangedEvent struct {
	id         kernel.UUID
	orderID    kernel.UUID
	from       Status
	to         Status
	riderID    *kernel.UUID
	occurredAt time.Time
}

func newStatusChangedEvent(o *Order, from Status, at time.Time) StatusChangedEvent {
	return StatusChangedEvent{
		id:         kernel.NewUUID(),
		orderID:    o.id,
		from:       from,
		to:         o.status,
		riderID:    o.delivery.riderID,
		occurredAt: at,
	}
}

func (e StatusChangedEvent) EventID() kernel.UUID     { return e.id }
func (e StatusChangedEvent) EventName() string        { return StatusChangedEventName }
func (e StatusChangedEvent) AggregateID() kernel.UUID { return e.orderID }
func (e StatusChangedEvent) OccurredAt() time.Time    { return e.occurredAt }
func (e StatusChangedEvent) From() Status             { return e.from }
func (e StatusChangedEvent) To() Status               { return e.to }

func (e StatusChangedEvent) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID         string    `json:"id"`
		Name       string    `json:"name"`
		OrderID    string    `json:"orderId"`
		From       string    `json:"from"`
		To         string    `json:"to"`
		RiderID    *string   `json:"riderId,omitempty"`
		OccurredAt time.Time `json:"occurredAt"`
	}{
		ID:         e.id.String(),
		Name:       e.EventName(),
		OrderID:    e.orderID.String(),
		From:       e.from.String(),
		To:         e.to.String(),
		RiderID:    idString(e.riderID),
		OccurredAt: e.occurredAt,
	})
}

// RiderAssignedEvent is raised when a rider takes over a delivery, either
// first dispatch (previous is nil) or a reassignment.
type RiderAssignedEvent struct {
	id         kernel.UUID
	orderID    kernel.UUID
	riderID    kernel.UUID
	previous   *kernel.UUID
	occurredAt time.Time
}

func (e RiderAssignedEvent) EventID() kernel.UUID     { return e.id }
func (e RiderAssignedEvent) EventName() string        { return RiderAssignedEventName }
func (e RiderAssignedEvent) AggregateID() kernel.UUID { return e.orderID }
func (e RiderAssignedEvent) OccurredAt() time.Time    { return e.occurredAt }
func (e RiderAssignedEvent) RiderID() kernel.UUID     { return e.riderID }
func (e RiderAssignedEvent) PreviousRiderID() *kernel.UUID {
	return e.previous
}

func (e RiderAssignedEvent) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID              string    `json:"id"`
		Name            string    `json:"name"`
		OrderID         string    `json:"orderId"`
		RiderID         string    `json:"riderId"`
		PreviousRiderID *string   `json:"previousRiderId,omitempty"`
		OccurredAt      time.Time `json:"occurredAt"`
	}{
		ID:              e.id.String(),
		Name:            e.EventName(),
		OrderID:         e.orderID.String(),
		RiderID:         e.riderID.String(),
		PreviousRiderID: idString(e.previous),
		OccurredAt:      e.occurredAt,
	})
}

func idString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
