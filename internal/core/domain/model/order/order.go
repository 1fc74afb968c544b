package order

import (
	"errors"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// ErrRiderRequired is returned when a home delivery would leave for
// delivery without a rider; dispatch must go through AssignRider.
var ErrRiderRequired = errors.New("home delivery needs a rider to go out for delivery")

// Order is the aggregate root of the order lifecycle. Every status change and
// every rider (re)assignment goes through its methods, which check the status
// table and stamp the delivery timestamps.
//
// Order keeps a version that repositories use as the guard of a conditional
// update, so two writers that read the same version cannot both commit.
type Order struct {
	id          kernel.UUID
	ownerID     kernel.UUID
	items       []Item
	total       kernel.Money
	status      Status
	delivery    Delivery
	payment     Payment
	deliveredAt *time.Time
	createdAt   time.Time
	version     int

	domainEvents  []kernel.DomainEvent
	isConstructed bool
}

// NewOrder creates a pending order at checkout. The total is derived from the
// items.
//
// Example:
//
//	delivery, _ := order.NewDelivery(order.HomeDelivery, "12 Baker St", "+15550100")
//	o, err := order.NewOrder(kernel.NewUUID(), customerID, items, delivery, order.CashOnDelivery, now)
func NewOrder(
	id, ownerID kernel.UUID,
	items []Item,
	delivery Delivery,
	method PaymentMethod,
	createdAt time.Time,
) (*Order, error) {
	payment, paymentErr := NewPayment(method)

	o := &Order{
		status:        Pending,
		delivery:      delivery,
		payment:       payment,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOwnerID(ownerID),
		o.setItems(items),
		delivery.Type().Validate(),
		paymentErr,
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order from persistence without raising events.
func RestoreOrder(
	id, ownerID kernel.UUID,
	items []Item,
	status Status,
	delivery Delivery,
	payment Payment,
	deliveredAt *time.Time,
	createdAt time.Time,
	version int,
) (*Order, error) {
	o := &Order{
		status:        status,
		delivery:      delivery,
		payment:       payment,
		deliveredAt:   deliveredAt,
		createdAt:     createdAt,
		version:       version,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOwnerID(ownerID),
		o.setItems(items),
		status.Validate(),
		o.validateRiderForStatus(),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the order came from NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() kernel.UUID         { return o.id }
func (o *Order) OwnerID() kernel.UUID    { return o.ownerID }
func (o *Order) Total() kernel.Money     { return o.total }
func (o *Order) Status() Status          { return o.status }
func (o *Order) Delivery() Delivery      { return o.delivery }
func (o *Order) Payment() Payment        { return o.payment }
func (o *Order) DeliveredAt() *time.Time { return o.deliveredAt }
func (o *Order) CreatedAt() time.Time    { return o.createdAt }

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Version is the optimistic concurrency counter read from storage.
func (o *Order) Version() int {
	return o.version
}

// IncrementVersion is called by repositories after a successful guarded write.
func (o *Order) IncrementVersion() {
	o.version++
}

// IsAssignedTo reports whether riderID holds the delivery.
func (o *Order) IsAssignedTo(riderID kernel.UUID) bool {
	return o.delivery.IsAssignedTo(riderID)
}

// AwaitsRider is true for a paid home delivery nobody has been dispatched to.
func (o *Order) AwaitsRider() bool {
	return o.status == Paid && o.delivery.kind == HomeDelivery && o.delivery.riderID == nil
}

// IsAcceptanceOverdue is true when the rider was assigned at or before
// deadline and still has not accepted.
func (o *Order) IsAcceptanceOverdue(deadline time.Time) bool {
	return o.status == OutForDelivery &&
		o.delivery.riderID != nil &&
		o.delivery.acceptedAt == nil &&
		!o.delivery.assignedAt.After(deadline)
}

// MarkPaid records payment confirmation and moves pending -> paid.
// Rider dispatch is the caller's job, see AssignRider.
func (o *Order) MarkPaid(now time.Time) error {
	if o.payment.isPaid {
		return ErrAlreadyPaid
	}

	next, err := o.status.transitionTo(Paid)
	if err != nil {
		return err
	}

	o.payment.isPaid = true
	o.payment.paidAt = &now
	o.setStatus(next, now)
	return nil
}

// AssignRider dispatches a home delivery: paid -> out_for_delivery with the
// rider stamped. Replacing a rider goes through ReassignRider instead.
func (o *Order) AssignRider(riderID kernel.UUID, now time.Time) error {
	if err := riderID.Validate(); err != nil {
		return err
	}
	if o.delivery.kind != HomeDelivery {
		return ErrNotHomeDelivery
	}
	if o.delivery.riderID != nil {
		return errs.NewValueIsInvalidErrorWithCause("rider", fmt.Errorf("order already assigned to %s", o.delivery.riderID))
	}

	next := o.status
	if o.status != OutForDelivery {
		var err error
		if next, err = o.status.transitionTo(OutForDelivery); err != nil {
			return err
		}
	}

	o.delivery.assign(riderID, now)
	o.raise(RiderAssignedEvent{id: kernel.NewUUID(), orderID: o.id, riderID: riderID, occurredAt: now})
	o.setStatus(next, now)
	return nil
}

// ReassignRider hands an unresolved delivery from one rider to another,
// resetting the acceptance clock. Status stays out_for_delivery.
func (o *Order) ReassignRider(from, to kernel.UUID, now time.Time) error {
	if err := to.Validate(); err != nil {
		return err
	}
	if o.status != OutForDelivery {
		return &InvalidTransitionError{From: o.status, To: OutForDelivery}
	}
	if !o.delivery.IsAssignedTo(from) {
		return ErrNotAssignedToCaller
	}

	o.delivery.assign(to, now)
	o.raise(RiderAssignedEvent{id: kernel.NewUUID(), orderID: o.id, riderID: to, previous: &from, occurredAt: now})
	return nil
}

// ReturnToDispatch drops riderID and puts the order back to paid with no
// rider, the only backwards move in the lifecycle. It is used when a rejected
// delivery finds no replacement.
func (o *Order) ReturnToDispatch(riderID kernel.UUID, now time.Time) error {
	if o.status != OutForDelivery {
		return &InvalidTransitionError{From: o.status, To: Paid}
	}
	if !o.delivery.IsAssignedTo(riderID) {
		return ErrNotAssignedToCaller
	}

	o.delivery.unassign()
	o.setStatus(Paid, now)
	return nil
}

// Accept records that the assigned rider took the delivery.
func (o *Order) Accept(riderID kernel.UUID, now time.Time) error {
	if !o.delivery.IsAssignedTo(riderID) {
		return ErrNotAssignedToCaller
	}
	if o.delivery.acceptedAt != nil {
		return ErrAlreadyAccepted
	}
	if o.status != OutForDelivery {
		return &InvalidTransitionError{From: o.status, To: OutForDelivery}
	}

	o.delivery.acceptedAt = &now
	return nil
}

// ChangeStatus applies a table transition and its side effects. It returns
// the rider to release when the order reaches a terminal status; nil means
// there is nobody to release.
//
// Paid is routed through MarkPaid so the payment fields stay consistent, and
// a home delivery cannot leave without a rider (ErrRiderRequired).
func (o *Order) ChangeStatus(next Status, now time.Time) (*kernel.UUID, error) {
	if err := next.Validate(); err != nil {
		return nil, err
	}

	status, err := o.status.transitionTo(next)
	if err != nil {
		return nil, err
	}

	if status == Paid {
		return nil, o.MarkPaid(now)
	}
	if status == OutForDelivery && o.delivery.kind == HomeDelivery && o.delivery.riderID == nil {
		return nil, ErrRiderRequired
	}

	if status == Delivered {
		o.deliveredAt = &now
		o.delivery.completedAt = &now
	}

	o.setStatus(status, now)

	if status.IsTerminal() && o.delivery.riderID != nil {
		released := *o.delivery.riderID
		return &released, nil
	}
	return nil, nil
}

// DomainEvents returns events raised since the last ClearDomainEvents.
func (o *Order) DomainEvents() []kernel.DomainEvent {
	return o.domainEvents
}

func (o *Order) ClearDomainEvents() {
	o.domainEvents = nil
}

func (o *Order) setStatus(next Status, now time.Time) {
	if next == o.status {
		return
	}
	from := o.status
	o.status = next
	o.raise(newStatusChangedEvent(o, from, now))
}

func (o *Order) raise(event kernel.DomainEvent) {
	o.domainEvents = append(o.domainEvents, event)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("owner", err)
	}
	o.ownerID = ownerID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	total := kernel.ZeroMoney()
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	if total.Exceeds(kernel.MaxMoney()) {
		return errs.NewValueIsOutOfRangeError("total", total, kernel.ZeroMoney(), kernel.MaxMoney())
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	o.total = total
	return nil
}

// validateRiderForStatus rejects a rider reference on an order that was
// never dispatched.
func (o *Order) validateRiderForStatus() error {
	if o.delivery.riderID != nil && (o.status == Pending || o.status == Paid) {
		return errs.NewValueIsInvalidErrorWithCause(
			"delivery",
			fmt.Errorf("%s order cannot hold a rider", o.status),
		)
	}
	return nil
}
