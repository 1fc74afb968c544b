package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// DeliveryType distinguishes courier delivery from in-store pickup.
// Only home deliveries are dispatched to riders.
type DeliveryType int

const (
	UnknownDeliveryType DeliveryType = iota
	HomeDelivery
	Pickup
)

func getDeliveryTypeStrings() map[DeliveryType]string {
	return map[DeliveryType]string{
		HomeDelivery: "home",
		Pickup:       "pickup",
	}
}

// ParseDeliveryType converts the wire name of a delivery type.
func ParseDeliveryType(s string) (DeliveryType, error) {
	for t, name := range getDeliveryTypeStrings() {
		if name == s {
			return t, nil
		}
	}
	return UnknownDeliveryType, errs.NewValueIsInvalidErrorWithCause(
		"delivery type", fmt.Errorf("%q is not a valid delivery type", s))
}

func (t DeliveryType) Validate() error {
	if _, ok := getDeliveryTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("delivery type", fmt.Errorf("%d is not a valid delivery type", t))
	}
	return nil
}

func (t DeliveryType) String() string {
	if s, ok := getDeliveryTypeStrings()[t]; ok {
		return s
	}
	return "unknown"
}

// Delivery holds the fulfilment details of an order and its rider
// assignment. Accept and reassignment are modelled here, not as statuses.
//
// Invariants:
//   - address is set iff the type is HomeDelivery
//   - riderID set => assignedAt set
//   - acceptedAt set => riderID set
type Delivery struct {
	kind         DeliveryType
	address      string
	contactPhone string
	riderID      *kernel.UUID
	assignedAt   *time.Time
	acceptedAt   *time.Time
	completedAt  *time.Time
}

// NewDelivery builds an unassigned delivery.
func NewDelivery(kind DeliveryType, address, contactPhone string) (Delivery, error) {
	return RestoreDelivery(kind, address, contactPhone, nil, nil, nil, nil)
}

// RestoreDelivery rebuilds a persisted delivery and checks its invariants.
func RestoreDelivery(
	kind DeliveryType,
	address, contactPhone string,
	riderID *kernel.UUID,
	assignedAt, acceptedAt, completedAt *time.Time,
) (Delivery, error) {
	d := Delivery{
		kind:         kind,
		address:      strings.TrimSpace(address),
		contactPhone: strings.TrimSpace(contactPhone),
		riderID:      riderID,
		assignedAt:   assignedAt,
		acceptedAt:   acceptedAt,
		completedAt:  completedAt,
	}

	if err := errors.Join(kind.Validate(), d.validateAddress(), d.validateContactPhone(), d.validateAssignment()); err != nil {
		return Delivery{}, err
	}

	return d, nil
}

func (d Delivery) validateAddress() error {
	switch {
	case d.kind == HomeDelivery && d.address == "":
		return errs.NewValueIsRequiredErrorWithCause("address", errors.New("home delivery needs an address"))
	case d.kind == Pickup && d.address != "":
		return errs.NewValueIsInvalidErrorWithCause("address", errors.New("pickup orders carry no address"))
	}
	return nil
}

func (d Delivery) validateContactPhone() error {
	if d.contactPhone == "" {
		return errs.NewValueIsRequiredError("contact phone")
	}
	return nil
}

func (d Delivery) validateAssignment() error {
	if d.riderID != nil {
		if err := d.riderID.Validate(); err != nil {
			return err
		}
		if d.assignedAt == nil {
			return errs.NewValueIsInvalidErrorWithCause("delivery", errors.New("rider without assignment time"))
		}
	}
	if d.acceptedAt != nil && d.riderID == nil {
		return errs.NewValueIsInvalidErrorWithCause("delivery", errors.New("accepted without rider"))
	}
	return nil
}

// Type tells home delivery from store pickup.
func (d Delivery) Type() DeliveryType {
	return d.kind
}

// Address is empty for pickup.
func (d Delivery) Address() string {
	return d.address
}

func (d Delivery) ContactPhone() string {
	return d.contactPhone
}

// Rider returns the assigned rider, nil when unassigned.
func (d Delivery) Rider() *kernel.UUID {
	return d.riderID
}

// AssignedAt is when the current rider got the order; it starts the
// acceptance window.
func (d Delivery) AssignedAt() *time.Time {
	return d.assignedAt
}

// AcceptedAt is nil until the current rider accepts.
func (d Delivery) AcceptedAt() *time.Time {
	return d.acceptedAt
}

func (d Delivery) CompletedAt() *time.Time {
	return d.completedAt
}

// IsAssignedTo reports whether riderID currently holds the delivery.
func (d Delivery) IsAssignedTo(riderID kernel.UUID) bool {
	return d.riderID != nil && d.riderID.IsEqual(riderID)
}

// IsAccepted reports whether the current rider accepted the delivery.
func (d Delivery) IsAccepted() bool {
	return d.acceptedAt != nil
}

func (d *Delivery) assign(riderID kernel.UUID, at time.Time) {
	d.riderID = &riderID
	d.assignedAt = &at
	d.acceptedAt = nil
}

func (d *Delivery) unassign() {
	d.riderID = nil
	d.assignedAt = nil
	d.acceptedAt = nil
}
