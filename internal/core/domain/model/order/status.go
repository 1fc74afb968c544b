package order

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// Status is the top-level lifecycle state of an order.
//
//	pending ──> paid ──> out_for_delivery ──> delivered
//	   │          │              │
//	   │          ├──> refunded <┘
//	   └──────────┴──> cancelled
//
// delivered, cancelled and refunded are terminal. Rider acceptance and
// reassignment are not statuses; they live on Delivery.
type Status int

const (
	// Unknown (0) catches uninitialised values.
	Unknown Status = iota
	Pending
	Paid
	OutForDelivery
	Delivered
	Cancelled
	Refunded
)

// transitions is the complete policy. A pair missing here is not allowed.
//
//nolint:exhaustive // terminal and unknown statuses have no outgoing edges
var transitions = map[Status][]Status{
	Pending:        {Paid, Cancelled},
	Paid:           {OutForDelivery, Cancelled, Refunded},
	OutForDelivery: {Delivered, Refunded},
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		Pending:        "pending",
		Paid:           "paid",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Cancelled:      "cancelled",
		Refunded:       "refunded",
	}
}

// AllStatuses lists every valid status in lifecycle order.
func AllStatuses() []Status {
	return []Status{Pending, Paid, OutForDelivery, Delivered, Cancelled, Refunded}
}

// ParseStatus maps the wire name ("out_for_delivery") to a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// CanTransition reports whether the table allows current -> next. It has no
// side effects and is safe to call with invalid statuses.
func CanTransition(current, next Status) bool {
	for _, allowed := range transitions[current] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Validate rejects Unknown and out-of-range values, e.g. ones read from storage.
func (s Status) Validate() error {
	if s < Pending || s > Refunded {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsTerminal is true for delivered, cancelled and refunded.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled || s == Refunded
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// transitionTo returns next if the table allows it.
func (s Status) transitionTo(next Status) (Status, error) {
	if !CanTransition(s, next) {
		return s, &InvalidTransitionError{From: s, To: next}
	}
	return next, nil
}
