package order

import (
	"errors"
	"fmt"
)

var (
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrInvalidTransition is the sentinel behind InvalidTransitionError.
	ErrInvalidTransition   = errors.New("status transition is not allowed")
	ErrAlreadyPaid         = errors.New("order is already paid")
	ErrAlreadyAccepted     = errors.New("delivery is already accepted")
	ErrNotAssignedToCaller = errors.New("order is not assigned to this rider")
	ErrNotHomeDelivery     = errors.New("order is not a home delivery")
)

// InvalidTransitionError names the rejected edge of the status table.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}
