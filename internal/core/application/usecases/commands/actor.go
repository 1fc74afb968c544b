package commands

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// ErrRoleNotPermitted is returned when the caller's role may not perform a
// status change at all (customers) or not this particular one (riders).
var ErrRoleNotPermitted = errors.New("role is not permitted to perform this action")

// ErrNotOrderOwner is returned when a customer acts on somebody else's order.
var ErrNotOrderOwner = errors.New("order belongs to another customer")

// Role is the authenticated caller's role, as carried in the access token.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
	RoleRider    Role = "rider"
)

func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleCustomer, RoleAdmin, RoleRider:
		return r, nil
	}
	return "", errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

// Actor is who asks for a status change.
type Actor struct {
	Role Role
	ID   kernel.UUID
}

func (a Actor) Validate() error {
	if _, err := ParseRole(string(a.Role)); err != nil {
		return err
	}
	return a.ID.Validate()
}
