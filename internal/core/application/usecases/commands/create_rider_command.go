package commands

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrCreateRiderCommandIsNotConstructed = errors.New(
	"CreateRiderCommand must be created via NewCreateRiderCommand constructor",
)

// CreateRiderCommand provisions a rider account.
type CreateRiderCommand struct {
	riderID kernel.UUID
	name    string
	phone   string

	guard guard.ConstructorGuard
}

// NewCreateRiderCommand validates the rider profile. Name and phone must not
// be blank.
func NewCreateRiderCommand(riderID kernel.UUID, name, phone string) (CreateRiderCommand, error) {
	var nameErr, phoneErr error
	if strings.TrimSpace(name) == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	if strings.TrimSpace(phone) == "" {
		phoneErr = errs.NewValueIsRequiredError("phone")
	}

	if err := errors.Join(validateRiderID(riderID), nameErr, phoneErr); err != nil {
		return CreateRiderCommand{}, err
	}

	return CreateRiderCommand{
		riderID: riderID,
		name:    name,
		phone:   phone,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c CreateRiderCommand) Validate() error {
	return c.guard.Validate(ErrCreateRiderCommandIsNotConstructed)
}

func (c CreateRiderCommand) RiderID() kernel.UUID { return c.riderID }
func (c CreateRiderCommand) Name() string         { return c.name }
func (c CreateRiderCommand) Phone() string        { return c.phone }
