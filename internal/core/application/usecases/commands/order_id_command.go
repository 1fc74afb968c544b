package commands

import (
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

func validateRiderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("rider", err)
	}
	return nil
}

func validateOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order", err)
	}
	return nil
}
