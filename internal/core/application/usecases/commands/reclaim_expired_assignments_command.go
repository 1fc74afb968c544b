package commands

import (
	"errors"

	"storefront/internal/pkg/guard"
)

var ErrReclaimExpiredAssignmentsCommandIsNotConstructed = errors.New(
	"ReclaimExpiredAssignmentsCommand must be created via NewReclaimExpiredAssignmentsCommand constructor",
)

// ReclaimExpiredAssignmentsCommand triggers one sweep over assignments whose
// rider did not accept in time.
type ReclaimExpiredAssignmentsCommand struct {
	guard guard.ConstructorGuard
}

// NewReclaimExpiredAssignmentsCommand creates one SLA sweep.
func NewReclaimExpiredAssignmentsCommand() ReclaimExpiredAssignmentsCommand {
	return ReclaimExpiredAssignmentsCommand{guard: guard.NewConstructorGuard()}
}

func (c ReclaimExpiredAssignmentsCommand) Validate() error {
	return c.guard.Validate(ErrReclaimExpiredAssignmentsCommandIsNotConstructed)
}
