package commands

import (
	"errors"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrAssignPendingOrdersCommandIsNotConstructed = errors.New(
	"AssignPendingOrdersCommand must be created via NewAssignPendingOrdersCommand constructor",
)

const maxAssignBatch = 500

// AssignPendingOrdersCommand triggers dispatch for paid home deliveries that
// found no free rider when they were paid or rejected.
//
// Example:
//
//	cmd, _ := NewAssignPendingOrdersCommand(50)
//	assigned, err := handler.Handle(ctx, cmd)
type AssignPendingOrdersCommand struct {
	batchSize int
	guard     guard.ConstructorGuard
}

// NewAssignPendingOrdersCommand creates a dispatch retry for at most batchSize
// paid orders that are still waiting for a rider.
func NewAssignPendingOrdersCommand(batchSize int) (AssignPendingOrdersCommand, error) {
	if batchSize < 1 || batchSize > maxAssignBatch {
		return AssignPendingOrdersCommand{}, errs.NewValueIsOutOfRangeError("batch size", batchSize, 1, maxAssignBatch)
	}
	return AssignPendingOrdersCommand{batchSize: batchSize, guard: guard.NewConstructorGuard()}, nil
}

func (c AssignPendingOrdersCommand) Validate() error {
	return c.guard.Validate(ErrAssignPendingOrdersCommandIsNotConstructed)
}

// BatchSize is the maximum number of orders one run looks at.
func (c AssignPendingOrdersCommand) BatchSize() int {
	return c.batchSize
}
