package commands

import (
	"context"
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// errAssignmentResolved marks an order that no longer needs reclaiming once
// re-read inside its transaction.
var errAssignmentResolved = errors.New("assignment resolved before reclaim")

// ReassignmentOutcome reports what one sweep did to one order.
type ReassignmentOutcome struct {
	OrderID         kernel.UUID
	PreviousRiderID kernel.UUID
	// RiderID is the replacement; nil when the order was skipped or failed.
	RiderID *kernel.UUID
	// Skipped is set when the order was accepted, reassigned or changed by
	// someone else meanwhile, or when no replacement rider was free.
	Skipped bool
	Err     error
}

// ReclaimExpiredAssignmentsResult lists one outcome per expired order found.
type ReclaimExpiredAssignmentsResult struct {
	Outcomes []ReassignmentOutcome
}

// Reassigned counts orders handed to a replacement rider.
func (r ReclaimExpiredAssignmentsResult) Reassigned() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.RiderID != nil {
			n++
		}
	}
	return n
}

func (r ReclaimExpiredAssignmentsResult) Failed() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Err != nil {
			n++
		}
	}
	return n
}

// ReclaimExpiredAssignmentsCommandHandler takes deliveries away from riders
// who did not accept within window and gives them to another rider.
//
// Each order is handled in its own transaction, so one failure never blocks
// the rest of the batch. When no other rider is free the transaction rolls
// back and the original rider keeps the order until the next sweep.
type ReclaimExpiredAssignmentsCommandHandler struct {
	uowFactory UoWFactory
	assigner   RiderAssigner
	clock      kernel.Clock
	window     time.Duration
}

// NewReclaimExpiredAssignmentsCommandHandler creates the sweep handler.
// Assignments older than window without acceptance are reclaimed.
func NewReclaimExpiredAssignmentsCommandHandler(
	uowFactory UoWFactory,
	assigner RiderAssigner,
	clock kernel.Clock,
	window time.Duration,
) ReclaimExpiredAssignmentsCommandHandler {
	return ReclaimExpiredAssignmentsCommandHandler{
		uowFactory: uowFactory,
		assigner:   assigner,
		clock:      clock,
		window:     window,
	}
}

// Handle reclaims every expired assignment in its own unit of work, so one
// failing order does not block the rest. Running it again right away finds
// nothing to do.
func (h ReclaimExpiredAssignmentsCommandHandler) Handle(
	ctx context.Context,
	cmd ReclaimExpiredAssignmentsCommand,
) (ReclaimExpiredAssignmentsResult, error) {
	var result ReclaimExpiredAssignmentsResult
	if err := cmd.Validate(); err != nil {
		return result, err
	}

	deadline := h.clock.Now().Add(-h.window)

	expired, err := h.uowFactory.Create().OrderRepository().GetAllAwaitingAcceptance(ctx, deadline)
	if err != nil {
		return result, err
	}

	for _, candidate := range expired {
		if err = ctx.Err(); err != nil {
			return result, err
		}

		if candidate.Delivery().Rider() == nil {
			continue
		}
		previous := *candidate.Delivery().Rider()
		outcome := ReassignmentOutcome{OrderID: candidate.ID(), PreviousRiderID: previous}

		replacement, reclaimErr := h.reclaim(ctx, candidate.ID(), previous, deadline)
		switch {
		case errors.Is(reclaimErr, errAssignmentResolved),
			errors.Is(reclaimErr, ErrNoRiderAvailable),
			errors.Is(reclaimErr, errs.ErrVersionIsInvalid):
			outcome.Skipped = true
		case reclaimErr != nil:
			outcome.Err = reclaimErr
		default:
			outcome.RiderID = &replacement
		}

		result.Outcomes = append(result.Outcomes, outcome)
	}

	return result, nil
}

func (h ReclaimExpiredAssignmentsCommandHandler) reclaim(
	ctx context.Context,
	orderID, previous kernel.UUID,
	deadline time.Time,
) (kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	riderRepo := uow.RiderRepository()
	orderRepo := uow.OrderRepository()

	current, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return kernel.UUID{}, err
	}

	if !current.IsAcceptanceOverdue(deadline) || !current.IsAssignedTo(previous) {
		return kernel.UUID{}, errAssignmentResolved
	}

	if _, err = riderRepo.Release(ctx, previous); err != nil {
		return kernel.UUID{}, err
	}

	now := h.clock.Now()
	replacement, err := h.assigner.Assign(ctx, riderRepo, orderRepo, now, previous)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = current.ReassignRider(previous, replacement.ID(), now); err != nil {
		return kernel.UUID{}, err
	}

	if err = orderRepo.Update(ctx, current); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return replacement.ID(), nil
}
