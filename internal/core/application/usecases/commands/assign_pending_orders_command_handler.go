package commands

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// AssignPendingOrdersCommandHandler retries dispatch for orders waiting for a
// rider, oldest first, one transaction per order. It stops at the first order
// that finds no rider since the rest would not find one either.
type AssignPendingOrdersCommandHandler struct {
	uowFactory UoWFactory
	assigner   RiderAssigner
	clock      kernel.Clock
}

// NewAssignPendingOrdersCommandHandler creates the dispatch retry handler.
// Each order is assigned in its own unit of work.
func NewAssignPendingOrdersCommandHandler(uowFactory UoWFactory, assigner RiderAssigner, clock kernel.Clock) AssignPendingOrdersCommandHandler {
	return AssignPendingOrdersCommandHandler{
		uowFactory: uowFactory,
		assigner:   assigner,
		clock:      clock,
	}
}

// Handle returns how many orders got a rider. Orders changed concurrently
// are skipped.
func (h AssignPendingOrdersCommandHandler) Handle(ctx context.Context, cmd AssignPendingOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	waiting, err := h.uowFactory.Create().OrderRepository().GetAllAwaitingRider(ctx, cmd.BatchSize())
	if err != nil {
		return 0, err
	}

	assigned := 0
	for _, candidate := range waiting {
		if err = ctx.Err(); err != nil {
			return assigned, err
		}

		err = h.assignOne(ctx, candidate.ID())
		switch {
		case errors.Is(err, ErrNoRiderAvailable):
			return assigned, nil
		case errors.Is(err, errAssignmentResolved), errors.Is(err, errs.ErrVersionIsInvalid):
			continue
		case err != nil:
			return assigned, err
		}
		assigned++
	}

	return assigned, nil
}

func (h AssignPendingOrdersCommandHandler) assignOne(ctx context.Context, orderID kernel.UUID) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	riderRepo := uow.RiderRepository()
	orderRepo := uow.OrderRepository()

	waiting, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return err
	}
	if !waiting.AwaitsRider() {
		return errAssignmentResolved
	}

	now := h.clock.Now()
	rider, err := h.assigner.Assign(ctx, riderRepo, orderRepo, now)
	if err != nil {
		return err
	}

	if err = waiting.AssignRider(rider.ID(), now); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, waiting); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
