package commands

import (
	"context"
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/rider"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
)

// ErrNoRiderAvailable is the expected outcome of dispatch when every rider is
// busy. The order keeps waiting; it is not a failure of the operation.
var ErrNoRiderAvailable = errors.New("no rider available")

// RiderAssigner picks the least loaded available rider and locks it.
//
// Selection and locking are separate steps, but the lock is a conditional
// write (available = true -> false). A candidate whose lock fails was taken
// by a concurrent dispatcher, so the next candidate is tried. The function
// either returns a rider already locked in the caller's transaction or
// ErrNoRiderAvailable with no rider written.
type RiderAssigner struct {
	balancer services.RiderBalancer
}

// NewRiderAssigner creates an assigner ranking riders by daily load.
func NewRiderAssigner() RiderAssigner {
	return RiderAssigner{balancer: services.NewRiderBalancer()}
}

// Assign runs dispatch against the repositories of the caller's unit of work.
// Riders listed in exclude are never picked, so a reassignment goes to
// somebody else.
func (a RiderAssigner) Assign(
	ctx context.Context,
	riders ports.RiderRepository,
	orders ports.OrderRepository,
	now time.Time,
	exclude ...kernel.UUID,
) (*rider.Rider, error) {
	available, err := riders.GetAllAvailable(ctx)
	if err != nil {
		return nil, err
	}

	available = withoutRiders(available, exclude)
	if len(available) == 0 {
		return nil, ErrNoRiderAvailable
	}

	ids := make([]kernel.UUID, len(available))
	for i, r := range available {
		ids[i] = r.ID()
	}

	loads, err := orders.CountActiveByRiders(ctx, ids, kernel.StartOfDay(now))
	if err != nil {
		return nil, err
	}

	candidates := make([]services.Candidate, len(available))
	for i, r := range available {
		candidates[i] = services.Candidate{Rider: r, Load: loads[r.ID()]}
	}

	ranked, err := a.balancer.Rank(candidates)
	if errors.Is(err, services.ErrRiderNotFound) {
		return nil, ErrNoRiderAvailable
	}
	if err != nil {
		return nil, err
	}

	for _, candidate := range ranked {
		if err = candidate.Lock(now); err != nil {
			continue
		}

		locked, lockErr := riders.Lock(ctx, candidate)
		if lockErr != nil {
			return nil, lockErr
		}
		if locked {
			return candidate, nil
		}
	}

	return nil, ErrNoRiderAvailable
}

// DispatchIfAwaiting assigns a rider to a paid home delivery that has none.
// Finding nobody is not an error: the order stays paid and waits.
func (a RiderAssigner) DispatchIfAwaiting(
	ctx context.Context,
	riders ports.RiderRepository,
	orders ports.OrderRepository,
	target *order.Order,
	now time.Time,
) error {
	if !target.AwaitsRider() {
		return nil
	}

	assigned, err := a.Assign(ctx, riders, orders, now)
	if errors.Is(err, ErrNoRiderAvailable) {
		return nil
	}
	if err != nil {
		return err
	}
	return target.AssignRider(assigned.ID(), now)
}

func withoutRiders(riders []*rider.Rider, exclude []kernel.UUID) []*rider.Rider {
	if len(exclude) == 0 {
		return riders
	}

	kept := make([]*rider.Rider, 0, len(riders))
next:
	for _, r := range riders {
		for _, id := range exclude {
			if r.ID().IsEqual(id) {
				continue next
			}
		}
		kept = append(kept, r)
	}
	return kept
}
