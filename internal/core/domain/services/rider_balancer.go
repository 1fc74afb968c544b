package services

import (
	"errors"
	"sort"

	"storefront/internal/core/domain/model/rider"
)

// ErrRiderNotFound is returned when no candidate can take a delivery.
var ErrRiderNotFound = errors.New("rider not found")

// Candidate pairs a rider with its load: the number of its out_for_delivery
// orders created since the start of the current day.
type Candidate struct {
	Rider *rider.Rider
	Load  int
}

// RiderBalancer orders dispatch candidates so the least busy rider is tried
// first.
//
// Business rules:
//   - unavailable or invalid riders are skipped
//   - lower load wins
//   - equal loads keep the input order, which the repository makes
//     deterministic (longest idle first)
//
// The balancer does not lock anybody. The caller walks the ranking and takes
// the first rider whose conditional lock succeeds.
type RiderBalancer struct{}

func NewRiderBalancer() RiderBalancer {
	return RiderBalancer{}
}

// Rank returns candidate riders, least loaded first.
func (RiderBalancer) Rank(candidates []Candidate) ([]*rider.Rider, error) {
	eligible := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.Rider.Validate() != nil || !c.Rider.IsAvailable() {
			continue
		}
		eligible = append(eligible, c)
	}

	if len(eligible) == 0 {
		return nil, ErrRiderNotFound
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		return eligible[i].Load < eligible[j].Load
	})

	ranked := make([]*rider.Rider, len(eligible))
	for i, c := range eligible {
		ranked[i] = c.Rider
	}
	return ranked, nil
}
