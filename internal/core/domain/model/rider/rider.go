package rider

import (
	"errors"
	"strings"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var (
	ErrNameIsRequired  = errs.NewValueIsRequiredError("name")
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	// ErrRiderIsNotConstructed is returned for a zero-value Rider.
	ErrRiderIsNotConstructed = errors.New("Rider must be created via NewRider constructor")
	// ErrRiderIsUnavailable is returned when locking a rider that already
	// holds a delivery.
	ErrRiderIsUnavailable = errors.New("rider is unavailable")
)

// Rider is a courier provisioned by an operator.
//
// Business rules:
//   - name and phone are required
//   - a new rider is available
//   - Lock flips available to false and stamps lastAssignedAt
//   - releasing is a repository write (RiderRepository.Release)
type Rider struct {
	id             kernel.UUID
	name           string
	phone          string
	available      bool
	lastAssignedAt *time.Time
	guard          guard.ConstructorGuard
}

// NewRider creates an available rider.
//
//	r, err := rider.NewRider(kernel.NewUUID(), "Ana", "+15550101")
func NewRider(id kernel.UUID, name, phone string) (*Rider, error) {
	return RestoreRider(id, name, phone, true, nil)
}

// RestoreRider rebuilds a persisted rider.
func RestoreRider(id kernel.UUID, name, phone string, available bool, lastAssignedAt *time.Time) (*Rider, error) {
	r := &Rider{
		available:      available,
		lastAssignedAt: lastAssignedAt,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
		r.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate reports whether the rider was built by a constructor.
func (r *Rider) Validate() error {
	if r == nil {
		return ErrRiderIsNotConstructed
	}
	return r.guard.Validate(ErrRiderIsNotConstructed)
}

func (r *Rider) ID() kernel.UUID {
	return r.id
}

func (r *Rider) Name() string {
	return r.name
}

func (r *Rider) Phone() string {
	return r.phone
}

// IsAvailable reports whether the rider can be given a new order.
func (r *Rider) IsAvailable() bool {
	return r.available
}

// LastAssignedAt is nil for a rider who never received a delivery.
func (r *Rider) LastAssignedAt() *time.Time {
	return r.lastAssignedAt
}

// Lock reserves the rider for a delivery.
func (r *Rider) Lock(now time.Time) error {
	if !r.available {
		return ErrRiderIsUnavailable
	}
	r.available = false
	r.lastAssignedAt = &now
	return nil
}

func (r *Rider) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Rider) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	r.name = name
	return nil
}

func (r *Rider) setPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ErrPhoneIsRequired
	}
	r.phone = phone
	return nil
}
