// Package riderrepo maps rider aggregates to the riders table.
package riderrepo

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/rider"

	"github.com/google/uuid"
)

// RiderDTO is a row of the riders table. The partial order used by dispatch
// (available, last_assigned_at, id) is covered by idx_riders_dispatch.
type RiderDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;index:idx_riders_dispatch,priority:3"`
	Name           string     `gorm:"type:varchar(255);not null"`
	Phone          string     `gorm:"type:varchar(32);not null"`
	Available      bool       `gorm:"not null;index:idx_riders_dispatch,priority:1"`
	LastAssignedAt *time.Time `gorm:"index:idx_riders_dispatch,priority:2"`
}

func (RiderDTO) TableName() string {
	return "riders"
}

func fromDomain(aggregate *rider.Rider) RiderDTO {
	return RiderDTO{
		ID:             aggregate.ID().Bytes(),
		Name:           aggregate.Name(),
		Phone:          aggregate.Phone(),
		Available:      aggregate.IsAvailable(),
		LastAssignedAt: aggregate.LastAssignedAt(),
	}
}

func toDomain(dto RiderDTO) (*rider.Rider, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	return rider.RestoreRider(id, dto.Name, dto.Phone, dto.Available, dto.LastAssignedAt)
}
