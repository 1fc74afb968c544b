package queries

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllRidersQueryHandler reads riders straight from the database.
type GetAllRidersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllRidersQueryHandler creates a read-only rider listing handler.
func NewGetAllRidersQueryHandler(db *gorm.DB) GetAllRidersQueryHandler {
	return GetAllRidersQueryHandler{db: db}
}

// Handle returns riders sorted by name. ActiveOrders counts every
// out_for_delivery order held, regardless of the day it was placed.
func (h GetAllRidersQueryHandler) Handle(ctx context.Context, query GetAllRidersQuery) ([]GetAllRidersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	riders := make([]GetAllRidersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			r.id,
			r.name,
			r.phone,
			r.available,
			r.last_assigned_at,
			COUNT(o.id) AS active_orders
		FROM riders r
		LEFT JOIN orders o
			ON o.delivery_rider_id = r.id AND o.status = ?
		GROUP BY r.id
		ORDER BY r.name, r.id
	`, int(order.OutForDelivery)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAllRidersQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Phone,
			&resp.Available,
			&resp.LastAssignedAt,
			&resp.ActiveOrders,
		)
		if err != nil {
			return nil, err
		}

		riderID, idErr := kernel.UUIDFromGoogle(id)
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = riderID
		riders = append(riders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return riders, nil
}
