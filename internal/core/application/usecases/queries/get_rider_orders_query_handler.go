package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetRiderOrdersQueryHandler serves the rider's own work list: oldest
// assignment first, so the delivery that has waited longest is on top.
type GetRiderOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetRiderOrdersQueryHandler creates a read-only handler for a rider's orders.
func NewGetRiderOrdersQueryHandler(db *gorm.DB) GetRiderOrdersQueryHandler {
	return GetRiderOrdersQueryHandler{db: db}
}

func (h GetRiderOrdersQueryHandler) Handle(ctx context.Context, query GetRiderOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := "SELECT" + orderColumns + `
		FROM orders
		WHERE delivery_rider_id = ?`
	args := []any{query.RiderID().String()}

	if statuses := query.Statuses(); len(statuses) > 0 {
		sql += " AND status = ANY(?)"
		args = append(args, statusArray(statuses))
	}
	sql += " ORDER BY delivery_assigned_at, id"

	return selectOrders(ctx, h.db, sql, args...)
}
