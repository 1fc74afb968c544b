package queries

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

// GetOrdersQueryHandler serves order listings without loading aggregates.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a read-only order listing handler.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle returns the matching orders with their items, newest first.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var where []string
	var args []any
	if owner := query.OwnerID(); owner != nil {
		where = append(where, "owner_id = ?")
		args = append(args, owner.String())
	}
	if statuses := query.Statuses(); len(statuses) > 0 {
		where = append(where, "status = ANY(?)")
		args = append(args, statusArray(statuses))
	}

	sql := "SELECT" + orderColumns + "\nFROM orders"
	if len(where) > 0 {
		sql += "\nWHERE " + strings.Join(where, " AND ")
	}
	sql += "\nORDER BY created_at DESC, id"

	return selectOrders(ctx, h.db, sql, args...)
}
