// Package queries contains the read side: raw SQL against the same tables
// the repositories write, returning flat read models instead of aggregates.
package queries

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderView is the read model shared by the order listings.
type OrderView struct {
	ID            kernel.UUID
	OwnerID       kernel.UUID
	Status        order.Status
	Total         kernel.Money
	DeliveryType  order.DeliveryType
	Address       string
	ContactPhone  string
	RiderID       *kernel.UUID
	AssignedAt    *time.Time
	AcceptedAt    *time.Time
	DeliveredAt   *time.Time
	PaymentMethod order.PaymentMethod
	IsPaid        bool
	PaidAt        *time.Time
	CreatedAt     time.Time
	Items         []ItemView
}

type ItemView struct {
	ProductID kernel.UUID
	Name      string
	Quantity  int
	UnitPrice kernel.Money
}

const orderColumns = `
	id,
	owner_id,
	status,
	total,
	delivery_type,
	delivery_address,
	delivery_contact_phone,
	delivery_rider_id,
	delivery_assigned_at,
	delivery_accepted_at,
	delivered_at,
	payment_method,
	payment_is_paid,
	payment_paid_at,
	created_at`

// statusArray turns a status filter into a postgres int array for ANY(?).
func statusArray(statuses []order.Status) any {
	values := make([]int64, 0, len(statuses))
	for _, s := range statuses {
		values = append(values, int64(s))
	}
	return pq.Array(values)
}

func validateStatuses(statuses []order.Status) error {
	for _, s := range statuses {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// selectOrders runs an order listing and attaches the items of every row.
func selectOrders(ctx context.Context, db *gorm.DB, sql string, args ...any) ([]OrderView, error) {
	rows, err := db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderView, 0)
	for rows.Next() {
		var view OrderView
		var id, ownerID uuid.UUID
		var riderID uuid.NullUUID
		var status int
		var total decimal.Decimal
		var deliveryType, paymentMethod string

		err = rows.Scan(
			&id,
			&ownerID,
			&status,
			&total,
			&deliveryType,
			&view.Address,
			&view.ContactPhone,
			&riderID,
			&view.AssignedAt,
			&view.AcceptedAt,
			&view.DeliveredAt,
			&paymentMethod,
			&view.IsPaid,
			&view.PaidAt,
			&view.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if view.ID, err = kernel.UUIDFromGoogle(id); err != nil {
			return nil, err
		}
		if view.OwnerID, err = kernel.UUIDFromGoogle(ownerID); err != nil {
			return nil, err
		}
		if riderID.Valid {
			rider, riderErr := kernel.UUIDFromGoogle(riderID.UUID)
			if riderErr != nil {
				return nil, riderErr
			}
			view.RiderID = &rider
		}
		view.Status = order.Status(status)
		if view.Total, err = kernel.NewMoney(total); err != nil {
			return nil, err
		}
		if view.DeliveryType, err = order.ParseDeliveryType(deliveryType); err != nil {
			return nil, err
		}
		if view.PaymentMethod, err = order.ParsePaymentMethod(paymentMethod); err != nil {
			return nil, err
		}

		orders = append(orders, view)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if err = attachItems(ctx, db, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// attachItems loads the lines of all listed orders in one round trip.
func attachItems(ctx context.Context, db *gorm.DB, orders []OrderView) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]string, 0, len(orders))
	byID := make(map[kernel.UUID]int, len(orders))
	for i, o := range orders {
		ids = append(ids, o.ID.String())
		byID[o.ID] = i
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			product_id,
			name,
			quantity,
			unit_price
		FROM order_items
		WHERE order_id = ANY(?)
		ORDER BY order_id, position
	`, pq.Array(ids)).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var orderID, productID uuid.UUID
		var item ItemView
		var unitPrice decimal.Decimal

		if err = rows.Scan(&orderID, &productID, &item.Name, &item.Quantity, &unitPrice); err != nil {
			return err
		}

		owner, ownerErr := kernel.UUIDFromGoogle(orderID)
		if ownerErr != nil {
			return ownerErr
		}
		if item.ProductID, err = kernel.UUIDFromGoogle(productID); err != nil {
			return err
		}
		if item.UnitPrice, err = kernel.NewMoney(unitPrice); err != nil {
			return err
		}

		if i, ok := byID[owner]; ok {
			orders[i].Items = append(orders[i].Items, item)
		}
	}
	return rows.Err()
}
