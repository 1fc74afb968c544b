// Package orderrepo maps order aggregates to the orders and order_items
// tables.
package orderrepo

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is a row of the orders table. Delivery and payment are embedded
// value objects; items live in their own table.
type OrderDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OwnerID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Status      int             `gorm:"not null;index"`
	Total       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Delivery    DeliveryDTO     `gorm:"embedded;embeddedPrefix:delivery_"`
	Payment     PaymentDTO      `gorm:"embedded;embeddedPrefix:payment_"`
	DeliveredAt *time.Time
	CreatedAt   time.Time      `gorm:"not null;index"`
	Version     int            `gorm:"not null;default:0"`
	Items       []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

type DeliveryDTO struct {
	Type         string     `gorm:"type:varchar(16);not null"`
	Address      string     `gorm:"type:text"`
	ContactPhone string     `gorm:"type:varchar(32);not null"`
	RiderID      *uuid.UUID `gorm:"type:uuid;index"`
	AssignedAt   *time.Time `gorm:"index"`
	AcceptedAt   *time.Time
	CompletedAt  *time.Time
}

type PaymentDTO struct {
	Method string `gorm:"type:varchar(32);not null"`
	IsPaid bool   `gorm:"not null"`
	PaidAt *time.Time
}

// OrderItemDTO is one order line. Position keeps the checkout order.
type OrderItemDTO struct {
	OrderID   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Position  int             `gorm:"primaryKey;autoIncrement:false"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null"`
	Name      string          `gorm:"type:varchar(255);not null"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for i, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:   orderID,
			Position:  i,
			ProductID: item.ProductID().Bytes(),
			Name:      item.Name(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice().Decimal(),
		})
	}

	delivery := aggregate.Delivery()
	payment := aggregate.Payment()

	return OrderDTO{
		ID:      orderID,
		OwnerID: aggregate.OwnerID().Bytes(),
		Status:  int(aggregate.Status()),
		Total:   aggregate.Total().Decimal(),
		Delivery: DeliveryDTO{
			Type:         delivery.Type().String(),
			Address:      delivery.Address(),
			ContactPhone: delivery.ContactPhone(),
			RiderID:      googleUUID(delivery.Rider()),
			AssignedAt:   delivery.AssignedAt(),
			AcceptedAt:   delivery.AcceptedAt(),
			CompletedAt:  delivery.CompletedAt(),
		},
		Payment: PaymentDTO{
			Method: payment.Method().String(),
			IsPaid: payment.IsPaid(),
			PaidAt: payment.PaidAt(),
		},
		DeliveredAt: aggregate.DeliveredAt(),
		CreatedAt:   aggregate.CreatedAt(),
		Version:     aggregate.Version(),
		Items:       items,
	}
}

// mutableColumns are the columns a guarded update rewrites. Identity, owner,
// items and total never change after checkout.
func mutableColumns(dto OrderDTO) map[string]any {
	return map[string]any{
		"status":                dto.Status,
		"delivery_rider_id":     dto.Delivery.RiderID,
		"delivery_assigned_at":  dto.Delivery.AssignedAt,
		"delivery_accepted_at":  dto.Delivery.AcceptedAt,
		"delivery_completed_at": dto.Delivery.CompletedAt,
		"payment_is_paid":       dto.Payment.IsPaid,
		"payment_paid_at":       dto.Payment.PaidAt,
		"delivered_at":          dto.DeliveredAt,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	ownerID, err := kernel.UUIDFromGoogle(dto.OwnerID)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	delivery, err := deliveryToDomain(dto.Delivery)
	if err != nil {
		return nil, err
	}

	method, err := order.ParsePaymentMethod(dto.Payment.Method)
	if err != nil {
		return nil, err
	}
	payment, err := order.RestorePayment(method, dto.Payment.IsPaid, dto.Payment.PaidAt)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		ownerID,
		items,
		order.Status(dto.Status),
		delivery,
		payment,
		dto.DeliveredAt,
		dto.CreatedAt,
		dto.Version,
	)
}

func deliveryToDomain(dto DeliveryDTO) (order.Delivery, error) {
	kind, err := order.ParseDeliveryType(dto.Type)
	if err != nil {
		return order.Delivery{}, err
	}

	var riderID *kernel.UUID
	if dto.RiderID != nil {
		id, idErr := kernel.UUIDFromGoogle(*dto.RiderID)
		if idErr != nil {
			return order.Delivery{}, idErr
		}
		riderID = &id
	}

	return order.RestoreDelivery(
		kind,
		dto.Address,
		dto.ContactPhone,
		riderID,
		dto.AssignedAt,
		dto.AcceptedAt,
		dto.CompletedAt,
	)
}

func itemToDomain(dto OrderItemDTO) (order.Item, error) {
	productID, err := kernel.UUIDFromGoogle(dto.ProductID)
	if err != nil {
		return order.Item{}, err
	}
	price, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return order.Item{}, err
	}
	return order.NewItem(productID, dto.Name, dto.Quantity, price)
}

func googleUUID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}
