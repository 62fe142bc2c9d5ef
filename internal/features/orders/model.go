package orders

import (
	"time"

	"github.com/google/uuid"

	"deskstore/internal/features/products"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

type Order struct {
	ID         uuid.UUID           `json:"id"         gorm:"column:id"`
	UserID     uuid.UUID           `json:"userId"     gorm:"column:user_id"`
	TotalPrice float64             `json:"totalPrice" gorm:"column:total_price"`
	Status     OrderStatus         `json:"status"     gorm:"column:status"`
	CreatedAt  time.Time           `json:"createdAt"  gorm:"column:created_at"`
	Products   []*products.Product `json:"products"   gorm:"many2many:order_products;joinForeignKey:order_id;joinReferences:product_id"`
}

func (Order) TableName() string {
	return "orders"
}
