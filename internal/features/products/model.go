package products

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	ID          uuid.UUID `json:"id"          gorm:"column:id"`
	Name        string    `json:"name"        gorm:"column:name"`
	Description string    `json:"description" gorm:"column:description"`
	Price       float64   `json:"price"       gorm:"column:price"`
	Stock       int       `json:"stock"       gorm:"column:stock"`
	Category    string    `json:"category"    gorm:"column:category"`
	CreatedAt   time.Time `json:"createdAt"   gorm:"column:created_at"`
}

func (Product) TableName() string {
	return "products"
}
