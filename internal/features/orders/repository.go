package orders

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"deskstore/internal/storage"
)

type OrderRepository struct{}

// Create inserts the order and its join rows. The referenced products
// already exist and must not be upserted along the way.
func (r *OrderRepository) Create(order *Order) error {
	return storage.GetDb().Omit("Products.*").Create(order).Error
}

func (r *OrderRepository) GetByID(orderID uuid.UUID) (*Order, error) {
	var order Order

	err := storage.GetDb().
		Preload("Products").
		Where("id = ?", orderID).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &order, nil
}

func (r *OrderRepository) GetByUserID(userID uuid.UUID) ([]*Order, error) {
	var orderList []*Order

	err := storage.GetDb().
		Preload("Products").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orderList).Error
	if err != nil {
		return nil, err
	}

	return orderList, nil
}
