package orders

import (
	"github.com/google/uuid"
)

type CreateOrderRequestDTO struct {
	UserID     uuid.UUID   `json:"userId" binding:"required"`
	ProductIDs []uuid.UUID `json:"productIds" binding:"required,min=1"`
	Status     OrderStatus `json:"status"`
}

type ListOrdersResponseDTO struct {
	Orders []*Order `json:"orders"`
}
