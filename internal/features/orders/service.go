package orders

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"deskstore/internal/features/principals"
	"deskstore/internal/features/products"
)

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrProductNotFound = errors.New("one or more products not found")
	ErrInvalidStatus   = errors.New("invalid order status")
)

type OrderService struct {
	orderRepository  *OrderRepository
	principalService *principals.PrincipalService
	productService   *products.ProductService
	logger           *slog.Logger
}

// CreateOrder validates the user and every referenced product, then
// stores the order with a server-computed total. The total is never
// taken from the client.
func (s *OrderService) CreateOrder(request *CreateOrderRequestDTO) (*Order, error) {
	principal, err := s.principalService.GetByID(request.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if principal == nil {
		return nil, ErrUserNotFound
	}

	status := request.Status
	if status == "" {
		status = OrderStatusPending
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	productList, err := s.productService.GetProductsByIDs(request.ProductIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to look up products: %w", err)
	}
	if len(productList) != len(uniqueIDs(request.ProductIDs)) {
		return nil, ErrProductNotFound
	}

	totalPrice := 0.0
	for _, product := range productList {
		totalPrice += product.Price
	}

	order := &Order{
		ID:         uuid.New(),
		UserID:     request.UserID,
		TotalPrice: totalPrice,
		Status:     status,
		CreatedAt:  time.Now().UTC(),
		Products:   productList,
	}

	if err := s.orderRepository.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Info("order created",
		slog.String("orderId", order.ID.String()),
		slog.String("userId", order.UserID.String()),
		slog.Int("products", len(productList)))

	return order, nil
}

func (s *OrderService) GetOrder(orderID uuid.UUID) (*Order, error) {
	order, err := s.orderRepository.GetByID(orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	return order, nil
}

func (s *OrderService) GetOrdersForUser(userID uuid.UUID) ([]*Order, error) {
	principal, err := s.principalService.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if principal == nil {
		return nil, ErrUserNotFound
	}

	orderList, err := s.orderRepository.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return orderList, nil
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	unique := make([]uuid.UUID, 0, len(ids))

	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	return unique
}
