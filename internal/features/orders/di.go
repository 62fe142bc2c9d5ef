package orders

import (
	"deskstore/internal/features/principals"
	"deskstore/internal/features/products"
	"deskstore/internal/util/logger"
)

var orderRepository = &OrderRepository{}

var orderService = &OrderService{
	orderRepository:  orderRepository,
	principalService: principals.GetPrincipalService(),
	productService:   products.GetProductService(),
	logger:           logger.GetLogger(),
}

var orderController = &OrderController{
	orderService: orderService,
}

func GetOrderService() *OrderService {
	return orderService
}

func GetOrderController() *OrderController {
	return orderController
}
