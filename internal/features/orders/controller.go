package orders

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrderController struct {
	orderService *OrderService
}

func (c *OrderController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/orders", c.CreateOrder)
	router.GET("/orders/:orderId", c.GetOrder)
	router.GET("/users/:userId/orders", c.GetOrdersForUser)
}

// CreateOrder
// @Summary Create an order
// @Description Verifies the user and all products exist; the total price is computed server-side
// @Tags orders
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body CreateOrderRequestDTO true "Order data"
// @Success 200 {object} Order
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /orders [post]
func (c *OrderController) CreateOrder(ctx *gin.Context) {
	var request CreateOrderRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	order, err := c.orderService.CreateOrder(&request)
	if err != nil {
		switch {
		case errors.Is(err, ErrUserNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case errors.Is(err, ErrProductNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "One or more products not found"})
		case errors.Is(err, ErrInvalidStatus):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order status"})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		}
		return
	}

	ctx.JSON(http.StatusOK, order)
}

// GetOrder
// @Summary Get order details
// @Tags orders
// @Produce json
// @Security ApiKeyAuth
// @Param orderId path string true "Order ID"
// @Success 200 {object} Order
// @Failure 404 {object} map[string]string
// @Router /orders/{orderId} [get]
func (c *OrderController) GetOrder(ctx *gin.Context) {
	orderID, err := uuid.Parse(ctx.Param("orderId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	order, err := c.orderService.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get order"})
		return
	}

	ctx.JSON(http.StatusOK, order)
}

// GetOrdersForUser
// @Summary List a user's orders
// @Tags orders
// @Produce json
// @Security ApiKeyAuth
// @Param userId path string true "User ID"
// @Success 200 {object} ListOrdersResponseDTO
// @Failure 404 {object} map[string]string
// @Router /users/{userId}/orders [get]
func (c *OrderController) GetOrdersForUser(ctx *gin.Context) {
	userID, err := uuid.Parse(ctx.Param("userId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	orderList, err := c.orderService.GetOrdersForUser(userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list orders"})
		return
	}

	ctx.JSON(http.StatusOK, ListOrdersResponseDTO{Orders: orderList})
}
