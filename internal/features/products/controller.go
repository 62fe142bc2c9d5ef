package products

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProductController struct {
	productService *ProductService
}

func (c *ProductController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/products", c.CreateProduct)
	router.GET("/products", c.ListProducts)
	router.GET("/products/:productId", c.GetProduct)
	router.PUT("/products/:productId", c.UpdateProduct)
	router.PATCH("/products/:productId/stock", c.AdjustStock)
	router.GET("/categories", c.ListCategories)
	router.GET("/search", c.SearchProducts)
}

// CreateProduct
// @Summary Create a product
// @Tags products
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body CreateProductRequestDTO true "Product data"
// @Success 200 {object} Product
// @Failure 400 {object} map[string]string
// @Router /products [post]
func (c *ProductController) CreateProduct(ctx *gin.Context) {
	var request CreateProductRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	product, err := c.productService.CreateProduct(&request)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}

	ctx.JSON(http.StatusOK, product)
}

// ListProducts
// @Summary List products
// @Tags products
// @Produce json
// @Security ApiKeyAuth
// @Param limit query int false "Page size (default 10, cap 100)"
// @Param offset query int false "Page offset"
// @Param category query string false "Filter by category"
// @Success 200 {object} ListProductsResponseDTO
// @Router /products [get]
func (c *ProductController) ListProducts(ctx *gin.Context) {
	var request ListProductsRequestDTO
	if err := ctx.ShouldBindQuery(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	response, err := c.productService.ListProducts(&request)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list products"})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetProduct
// @Summary Get product details
// @Tags products
// @Produce json
// @Security ApiKeyAuth
// @Param productId path string true "Product ID"
// @Success 200 {object} Product
// @Failure 404 {object} map[string]string
// @Router /products/{productId} [get]
func (c *ProductController) GetProduct(ctx *gin.Context) {
	productID, err := uuid.Parse(ctx.Param("productId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	product, err := c.productService.GetProduct(productID)
	if err != nil {
		if errors.Is(err, ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get product"})
		return
	}

	ctx.JSON(http.StatusOK, product)
}

// UpdateProduct
// @Summary Update a product
// @Tags products
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param productId path string true "Product ID"
// @Param request body UpdateProductRequestDTO true "Fields to update"
// @Success 200 {object} Product
// @Failure 404 {object} map[string]string
// @Router /products/{productId} [put]
func (c *ProductController) UpdateProduct(ctx *gin.Context) {
	productID, err := uuid.Parse(ctx.Param("productId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	var request UpdateProductRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	product, err := c.productService.UpdateProduct(productID, &request)
	if err != nil {
		if errors.Is(err, ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}

	ctx.JSON(http.StatusOK, product)
}

// AdjustStock
// @Summary Adjust product stock
// @Description Applies a positive or negative delta; stock never goes below zero
// @Tags products
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param productId path string true "Product ID"
// @Param request body AdjustStockRequestDTO true "Stock delta"
// @Success 200 {object} AdjustStockResponseDTO
// @Failure 404 {object} map[string]string
// @Router /products/{productId}/stock [patch]
func (c *ProductController) AdjustStock(ctx *gin.Context) {
	productID, err := uuid.Parse(ctx.Param("productId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	var request AdjustStockRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	product, err := c.productService.AdjustStock(productID, *request.Quantity)
	if err != nil {
		if errors.Is(err, ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to adjust stock"})
		return
	}

	ctx.JSON(http.StatusOK, AdjustStockResponseDTO{
		Message:  "Stock updated successfully",
		NewStock: product.Stock,
	})
}

// ListCategories
// @Summary List distinct product categories
// @Tags products
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} ListCategoriesResponseDTO
// @Router /categories [get]
func (c *ProductController) ListCategories(ctx *gin.Context) {
	response, err := c.productService.ListCategories()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list categories"})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// SearchProducts
// @Summary Search products by name or description
// @Tags products
// @Produce json
// @Security ApiKeyAuth
// @Param query query string true "Search term"
// @Success 200 {array} Product
// @Router /search [get]
func (c *ProductController) SearchProducts(ctx *gin.Context) {
	query := ctx.Query("query")
	if query == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Missing search query"})
		return
	}

	productList, err := c.productService.SearchProducts(query)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search products"})
		return
	}

	ctx.JSON(http.StatusOK, productList)
}
