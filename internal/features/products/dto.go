package products

type CreateProductRequestDTO struct {
	Name        string  `json:"name"        binding:"required,min=1,max=200"`
	Description string  `json:"description" binding:"max=2000"`
	Price       float64 `json:"price"       binding:"required,gt=0"`
	Stock       int     `json:"stock"       binding:"gte=0"`
	Category    string  `json:"category"    binding:"required,min=1,max=100"`
}

type UpdateProductRequestDTO struct {
	Name        *string  `json:"name,omitempty"        binding:"omitempty,min=1,max=200"`
	Description *string  `json:"description,omitempty" binding:"omitempty,max=2000"`
	Price       *float64 `json:"price,omitempty"       binding:"omitempty,gt=0"`
	Stock       *int     `json:"stock,omitempty"       binding:"omitempty,gte=0"`
	Category    *string  `json:"category,omitempty"    binding:"omitempty,min=1,max=100"`
}

type AdjustStockRequestDTO struct {
	// delta, may be negative; resulting stock is clamped at zero
	Quantity *int `json:"quantity" binding:"required"`
}

type AdjustStockResponseDTO struct {
	Message  string `json:"message"`
	NewStock int    `json:"newStock"`
}

type ListProductsRequestDTO struct {
	Limit    int    `form:"limit"`
	Offset   int    `form:"offset"`
	Category string `form:"category"`
}

type ListProductsResponseDTO struct {
	Products []*Product `json:"products"`
	Limit    int        `json:"limit"`
	Offset   int        `json:"offset"`
}

type ListCategoriesResponseDTO struct {
	Categories []string `json:"categories"`
}
