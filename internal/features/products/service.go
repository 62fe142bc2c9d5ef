package products

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var ErrProductNotFound = errors.New("product not found")

const (
	defaultListLimit = 10
	maxListLimit     = 100
)

type ProductService struct {
	productRepository *ProductRepository
}

func (s *ProductService) CreateProduct(request *CreateProductRequestDTO) (*Product, error) {
	product := &Product{
		ID:          uuid.New(),
		Name:        request.Name,
		Description: request.Description,
		Price:       request.Price,
		Stock:       request.Stock,
		Category:    request.Category,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.productRepository.Create(product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}

func (s *ProductService) GetProduct(productID uuid.UUID) (*Product, error) {
	product, err := s.productRepository.GetByID(productID)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if product == nil {
		return nil, ErrProductNotFound
	}

	return product, nil
}

func (s *ProductService) ListProducts(request *ListProductsRequestDTO) (*ListProductsResponseDTO, error) {
	limit := request.Limit
	if limit <= 0 || limit > maxListLimit {
		limit = defaultListLimit
	}

	offset := max(request.Offset, 0)

	productList, err := s.productRepository.List(limit, offset, request.Category)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return &ListProductsResponseDTO{
		Products: productList,
		Limit:    limit,
		Offset:   offset,
	}, nil
}

func (s *ProductService) UpdateProduct(productID uuid.UUID, request *UpdateProductRequestDTO) (*Product, error) {
	product, err := s.GetProduct(productID)
	if err != nil {
		return nil, err
	}

	if request.Name != nil {
		product.Name = *request.Name
	}
	if request.Description != nil {
		product.Description = *request.Description
	}
	if request.Price != nil {
		product.Price = *request.Price
	}
	if request.Stock != nil {
		product.Stock = *request.Stock
	}
	if request.Category != nil {
		product.Category = *request.Category
	}

	if err := s.productRepository.Update(product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return product, nil
}

// AdjustStock applies a delta to the stored stock level, clamping at zero.
func (s *ProductService) AdjustStock(productID uuid.UUID, quantity int) (*Product, error) {
	product, err := s.GetProduct(productID)
	if err != nil {
		return nil, err
	}

	product.Stock += quantity
	if product.Stock < 0 {
		product.Stock = 0
	}

	if err := s.productRepository.Update(product); err != nil {
		return nil, fmt.Errorf("failed to adjust stock: %w", err)
	}

	return product, nil
}

func (s *ProductService) SearchProducts(query string) ([]*Product, error) {
	productList, err := s.productRepository.Search(query)
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}

	return productList, nil
}

func (s *ProductService) ListCategories() (*ListCategoriesResponseDTO, error) {
	categories, err := s.productRepository.GetDistinctCategories()
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return &ListCategoriesResponseDTO{Categories: categories}, nil
}

func (s *ProductService) GetProductsByIDs(productIDs []uuid.UUID) ([]*Product, error) {
	return s.productRepository.GetByIDs(productIDs)
}
