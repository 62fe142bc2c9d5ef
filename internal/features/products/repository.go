package products

import (
	"strings"

	"deskstore/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductRepository struct{}

func (r *ProductRepository) Create(product *Product) error {
	return storage.GetDb().Create(product).Error
}

func (r *ProductRepository) GetByID(productID uuid.UUID) (*Product, error) {
	var product Product

	if err := storage.GetDb().Where("id = ?", productID).First(&product).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &product, nil
}

func (r *ProductRepository) List(limit, offset int, category string) ([]*Product, error) {
	var productList = make([]*Product, 0)

	query := storage.GetDb().Model(&Product{})

	if category != "" {
		query = query.Where("category = ?", category)
	}

	err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&productList).Error

	return productList, err
}

func (r *ProductRepository) Update(product *Product) error {
	return storage.GetDb().Save(product).Error
}

// Search matches name or description, case-insensitively. lower() keeps
// the query portable between PostgreSQL and the SQLite test database.
func (r *ProductRepository) Search(query string) ([]*Product, error) {
	var productList = make([]*Product, 0)

	pattern := "%" + strings.ToLower(query) + "%"

	err := storage.GetDb().
		Where("lower(name) LIKE ? OR lower(description) LIKE ?", pattern, pattern).
		Order("created_at DESC").
		Find(&productList).Error

	return productList, err
}

func (r *ProductRepository) GetDistinctCategories() ([]string, error) {
	var categories = make([]string, 0)

	err := storage.GetDb().Model(&Product{}).
		Distinct("category").
		Order("category").
		Pluck("category", &categories).Error

	return categories, err
}

func (r *ProductRepository) GetByIDs(productIDs []uuid.UUID) ([]*Product, error) {
	var productList = make([]*Product, 0)

	err := storage.GetDb().
		Where("id IN ?", productIDs).
		Find(&productList).Error

	return productList, err
}
