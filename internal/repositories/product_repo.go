package repositories

import "storefront/internal/models"

// ProductRepository defines the interface for product data access.
// GetAll returns products in insertion (ascending id) order.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByCategory(category string, limit int) ([]models.Product, error)
	Create(product *models.Product) error
	Delete(id int) error
}
