package repositories

import (
	"sort"
	"sync"

	"storefront/internal/models"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
type MockProductRepository struct {
	products map[int]models.Product
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[int]models.Product),
	}
}

// GetAll returns all products in ascending id order.
func (r *MockProductRepository) GetAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		productList = append(productList, p)
	}
	sort.Slice(productList, func(i, j int) bool {
		return productList[i].ID < productList[j].ID
	})
	return productList, nil
}

// GetByCategory returns up to limit products of a category, earliest first.
func (r *MockProductRepository) GetByCategory(category string, limit int) ([]models.Product, error) {
	all, err := r.GetAll()
	if err != nil {
		return nil, err
	}
	matched := make([]models.Product, 0, limit)
	for _, p := range all {
		if p.Category == category {
			matched = append(matched, p)
			if len(matched) == limit {
				break
			}
		}
	}
	return matched, nil
}

// Create adds a new product under the caller-assigned id.
func (r *MockProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.products[product.ID] = *product
	return nil
}

// Delete removes a product by its ID. Unknown ids are a no-op.
func (r *MockProductRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.products, id)
	return nil
}
