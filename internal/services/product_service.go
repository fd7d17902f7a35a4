package services

import (
	"time"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

// ProductService handles business logic related to the product catalog.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// AddProduct assigns the next sequential id and stores the product. Ids are
// max(existing)+1 starting at 1, so they keep growing past deletions. The
// assignment scans all products on every insert, acceptable at this scale,
// and is not atomic with concurrent inserts.
func (s *ProductService) AddProduct(product *models.Product) error {
	products, err := s.repo.GetAll()
	if err != nil {
		return err
	}

	maxID := 0
	for _, p := range products {
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	product.ID = maxID + 1
	product.Available = true
	product.Date = time.Now()

	return s.repo.Create(product)
}

// RemoveProduct deletes a product by id. Unknown ids report success.
func (s *ProductService) RemoveProduct(id int) error {
	return s.repo.Delete(id)
}

// AllProducts retrieves the full catalog in insertion order.
func (s *ProductService) AllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// NewCollections returns the last 8 products by insertion order.
func (s *ProductService) NewCollections() ([]models.Product, error) {
	products, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	if len(products) > 8 {
		products = products[len(products)-8:]
	}
	return products, nil
}

// PopularInCategory returns the first 4 products of a category.
func (s *ProductService) PopularInCategory(category string) ([]models.Product, error) {
	return s.repo.GetByCategory(category, 4)
}
