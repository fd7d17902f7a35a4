package services_test

import (
	"fmt"
	"testing"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"

	"github.com/stretchr/testify/assert"
)

func newProductService() *services.ProductService {
	return services.NewProductService(repositories.NewMockProductRepository())
}

func addProduct(t *testing.T, svc *services.ProductService, name, category string) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:     name,
		Category: category,
		NewPrice: 50.0,
		OldPrice: 80.0,
	}
	assert.NoError(t, svc.AddProduct(product))
	return product
}

func TestProductService_SequentialIDs(t *testing.T) {
	svc := newProductService()

	for i := 1; i <= 3; i++ {
		p := addProduct(t, svc, fmt.Sprintf("item-%d", i), "men")
		assert.Equal(t, i, p.ID)
		assert.True(t, p.Available)
		assert.False(t, p.Date.IsZero())
	}

	// Deleting a non-max id does not cause reuse: the next id exceeds the max
	assert.NoError(t, svc.RemoveProduct(2))
	p := addProduct(t, svc, "item-4", "men")
	assert.Equal(t, 4, p.ID)

	// Deleting the max id steps the sequence back, still exceeding current max
	assert.NoError(t, svc.RemoveProduct(4))
	p = addProduct(t, svc, "item-5", "men")
	assert.Equal(t, 4, p.ID)
}

func TestProductService_RemoveUnknownIDSucceeds(t *testing.T) {
	svc := newProductService()
	assert.NoError(t, svc.RemoveProduct(999))
}

func TestProductService_NewCollections(t *testing.T) {
	svc := newProductService()

	// Fewer than 8 products returns them all
	addProduct(t, svc, "early", "men")
	products, err := svc.NewCollections()
	assert.NoError(t, err)
	assert.Len(t, products, 1)

	for i := 2; i <= 12; i++ {
		addProduct(t, svc, fmt.Sprintf("item-%d", i), "men")
	}

	products, err = svc.NewCollections()
	assert.NoError(t, err)
	assert.Len(t, products, 8)
	// Last 8 by insertion order: ids 5..12
	assert.Equal(t, 5, products[0].ID)
	assert.Equal(t, 12, products[7].ID)
}

func TestProductService_PopularInCategory(t *testing.T) {
	svc := newProductService()

	for i := 1; i <= 6; i++ {
		addProduct(t, svc, fmt.Sprintf("women-%d", i), "women")
	}
	addProduct(t, svc, "men-1", "men")

	products, err := svc.PopularInCategory("women")
	assert.NoError(t, err)
	assert.Len(t, products, 4)
	for i, p := range products {
		assert.Equal(t, "women", p.Category)
		// First 4 in insertion order
		assert.Equal(t, i+1, p.ID)
	}

	products, err = svc.PopularInCategory("kids")
	assert.NoError(t, err)
	assert.Empty(t, products)
}

func TestProductService_AllProducts(t *testing.T) {
	svc := newProductService()

	addProduct(t, svc, "a", "men")
	addProduct(t, svc, "b", "women")

	products, err := svc.AllProducts()
	assert.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, "a", products[0].Name)
	assert.Equal(t, "b", products[1].Name)
}
