package handlers

import (
	"log"

	"storefront/internal/models"
	"storefront/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	productService *services.ProductService
	validate       *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		validate:       validator.New(),
	}
}

// RegisterRoutes registers the catalog routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/addproduct", h.HandleAddProduct)
	router.Post("/removeproduct", h.HandleRemoveProduct)
	router.Get("/allproducts", h.HandleAllProducts)
	router.Get("/newcollections", h.HandleNewCollections)
	router.Get("/popularinwomen", h.HandlePopularInWomen)
}

// HandleAddProduct stores a new product under the next sequential id.
func (h *ProductHandler) HandleAddProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		log.Printf("Error parsing addproduct request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"errors":  "Invalid request body",
		})
	}
	// The id is assigned server-side, never taken from the client.
	product.ID = 0

	if err := h.validate.Struct(product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"errors":  err.Error(),
		})
	}

	if err := h.productService.AddProduct(&product); err != nil {
		log.Printf("Error adding product %s: %v", product.Name, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"name":    product.Name,
	})
}

// RemoveProductRequest represents the request body for product removal.
type RemoveProductRequest struct {
	ID int `json:"id"`
}

// HandleRemoveProduct deletes a product by id; unknown ids still succeed.
func (h *ProductHandler) HandleRemoveProduct(c *fiber.Ctx) error {
	var req RemoveProductRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing removeproduct request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"errors":  "Invalid request body",
		})
	}

	if err := h.productService.RemoveProduct(req.ID); err != nil {
		log.Printf("Error removing product %d: %v", req.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
	})
}

// HandleAllProducts returns the full catalog.
func (h *ProductHandler) HandleAllProducts(c *fiber.Ctx) error {
	products, err := h.productService.AllProducts()
	if err != nil {
		log.Printf("Error getting all products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}
	return c.JSON(products)
}

// HandleNewCollections returns the last 8 products added.
func (h *ProductHandler) HandleNewCollections(c *fiber.Ctx) error {
	products, err := h.productService.NewCollections()
	if err != nil {
		log.Printf("Error getting new collections: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}
	return c.JSON(products)
}

// HandlePopularInWomen returns the first 4 products in the women category.
func (h *ProductHandler) HandlePopularInWomen(c *fiber.Ctx) error {
	products, err := h.productService.PopularInCategory("women")
	if err != nil {
		log.Printf("Error getting popular products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}
	return c.JSON(products)
}
