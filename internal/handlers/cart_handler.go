package handlers

import (
	"errors"
	"log"

	"storefront/internal/middleware"
	"storefront/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for cart reads and mutations. Every
// route is gated by the session token middleware.
type CartHandler struct {
	cartService *services.CartService
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(cartService *services.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

// RegisterRoutes registers the cart routes, guarded by FetchUser.
func (h *CartHandler) RegisterRoutes(router fiber.Router, authService *services.AuthService) {
	guard := middleware.FetchUser(authService)
	router.Post("/addtocart", guard, h.HandleAddToCart)
	router.Post("/removefromcart", guard, h.HandleRemoveFromCart)
	router.Post("/getcart", guard, h.HandleGetCart)
}

// CartItemRequest represents the request body for cart mutations.
type CartItemRequest struct {
	ItemID int `json:"itemId"`
}

// HandleAddToCart increments the authenticated user's quantity for an item.
func (h *CartHandler) HandleAddToCart(c *fiber.Ctx) error {
	var req CartItemRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing addtocart request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"errors":  "Invalid request body",
		})
	}

	userID, _ := c.Locals("user_id").(string)
	if err := h.cartService.AddToCart(userID, req.ItemID); err != nil {
		return cartError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Added",
	})
}

// HandleRemoveFromCart decrements the authenticated user's quantity for an
// item, never below zero.
func (h *CartHandler) HandleRemoveFromCart(c *fiber.Ctx) error {
	var req CartItemRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing removefromcart request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"errors":  "Invalid request body",
		})
	}

	userID, _ := c.Locals("user_id").(string)
	if err := h.cartService.RemoveFromCart(userID, req.ItemID); err != nil {
		return cartError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Removed",
	})
}

// HandleGetCart returns the authenticated user's full cart mapping.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	cart, err := h.cartService.GetCart(userID)
	if err != nil {
		return cartError(c, err)
	}
	return c.JSON(cart)
}

// cartError maps cart service errors onto the response shapes clients expect.
func cartError(c *fiber.Ctx, err error) error {
	if errors.Is(err, services.ErrItemOutOfRange) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"errors":  "Item id out of range",
		})
	}
	if errors.Is(err, services.ErrUserNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"errors":  "User not found",
		})
	}
	log.Printf("Cart operation failed: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
	})
}
