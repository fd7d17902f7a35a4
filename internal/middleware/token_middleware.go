package middleware

import (
	"log"

	"storefront/internal/services"

	"github.com/gofiber/fiber/v2"
)

// FetchUser is a Fiber middleware that gates cart routes behind a valid
// session token carried in the auth-token header. On success the user id is
// exposed to downstream handlers via c.Locals("user_id").
func FetchUser(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Get("auth-token")
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"errors": "Token required",
			})
		}

		userID, err := authService.ValidateToken(token)
		if err != nil {
			log.Printf("Token validation failed: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"errors": "Invalid token",
			})
		}

		c.Locals("user_id", userID)
		return c.Next()
	}
}
