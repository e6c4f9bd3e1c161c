package middleware

import (
	"log"
	"strings"

	"gallery/internal/services"

	"github.com/gofiber/fiber/v2"
)

// UsernameKey is the Locals key under which AuthRequired binds the
// authenticated username for downstream handlers.
const UsernameKey = "username"

// AuthRequired is a Fiber middleware gating the catalog routes. A missing
// bearer token terminates the request with 401; a token that fails
// validation terminates it with 403. On success the decoded username is
// bound into the request context and the chain continues.
func AuthRequired(tokens *services.TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header is required",
			})
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer" && parts[1] != "") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header format must be 'Bearer <token>'",
			})
		}

		username, err := tokens.Validate(parts[1])
		if err != nil {
			log.Printf("Token validation failed: %v", err)
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Invalid or expired token",
			})
		}

		c.Locals(UsernameKey, username)
		return c.Next()
	}
}
