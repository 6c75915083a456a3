package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"startupfuel.com/types"
)

func Auth(c *fiber.Ctx) error {
	return JWTMiddleware(c)
}

// RequireRole rejects requests whose token does not carry the given role.
func RequireRole(requiredRole string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok || role != requiredRole {
			return c.Status(fiber.StatusForbidden).JSON(types.Response{
				Success: false,
				Error:   "Unauthorized: Invalid role",
			})
		}

		return c.Next()
	}
}

// UserID extracts the authenticated user's id from the request context.
// MapClaims stores numbers as float64.
func UserID(c *fiber.Ctx) (uint, bool) {
	id, ok := c.Locals("user_id").(float64)
	if !ok {
		return 0, false
	}
	return uint(id), true
}
