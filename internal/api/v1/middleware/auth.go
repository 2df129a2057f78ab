package middleware

import (
	"crypto/subtle"
	"strings"

	fiber "github.com/gofiber/fiber/v2"
)

// BearerAuth returns a middleware that requires "Authorization: Bearer <token>".
// An empty token disables the check.
func BearerAuth(token string, skip ...string) fiber.Handler {
	skipped := make(map[string]bool, len(skip))
	for _, p := range skip {
		skipped[p] = true
	}

	return func(c *fiber.Ctx) error {
		if token == "" || skipped[c.Path()] {
			return c.Next()
		}

		got, ok := strings.CutPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Unauthorized",
			})
		}
		return c.Next()
	}
}
