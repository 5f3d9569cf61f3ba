package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// AdminLocalKey is the context locals key holding the authenticated admin's
// username.
const AdminLocalKey = "admin_username"

// TokenVerifier validates a session token and returns the username it was
// issued for. service.AuthService satisfies this.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// RequireAdmin guards back-office routes. It reads the session cookie,
// verifies the token, and stores the username in context locals. Missing or
// invalid tokens end the request with 401 via the global error handler.
func RequireAdmin(verifier TokenVerifier, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(cookieName)
		if token == "" {
			return fiber.ErrUnauthorized
		}

		username, err := verifier.Verify(token)
		if err != nil {
			return fiber.ErrUnauthorized
		}

		c.Locals(AdminLocalKey, username)
		return c.Next()
	}
}
