package middleware

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"

	"requirement-pool/internal/config"
)

// AdminRequired gates the moderation endpoints behind a static credential
// pair. The requirement service itself stays identity-blind; this is a
// capability check, not an account system. With no ADMIN_PASSWORD
// configured the gate is open.
func AdminRequired(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.AdminPassword == "" {
			return c.Next()
		}

		username := c.Get("X-Admin-Username")
		password := c.Get("X-Admin-Password")

		userOK := subtle.ConstantTimeCompare([]byte(username), []byte(cfg.AdminUsername)) == 1
		passOK := subtle.ConstantTimeCompare([]byte(password), []byte(cfg.AdminPassword)) == 1
		if !userOK || !passOK {
			return Unauthorized("Admin credentials required")
		}

		return c.Next()
	}
}
