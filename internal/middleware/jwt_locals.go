package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/afrilink/platform_be/internal/utils"
)

func claimsFrom(c *fiber.Ctx) (*utils.Claims, bool) {
	claims, ok := c.Locals("claims").(*utils.Claims)
	return claims, ok && claims != nil
}

// AttachJWTLocals copies the token claims to userId, role and sessionId.
func AttachJWTLocals() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := claimsFrom(c)
		if !ok {
			return fiber.ErrUnauthorized
		}

		uid := strings.TrimSpace(claims.UserID)
		role := strings.ToLower(strings.TrimSpace(claims.Role))
		sid := strings.TrimSpace(claims.SessionID)

		if uid == "" || sid == "" {
			return fiber.ErrUnauthorized
		}

		c.Locals("userId", uid)
		c.Locals("role", role)
		c.Locals("sessionId", sid)

		return c.Next()
	}
}
