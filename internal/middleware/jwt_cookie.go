package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/afrilink/platform_be/internal/utils"
)

// CookieName holds the signed session token.
const CookieName = "jm_token"

func JWTFromCookie(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenStr := c.Cookies(CookieName)
		if tokenStr == "" {
			return fiber.ErrUnauthorized
		}

		claims, err := utils.ParseJWT(secret, tokenStr)
		if err != nil {
			return fiber.ErrUnauthorized
		}

		c.Locals("claims", claims)
		return c.Next()
	}
}
