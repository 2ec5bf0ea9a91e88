package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/afrilink/platform_be/internal/apperr"
	"github.com/afrilink/platform_be/internal/logger"
)

// ErrorHandler renders handler errors in the JSON envelope.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var appErr *apperr.AppError
	if errors.As(err, &appErr) {
		return c.Status(appErr.Code).JSON(fiber.Map{
			"success": false,
			"message": appErr.Message,
		})
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(fiber.Map{
			"success": false,
			"message": fe.Message,
		})
	}

	logger.Error().Err(err).Str("path", c.Path()).Msg("unhandled request error")
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"message": apperr.ErrInternalServer.Message,
	})
}
