package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/afrilink/platform_be/internal/apperr"
	"github.com/afrilink/platform_be/internal/models"
	"github.com/afrilink/platform_be/internal/session"
)

type FieldErrors map[string][]string

func (e FieldErrors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

func validationFail(c *fiber.Ctx, errs FieldErrors) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": false,
		"message": "Validation error",
		"errors":  errs,
	})
}

func ok(c *fiber.Ctx, data interface{}) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

// currentSession resolves the sessionId local set by AttachJWTLocals. A
// token whose session was dropped (logout, restart) is unauthorized.
func currentSession(c *fiber.Ctx, reg *session.Registry) (*session.Session, *models.User, error) {
	sid, _ := c.Locals("sessionId").(string)
	if sid == "" {
		return nil, nil, apperr.ErrUnauthorized
	}

	s, found := reg.Get(sid)
	if !found {
		return nil, nil, apperr.Unauthorized("Session expired")
	}

	u, signedIn := s.Current()
	if !signedIn {
		return nil, nil, apperr.Unauthorized("Not signed in")
	}
	return s, u, nil
}
