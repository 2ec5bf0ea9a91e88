package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/afrilink/platform_be/internal/apperr"
	"github.com/afrilink/platform_be/internal/chat"
	"github.com/afrilink/platform_be/internal/logger"
	"github.com/afrilink/platform_be/internal/middleware"
	"github.com/afrilink/platform_be/internal/models"
	"github.com/afrilink/platform_be/internal/session"
	"github.com/afrilink/platform_be/internal/utils"
)

type AuthHandler struct {
	Sessions  *session.Registry
	Rooms     *chat.Rooms
	JWTSecret string
	Expires   int
}

type RegisterReq struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Role     string   `json:"role"` // client / freelancer
	Bio      string   `json:"bio"`
	Location string   `json:"location"`
	Skills   []string `json:"skills"`
}

type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type ProfileReq struct {
	Name     *string   `json:"name"`
	Bio      *string   `json:"bio"`
	Location *string   `json:"location"`
	Avatar   *string   `json:"avatar"`
	Skills   *[]string `json:"skills"`
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid body",
		})
	}

	errs := FieldErrors{}
	if strings.TrimSpace(req.Name) == "" {
		errs.Add("name", "Name is required")
	}
	if strings.TrimSpace(req.Email) == "" {
		errs.Add("email", "Email is required")
	}
	role, validRole := models.ParseRole(req.Role)
	if !validRole {
		errs.Add("role", "Role must be client or freelancer")
	}
	if len(errs) > 0 {
		return validationFail(c, errs)
	}

	s := h.Sessions.Open()
	u, err := s.Signup(c.UserContext(), session.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     role,
		Bio:      req.Bio,
		Location: req.Location,
		Skills:   req.Skills,
	})
	if err != nil {
		h.Sessions.Drop(s.ID)
		if errors.Is(err, session.ErrMissingFields) {
			return apperr.BadRequest(err.Error())
		}
		logger.Error().Err(err).Msg("signup failed")
		return apperr.Internal("Register failed")
	}

	if err := h.issueCookie(c, u, s.ID); err != nil {
		h.Sessions.Drop(s.ID)
		return err
	}
	h.dropCookieSession(c, s.ID)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Register successful",
		"data":    fiber.Map{"user": u},
	})
}

// Login answers failures with 200 and success=false. An existing session
// cookie is left alone when the credentials do not match and replaced on
// success.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"success": false,
			"message": "Invalid body",
		})
	}

	errs := FieldErrors{}
	if strings.TrimSpace(req.Email) == "" {
		errs.Add("email", "Email is required")
	}
	role, validRole := models.ParseRole(req.Role)
	if !validRole {
		errs.Add("role", "Role must be client or freelancer")
	}
	if len(errs) > 0 {
		return validationFail(c, errs)
	}

	s := h.Sessions.Open()
	u, err := s.Login(c.UserContext(), req.Email, req.Password, role)
	if err != nil {
		h.Sessions.Drop(s.ID)
		if errors.Is(err, session.ErrInvalidCredentials) {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"success": false,
				"message": session.InvalidCredentialsMessage,
			})
		}
		logger.Error().Err(err).Msg("login failed")
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"success": false,
			"message": "Login failed",
		})
	}

	if err := h.issueCookie(c, u, s.ID); err != nil {
		h.Sessions.Drop(s.ID)
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"success": false,
			"message": "Failed to create token",
		})
	}
	h.dropCookieSession(c, s.ID)

	logger.Info().Str("user_id", u.ID).Str("role", string(u.Role)).Msg("login")

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Login successful",
		"data":    fiber.Map{"user": u},
	})
}

// dropCookieSession closes the session named by the request's cookie, unless
// it is keep. Invalid or missing tokens are ignored.
func (h *AuthHandler) dropCookieSession(c *fiber.Ctx, keep string) {
	tok := c.Cookies(middleware.CookieName)
	if tok == "" {
		return
	}
	claims, err := utils.ParseJWT(h.JWTSecret, tok)
	if err != nil || claims.SessionID == "" || claims.SessionID == keep {
		return
	}
	h.Rooms.Close(claims.SessionID)
	h.Sessions.Drop(claims.SessionID)
}

// Logout is public: it clears the cookie whether or not the token is valid.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.dropCookieSession(c, "")

	c.Cookie(&fiber.Cookie{
		Name:     middleware.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   false,
		SameSite: "Lax",
	})

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Logout successful",
	})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	_, u, err := currentSession(c, h.Sessions)
	if err != nil {
		return err
	}
	return ok(c, u)
}

func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	s, _, err := currentSession(c, h.Sessions)
	if err != nil {
		return err
	}

	var req ProfileReq
	if err := c.BodyParser(&req); err != nil {
		return apperr.ErrInvalidRequest
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		errs := FieldErrors{}
		errs.Add("name", "Name cannot be empty")
		return validationFail(c, errs)
	}

	u, err := s.UpdateProfile(c.UserContext(), session.ProfileUpdate{
		Name:     req.Name,
		Bio:      req.Bio,
		Location: req.Location,
		Avatar:   req.Avatar,
		Skills:   req.Skills,
	})
	if err != nil {
		logger.Error().Err(err).Str("session_id", s.ID).Msg("update profile")
		return apperr.Internal("Failed to update profile")
	}
	if u == nil {
		return apperr.Unauthorized("Not signed in")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Profile updated",
		"data":    u,
	})
}

func (h *AuthHandler) issueCookie(c *fiber.Ctx, u *models.User, sessionID string) error {
	token, err := utils.SignJWT(h.JWTSecret, u.ID, string(u.Role), sessionID, h.Expires)
	if err != nil {
		return apperr.Internal("Failed to create token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.CookieName,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		Secure:   false,
		SameSite: "Lax",
		MaxAge:   h.Expires * 60,
	})
	return nil
}
