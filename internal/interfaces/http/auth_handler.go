package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/onu-facilities/parts-tracker/internal/application/auth"
	"github.com/onu-facilities/parts-tracker/internal/application/dto"
	"github.com/onu-facilities/parts-tracker/internal/domain"
	"github.com/onu-facilities/parts-tracker/pkg/config"
)

// AuthHandler handles login, logout and current-user.
type AuthHandler struct {
	uc  *auth.UseCase
	cfg config.SessionConfig
}

// NewAuthHandler builds the handler.
func NewAuthHandler(uc *auth.UseCase, cfg config.SessionConfig) *AuthHandler {
	return &AuthHandler{uc: uc, cfg: cfg}
}

// Login verifies credentials, creates a session and sets the session cookie.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	token, user, err := h.uc.Login(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_CREDENTIALS", Message: "invalid credentials"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.CookieName,
		Value:    token,
		Expires:  time.Now().Add(time.Duration(h.cfg.TTLHours) * time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(user)
}

// Logout destroys the session and clears the cookie.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	token := SessionToken(c, h.cfg.CookieName)
	if err := h.uc.Logout(token); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(dto.SuccessResponse{Success: true})
}

// Current returns the logged-in identity, 401 when there is no session.
func (h *AuthHandler) Current(c *fiber.Ctx) error {
	token := SessionToken(c, h.cfg.CookieName)
	user, err := h.uc.CurrentUser(token)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "not authenticated"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(user)
}
