package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/onu-facilities/parts-tracker/internal/application/dto"
	"github.com/onu-facilities/parts-tracker/internal/domain/repository"
)

// Locals keys set by RequireAuth.
const (
	LocalSessionUser  = "session_user"
	LocalSessionToken = "session_token"
)

// SessionToken pulls the token from the session cookie or, for non-browser
// clients, a Bearer Authorization header.
func SessionToken(c *fiber.Ctx, cookieName string) string {
	if token := c.Cookies(cookieName); token != "" {
		return token
	}
	authHeader := c.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// RequireAuth resolves the session token and loads the session identity
// into c.Locals. Missing or unknown tokens get 401.
func RequireAuth(sessions repository.SessionRepository, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := SessionToken(c, cookieName)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "authentication required"})
		}
		session, err := sessions.Get(token)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		if session == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "authentication required"})
		}
		c.Locals(LocalSessionUser, &dto.SessionUserResponse{
			ID:       session.UserID,
			Username: session.Username,
			Name:     session.Name,
			Role:     session.Role,
		})
		c.Locals(LocalSessionToken, token)
		return c.Next()
	}
}

// CurrentUser returns the session identity loaded by RequireAuth, nil when
// the route is unprotected.
func CurrentUser(c *fiber.Ctx) *dto.SessionUserResponse {
	v := c.Locals(LocalSessionUser)
	if v == nil {
		return nil
	}
	u, _ := v.(*dto.SessionUserResponse)
	return u
}
