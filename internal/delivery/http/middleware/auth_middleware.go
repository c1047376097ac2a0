package middleware

import (
	"net/http"
	"strings"

	"harvest/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// ContextKeyUsername is the echo context key carrying the authenticated username.
const ContextKeyUsername = "username"

// AuthMiddleware provides middleware for session-token authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the Bearer session token on protected routes and
// stores the claimed username on the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			// Expired and invalid tokens both end the request here; the
			// domain error's message says which it was.
			return err
		}

		c.Set(ContextKeyUsername, claims.Username)

		return next(c)
	}
}
