// Package middleware contains the HTTP middleware of the delivery layer.
package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/MatheusHenriquePrates/rankfome-backend/internal/delivery/http/response"
	"github.com/MatheusHenriquePrates/rankfome-backend/internal/domain/service"
)

// Context keys set by the authentication middleware for handlers to read.
const (
	ContextKeyUserID   = "userID"
	ContextKeyUserRole = "userRole"
)

// AuthMiddleware validates bearer tokens and exposes the caller identity to
// the handlers.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the Authorization bearer token. The response for
// every failure mode is the same generic 401.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHENTICATED", "authentication required")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "UNAUTHENTICATED", "authentication required")
		}

		claims, err := m.tokenSvc.ResolveToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHENTICATED", "authentication required")
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyUserRole, claims.Role)

		return next(c)
	}
}
