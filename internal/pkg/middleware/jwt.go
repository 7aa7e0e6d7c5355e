package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	jwtpkg "github.com/sewaroda/sewaroda/internal/pkg/jwt"
	"github.com/sewaroda/sewaroda/internal/pkg/models"
)

// Context keys set by JWTAuthMiddleware
const (
	ContextDriverID = "driver_id"
	ContextRole     = "driver_role"
)

// JWTAuthMiddleware authenticates driver-facing routes with a bearer token.
// The driver id and role from the claims are stored on the echo context.
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Authorization header is required"})
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid authorization format"})
			}

			claims, err := jwtpkg.ValidateDriverToken(parts[1], config.Secret)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid token"})
			}

			c.Set(ContextDriverID, claims.UserID)
			c.Set(ContextRole, claims.Role)

			return next(c)
		}
	}
}
