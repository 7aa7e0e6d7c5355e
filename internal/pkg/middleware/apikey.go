package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sewaroda/sewaroda/internal/pkg/config"
)

// APIKeyHeader carries the caller's key on service-to-service requests
const APIKeyHeader = "X-API-Key"

// APIKeyMiddleware validates internal service-to-service calls
type APIKeyMiddleware struct {
	keys map[string]string
}

// NewAPIKeyMiddleware loads the per-service API keys from the environment
func NewAPIKeyMiddleware() *APIKeyMiddleware {
	return &APIKeyMiddleware{
		keys: map[string]string{
			"booking-service": config.GetEnv("BOOKING_SERVICE_API_KEY", ""),
		},
	}
}

// ValidateAPIKey accepts requests carrying the key of any allowed service
func (m *APIKeyMiddleware) ValidateAPIKey(allowedServices ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "API key is required"})
			}

			for _, service := range allowedServices {
				key := m.keys[service]
				if key != "" && subtle.ConstantTimeCompare([]byte(apiKey), []byte(key)) == 1 {
					return next(c)
				}
			}

			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid API key"})
		}
	}
}
