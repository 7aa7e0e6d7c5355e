package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sewaroda/sewaroda/internal/pkg/logger"
)

// LoggerMiddleware creates a middleware for request logging
func LoggerMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Request().URL.Path
			raw := c.Request().URL.RawQuery

			err := next(c)

			latency := time.Since(start)
			statusCode := c.Response().Status

			if raw != "" {
				path = path + "?" + raw
			}

			entry := zapLogger.Logger.With(
				logger.Int("status", statusCode),
				logger.Duration("latency", latency),
				logger.String("client_ip", c.RealIP()),
				logger.String("method", c.Request().Method),
				logger.String("path", path),
			)

			// Log with appropriate level based on status code
			if statusCode >= 500 {
				entry.Error("Server error")
			} else if statusCode >= 400 {
				entry.Warn("Client error")
			} else {
				entry.Info("Request processed")
			}

			return err
		}
	}
}
