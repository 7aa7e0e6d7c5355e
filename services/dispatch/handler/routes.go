package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/sewaroda/sewaroda/internal/pkg/middleware"
	"github.com/sewaroda/sewaroda/internal/pkg/models"
	natspkg "github.com/sewaroda/sewaroda/internal/pkg/nats"
	wspkg "github.com/sewaroda/sewaroda/internal/pkg/websocket"
	"github.com/sewaroda/sewaroda/services/dispatch"
	httpHandler "github.com/sewaroda/sewaroda/services/dispatch/handler/http"
	natsHandler "github.com/sewaroda/sewaroda/services/dispatch/handler/nats"
	wsHandler "github.com/sewaroda/sewaroda/services/dispatch/handler/websocket"
)

// Handler combines all handlers for the dispatch service
type Handler struct {
	dispatchHTTP *httpHandler.DispatchHandler
	bookingNATS  *natsHandler.BookingHandler
	driverWS     *wsHandler.DriverHandler
	jwtConfig    models.JWTConfig
}

// NewHandler creates a new combined handler
func NewHandler(
	dispatchUC dispatch.DispatchUC,
	natsClient *natspkg.Client,
	wsManager *wspkg.Manager,
	jwtConfig models.JWTConfig,
) *Handler {
	return &Handler{
		dispatchHTTP: httpHandler.NewDispatchHandler(dispatchUC),
		bookingNATS:  natsHandler.NewBookingHandler(dispatchUC, natsClient),
		driverWS:     wsHandler.NewDriverHandler(wsManager, dispatchUC),
		jwtConfig:    jwtConfig,
	}
}

// RegisterRoutes registers all HTTP and WebSocket routes
func (h *Handler) RegisterRoutes(e *echo.Echo, apiKeyMiddleware *middleware.APIKeyMiddleware) {
	// Internal routes for service-to-service communication (API key required)
	internal := e.Group("/internal", apiKeyMiddleware.ValidateAPIKey("booking-service"))
	internal.POST("/dispatch", h.dispatchHTTP.TriggerDispatch)

	// Driver-facing routes (JWT required)
	drivers := e.Group("/drivers", middleware.JWTAuthMiddleware(h.jwtConfig))
	drivers.POST("/:driverID/bookings", h.dispatchHTTP.AcceptBooking)
	drivers.GET("/:driverID/notifications", h.dispatchHTTP.ListNotifications)
	drivers.POST("/:driverID/notifications/read", h.dispatchHTTP.MarkNotificationsRead)
	drivers.POST("/:driverID/notifications/:notificationID/read", h.dispatchHTTP.MarkNotificationRead)

	// WebSocket endpoint; the manager authenticates during the upgrade
	e.GET("/ws/drivers", h.driverWS.HandleDriverConnection)
}

// InitNATSConsumers initializes all NATS consumers
func (h *Handler) InitNATSConsumers() error {
	return h.bookingNATS.InitNATSConsumers()
}
