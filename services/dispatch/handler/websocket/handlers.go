package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/sewaroda/sewaroda/internal/pkg/constants"
	"github.com/sewaroda/sewaroda/internal/pkg/logger"
	"github.com/sewaroda/sewaroda/internal/pkg/models"
	wspkg "github.com/sewaroda/sewaroda/internal/pkg/websocket"
	"github.com/sewaroda/sewaroda/services/dispatch"
)

// DriverHandler serves the driver WebSocket channel. Each connection is
// registered with the connection manager for the duration of the socket, so
// dispatch can find it when a booking lands nearby.
type DriverHandler struct {
	manager    *wspkg.Manager
	dispatchUC dispatch.DispatchUC
}

// NewDriverHandler creates a new driver WebSocket handler
func NewDriverHandler(manager *wspkg.Manager, dispatchUC dispatch.DispatchUC) *DriverHandler {
	return &DriverHandler{
		manager:    manager,
		dispatchUC: dispatchUC,
	}
}

// HandleDriverConnection upgrades and serves one driver connection
func (h *DriverHandler) HandleDriverConnection(c echo.Context) error {
	return h.manager.HandleConnection(c, h.serveClient)
}

// serveClient runs the read loop for an authenticated connection. The
// connection stays bound to the driver until the socket closes; unbinding
// also drops it from every booking group it joined.
func (h *DriverHandler) serveClient(client *models.WebSocketClient, ws *websocket.Conn) error {
	client.Conn = ws
	h.manager.AddClient(client)
	defer h.manager.RemoveClient(client.ConnID)

	logger.Info("Driver connected",
		logger.String("driver_id", client.DriverID),
		logger.String("conn_id", client.ConnID))

	for {
		var msg models.WSMessage
		if err := ws.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Warn("Driver connection closed unexpectedly",
					logger.String("driver_id", client.DriverID),
					logger.Err(err))
			}
			return nil
		}

		if err := h.routeMessage(client, msg); err != nil {
			logger.Warn("Error handling driver message",
				logger.String("driver_id", client.DriverID),
				logger.String("event", msg.Event),
				logger.Err(err))
		}
	}
}

// routeMessage dispatches one inbound client message by event name
func (h *DriverHandler) routeMessage(client *models.WebSocketClient, msg models.WSMessage) error {
	switch msg.Event {
	case constants.EventLocationUpdate:
		return h.handleLocationUpdate(client, msg.Data)
	case constants.EventBookingAccept:
		return h.handleBookingAccept(client, msg.Data)
	case constants.EventPing:
		return h.manager.SendMessage(client, constants.EventPong, nil)
	default:
		return h.manager.SendErrorMessage(client, constants.ErrorInvalidFormat,
			fmt.Sprintf("unknown event: %s", msg.Event))
	}
}

// handleLocationUpdate refreshes the driver's presence entry
func (h *DriverHandler) handleLocationUpdate(client *models.WebSocketClient, data json.RawMessage) error {
	var location models.Location
	if err := json.Unmarshal(data, &location); err != nil {
		return h.manager.SendErrorMessage(client, constants.ErrorInvalidFormat, "Invalid location update format")
	}
	if location.Latitude < -90 || location.Latitude > 90 ||
		location.Longitude < -180 || location.Longitude > 180 {
		return h.manager.SendErrorMessage(client, constants.ErrorInvalidLocation, "Coordinates out of range")
	}

	if err := h.dispatchUC.UpdateDriverLocation(context.Background(), client.DriverID, location); err != nil {
		return h.manager.SendErrorMessage(client, constants.ErrorInternalError, err.Error())
	}

	return nil
}

// handleBookingAccept attaches the driver to a dispatched booking. Losing
// the race to another driver is reported back on the same socket instead of
// tearing the connection down.
func (h *DriverHandler) handleBookingAccept(client *models.WebSocketClient, data json.RawMessage) error {
	var req models.AcceptBookingRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return h.manager.SendErrorMessage(client, constants.ErrorInvalidFormat, "Invalid booking accept format")
	}

	booking, err := h.dispatchUC.AcceptBooking(context.Background(), client.DriverID, req)
	if err != nil {
		if errors.Is(err, dispatch.ErrBookingTaken) {
			return h.manager.SendErrorMessage(client, constants.ErrorBookingTaken, "Booking already taken by another driver")
		}
		return h.manager.SendErrorMessage(client, constants.ErrorInternalError, err.Error())
	}

	return h.manager.SendMessage(client, constants.EventBookingAccept, booking)
}
