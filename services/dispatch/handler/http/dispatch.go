package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/sewaroda/sewaroda/internal/pkg/models"
	"github.com/sewaroda/sewaroda/services/dispatch"
)

// DispatchHandler handles HTTP requests for dispatch operations
type DispatchHandler struct {
	dispatchUC dispatch.DispatchUC
}

// NewDispatchHandler creates a new dispatch HTTP handler
func NewDispatchHandler(dispatchUC dispatch.DispatchUC) *DispatchHandler {
	return &DispatchHandler{
		dispatchUC: dispatchUC,
	}
}

// TriggerDispatch runs a dispatch for a committed booking. This is the
// service-to-service fallback for the booking.created consumer; the booking
// service calls it when it needs the dispatch result synchronously.
func (h *DispatchHandler) TriggerDispatch(c echo.Context) error {
	var event models.BookingEvent
	if err := c.Bind(&event); err != nil {
		return BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if event.BookingID <= 0 {
		return BadRequestResponse(c, "Booking ID is required")
	}

	result, err := h.dispatchUC.NotifyNearbyDrivers(c.Request().Context(), event)
	if err != nil {
		if errors.Is(err, dispatch.ErrPresenceUnavailable) || errors.Is(err, dispatch.ErrDistanceResolution) {
			return ErrorResponseHandler(c, http.StatusBadGateway, err.Error())
		}
		return ErrorResponseHandler(c, http.StatusInternalServerError, err.Error())
	}

	return SuccessResponseWithData(c, http.StatusOK, "Dispatch completed", result)
}

// AcceptBooking attaches the driver to a dispatched booking
func (h *DispatchHandler) AcceptBooking(c echo.Context) error {
	driverID := c.Param("driverID")
	if driverID == "" {
		return BadRequestResponse(c, "Driver ID is required")
	}

	var req models.AcceptBookingRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.BookingID <= 0 {
		return BadRequestResponse(c, "Booking ID is required")
	}
	if !req.ReturnAt.After(req.ReceiveAt) {
		return BadRequestResponse(c, "Return time must be after receive time")
	}

	booking, err := h.dispatchUC.AcceptBooking(c.Request().Context(), driverID, req)
	if err != nil {
		if errors.Is(err, dispatch.ErrBookingTaken) {
			return ErrorResponseHandler(c, http.StatusConflict, err.Error())
		}
		return ErrorResponseHandler(c, http.StatusInternalServerError, err.Error())
	}

	return SuccessResponseWithData(c, http.StatusCreated, "Booking accepted", booking)
}

// ListNotifications returns the driver's notification log, newest first
func (h *DispatchHandler) ListNotifications(c echo.Context) error {
	driverID := c.Param("driverID")
	if driverID == "" {
		return BadRequestResponse(c, "Driver ID is required")
	}

	notifications, err := h.dispatchUC.ListNotifications(c.Request().Context(), driverID)
	if err != nil {
		return ErrorResponseHandler(c, http.StatusInternalServerError, err.Error())
	}

	return SuccessResponseWithData(c, http.StatusOK, "Notifications retrieved", notifications)
}

// MarkNotificationRead marks one notification as read
func (h *DispatchHandler) MarkNotificationRead(c echo.Context) error {
	driverID := c.Param("driverID")
	if driverID == "" {
		return BadRequestResponse(c, "Driver ID is required")
	}

	notificationID, err := uuid.Parse(c.Param("notificationID"))
	if err != nil {
		return BadRequestResponse(c, "Invalid notification ID")
	}

	if err := h.dispatchUC.MarkNotificationRead(c.Request().Context(), driverID, notificationID); err != nil {
		if errors.Is(err, dispatch.ErrNotificationNotFound) {
			return ErrorResponseHandler(c, http.StatusNotFound, err.Error())
		}
		return ErrorResponseHandler(c, http.StatusInternalServerError, err.Error())
	}

	return SuccessResponseWithData(c, http.StatusOK, "Notification marked read", nil)
}

// MarkReadRequest is the payload for a batch read-state update
type MarkReadRequest struct {
	NotificationIDs []uuid.UUID `json:"notification_ids"`
}

// MarkReadResponse reports how many notifications were updated
type MarkReadResponse struct {
	Updated int64 `json:"updated"`
}

// MarkNotificationsRead marks a batch of the driver's notifications as read
func (h *DispatchHandler) MarkNotificationsRead(c echo.Context) error {
	driverID := c.Param("driverID")
	if driverID == "" {
		return BadRequestResponse(c, "Driver ID is required")
	}

	var req MarkReadRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if len(req.NotificationIDs) == 0 {
		return BadRequestResponse(c, "At least one notification ID is required")
	}

	updated, err := h.dispatchUC.MarkNotificationsRead(c.Request().Context(), driverID, req.NotificationIDs)
	if err != nil {
		return ErrorResponseHandler(c, http.StatusInternalServerError, err.Error())
	}

	return SuccessResponseWithData(c, http.StatusOK, "Notifications marked read", MarkReadResponse{Updated: updated})
}
