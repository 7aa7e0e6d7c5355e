package dispatch

import (
	"context"

	"github.com/google/uuid"
	"github.com/sewaroda/sewaroda/internal/pkg/models"
)

// DispatchUC defines the interface for dispatch business logic
type DispatchUC interface {
	// NotifyNearbyDrivers runs one dispatch for a committed booking: it
	// matches online drivers against the pickup point, persists their
	// notifications and pushes the real-time alert to the booking group.
	NotifyNearbyDrivers(ctx context.Context, event models.BookingEvent) (*models.DispatchResult, error)

	// AcceptBooking attaches a driver from the booking group to the job
	AcceptBooking(ctx context.Context, driverID string, req models.AcceptBookingRequest) (*models.DriverBooking, error)

	// UpdateDriverLocation refreshes the driver's presence entry
	UpdateDriverLocation(ctx context.Context, driverID string, location models.Location) error

	// ListNotifications returns a driver's notification log
	ListNotifications(ctx context.Context, driverID string) ([]models.Notification, error)

	// MarkNotificationRead marks one of the driver's notifications as read
	MarkNotificationRead(ctx context.Context, driverID string, notificationID uuid.UUID) error

	// MarkNotificationsRead marks a batch of the driver's notifications as
	// read and returns how many were updated
	MarkNotificationsRead(ctx context.Context, driverID string, notificationIDs []uuid.UUID) (int64, error)
}
