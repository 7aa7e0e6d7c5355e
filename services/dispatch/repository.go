package dispatch

import (
	"context"

	"github.com/google/uuid"
	"github.com/sewaroda/sewaroda/internal/pkg/models"
)

// PresenceRepo defines the interface for the driver presence cache
type PresenceRepo interface {
	// Put creates or overwrites a driver's presence entry and refreshes
	// its freshness window
	Put(ctx context.Context, driverID string, location models.Location) error

	// ListActive enumerates every driver with a live presence entry
	ListActive(ctx context.Context) ([]models.DriverPresence, error)

	// Get returns a driver's last reported location. The second return is
	// false when the driver never reported or the entry expired; absence
	// is a normal outcome, not an error.
	Get(ctx context.Context, driverID string) (models.Location, bool, error)
}

// NotificationRepo defines the interface for the durable notification log
type NotificationRepo interface {
	// Append persists one notification and returns its assigned id.
	// Appends from concurrent dispatches must not collide.
	Append(ctx context.Context, notification models.Notification) (uuid.UUID, error)

	// ListByDriver returns a driver's notifications, newest first
	ListByDriver(ctx context.Context, driverID string) ([]models.Notification, error)

	// MarkRead marks one of the driver's notifications as read
	MarkRead(ctx context.Context, driverID string, notificationID uuid.UUID) error

	// MarkReadBatch marks a set of the driver's notifications as read in
	// one statement and returns how many rows changed. Ids belonging to
	// other drivers are silently skipped.
	MarkReadBatch(ctx context.Context, driverID string, notificationIDs []uuid.UUID) (int64, error)
}

// DriverBookingRepo defines the interface for driver-to-booking attachments
type DriverBookingRepo interface {
	// Attach records that a driver took a booking. The first writer wins;
	// a second attach for the same booking returns ErrBookingTaken.
	Attach(ctx context.Context, booking models.DriverBooking) (*models.DriverBooking, error)
}
