package models

import (
	"time"

	"github.com/google/uuid"
)

// Notification is a durable record that a driver was alerted about a booking.
// Dispatch only ever appends these; read-state changes happen through the
// notification listing endpoints.
type Notification struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Content   string    `json:"content" db:"content"`
	Read      bool      `json:"read" db:"read"`
	DriverID  string    `json:"driver_id" db:"driver_id"`
	BookingID int64     `json:"booking_id" db:"booking_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
