package models

import (
	"time"

	"github.com/google/uuid"
)

// BookingEvent is the hand-off payload delivered after a booking has been
// durably committed by the booking service. Only the id and pickup point are
// consumed by dispatch.
type BookingEvent struct {
	BookingID       int64     `json:"booking_id"`
	PickupLatitude  float64   `json:"pickup_latitude"`
	PickupLongitude float64   `json:"pickup_longitude"`
	CreatedAt       time.Time `json:"created_at"`
}

// PickupLocation returns the booking's pickup point as a Location
func (e BookingEvent) PickupLocation() Location {
	return Location{
		Latitude:  e.PickupLatitude,
		Longitude: e.PickupLongitude,
	}
}

// DispatchFailure records a per-driver failure during the fan-out stage.
// These are collected, not propagated; one driver's failure does not abort
// the others.
type DispatchFailure struct {
	DriverID string `json:"driver_id"`
	Reason   string `json:"reason"`
}

// DispatchResult summarizes one dispatch execution for a booking
type DispatchResult struct {
	BookingID         int64             `json:"booking_id"`
	MatchedDrivers    []string          `json:"matched_drivers"`
	Notified          int               `json:"notified"`
	JoinedConnections int               `json:"joined_connections"`
	Broadcasts        int               `json:"broadcasts"`
	Failures          []DispatchFailure `json:"failures,omitempty"`
}

// AcceptBookingRequest is a driver's request to take a dispatched booking
type AcceptBookingRequest struct {
	BookingID int64     `json:"booking_id"`
	ReceiveAt time.Time `json:"receive_at"`
	ReturnAt  time.Time `json:"return_at"`
}

// DriverBooking attaches a driver to a booking's rental period
type DriverBooking struct {
	ID        uuid.UUID `json:"id" db:"id"`
	DriverID  string    `json:"driver_id" db:"driver_id"`
	BookingID int64     `json:"booking_id" db:"booking_id"`
	ReceiveAt time.Time `json:"receive_at" db:"receive_at"`
	ReturnAt  time.Time `json:"return_at" db:"return_at"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// BookingAssignedEvent is published once a driver has taken a booking
type BookingAssignedEvent struct {
	BookingID  int64     `json:"booking_id"`
	DriverID   string    `json:"driver_id"`
	AssignedAt time.Time `json:"assigned_at"`
}
