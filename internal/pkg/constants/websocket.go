package constants

// WebSocket event types
const (
	// Common events
	EventError = "error"
	EventPing  = "ping"
	EventPong  = "pong"

	// Driver events
	EventLocationUpdate = "location_update"
	EventBookingAccept  = "booking_accept"
	EventBookingTaken   = "booking_taken"

	// Dispatch push. The event name and payload are fixed by the client
	// contract and shared by every dispatch.
	EventReceiveMessage = "ReceiveMessage"
)

// BookingNearbyMessage is the broadcast payload and notification content for
// a dispatch alert.
const BookingNearbyMessage = "New booking nearby"

// WebSocket error codes
const (
	ErrorInvalidFormat   = "invalid_format"
	ErrorInvalidLocation = "invalid_location"
	ErrorBookingTaken    = "booking_taken"
	ErrorInternalError   = "internal_error"
)
