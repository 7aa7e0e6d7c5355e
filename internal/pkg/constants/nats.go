package constants

// NATS Subjects
const (
	// Booking service
	SubjectBookingCreated  = "booking.created"
	SubjectBookingAssigned = "booking.assigned"

	// Dispatch service
	SubjectDispatchCompleted = "dispatch.completed"
)
