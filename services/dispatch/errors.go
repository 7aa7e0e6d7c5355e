package dispatch

import "errors"

var (
	// ErrPresenceUnavailable means the presence cache could not be
	// enumerated; the dispatch has no driver list and is aborted.
	ErrPresenceUnavailable = errors.New("presence cache unavailable")

	// ErrDistanceResolution means the whole distance batch failed or
	// timed out. Distinct from a single unresolved candidate, which is
	// filtered out without aborting.
	ErrDistanceResolution = errors.New("distance resolution failed")

	// ErrBookingTaken means another driver already attached to the booking
	ErrBookingTaken = errors.New("booking already taken")

	// ErrNotificationNotFound means the notification does not exist or
	// belongs to another driver
	ErrNotificationNotFound = errors.New("notification not found")
)
