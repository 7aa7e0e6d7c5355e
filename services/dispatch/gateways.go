package dispatch

import (
	"context"

	"github.com/sewaroda/sewaroda/internal/pkg/models"
)

// DistanceGW defines the interface to the external geodistance service
type DistanceGW interface {
	// ResolveDistances returns the travel distance from origin to every
	// candidate, in exactly the candidates' order and length. A candidate
	// the service cannot route to comes back unresolved in its slot; a
	// failure of the whole batch is returned as an error.
	ResolveDistances(ctx context.Context, origin models.Location, candidates []models.DriverPresence) ([]models.DistanceResult, error)
}

// RealtimeGW defines the interface to the live connection registry and the
// grouped push channel
type RealtimeGW interface {
	// Connections returns the ids of a driver's live connections; empty
	// when the driver is not connected
	Connections(driverID string) []string

	// JoinGroup adds a connection to a named group
	JoinGroup(connID, groupID string)

	// BroadcastToGroup pushes one message to every member of a group;
	// an empty group is a no-op
	BroadcastToGroup(groupID, event string, payload interface{})
}

// EventGW defines the dispatch gateways for publishing domain events
type EventGW interface {
	PublishDispatchCompleted(ctx context.Context, result models.DispatchResult) error
	PublishBookingAssigned(ctx context.Context, event models.BookingAssignedEvent) error
}
