package gateway

import (
	"context"
	"encoding/json"

	"github.com/sewaroda/sewaroda/internal/pkg/constants"
	"github.com/sewaroda/sewaroda/internal/pkg/models"
	natspkg "github.com/sewaroda/sewaroda/internal/pkg/nats"
)

// EventGW publishes dispatch domain events to NATS
type EventGW struct {
	natsClient *natspkg.Client
}

// NewEventGW creates a new NATS event gateway
func NewEventGW(client *natspkg.Client) *EventGW {
	return &EventGW{natsClient: client}
}

// PublishDispatchCompleted publishes the outcome of one dispatch run
func (g *EventGW) PublishDispatchCompleted(ctx context.Context, result models.DispatchResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return g.natsClient.Publish(constants.SubjectDispatchCompleted, data)
}

// PublishBookingAssigned announces that a driver took a booking
func (g *EventGW) PublishBookingAssigned(ctx context.Context, event models.BookingAssignedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return g.natsClient.Publish(constants.SubjectBookingAssigned, data)
}
