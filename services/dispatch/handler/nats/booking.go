package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/sewaroda/sewaroda/internal/pkg/constants"
	"github.com/sewaroda/sewaroda/internal/pkg/logger"
	"github.com/sewaroda/sewaroda/internal/pkg/models"
	natspkg "github.com/sewaroda/sewaroda/internal/pkg/nats"
	"github.com/sewaroda/sewaroda/services/dispatch"
)

// BookingHandler handles NATS subscriptions for the dispatch service
type BookingHandler struct {
	dispatchUC dispatch.DispatchUC
	natsClient *natspkg.Client
	subs       []*nats.Subscription
}

// NewBookingHandler creates a new dispatch NATS handler
func NewBookingHandler(dispatchUC dispatch.DispatchUC, client *natspkg.Client) *BookingHandler {
	return &BookingHandler{
		dispatchUC: dispatchUC,
		natsClient: client,
		subs:       make([]*nats.Subscription, 0),
	}
}

// InitNATSConsumers initializes all NATS consumers for the dispatch service
func (h *BookingHandler) InitNATSConsumers() error {
	sub, err := h.natsClient.Subscribe(constants.SubjectBookingCreated, func(msg *nats.Msg) {
		if err := h.handleBookingCreated(msg.Data); err != nil {
			logger.Error("Error handling booking created event", logger.Err(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to booking created events: %w", err)
	}
	h.subs = append(h.subs, sub)

	return nil
}

// handleBookingCreated runs a dispatch for a freshly committed booking
func (h *BookingHandler) handleBookingCreated(msg []byte) error {
	var event models.BookingEvent
	if err := json.Unmarshal(msg, &event); err != nil {
		return fmt.Errorf("failed to unmarshal booking created event: %w", err)
	}
	if event.BookingID <= 0 {
		return fmt.Errorf("booking created event missing booking id")
	}

	logger.Info("Received booking created event",
		logger.Int64("booking_id", event.BookingID),
		logger.Float64("pickup_latitude", event.PickupLatitude),
		logger.Float64("pickup_longitude", event.PickupLongitude))

	result, err := h.dispatchUC.NotifyNearbyDrivers(context.Background(), event)
	if err != nil {
		return err
	}

	logger.Info("Dispatch completed",
		logger.Int64("booking_id", result.BookingID),
		logger.Int("matched", len(result.MatchedDrivers)),
		logger.Int("notified", result.Notified),
		logger.Int("joined_connections", result.JoinedConnections))

	return nil
}
