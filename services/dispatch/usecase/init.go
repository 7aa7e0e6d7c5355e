package usecase

import (
	"github.com/sewaroda/sewaroda/internal/pkg/models"
	"github.com/sewaroda/sewaroda/services/dispatch"
)

// DispatchUC implements the dispatch use case interface
type DispatchUC struct {
	cfg          *models.Config
	presenceRepo dispatch.PresenceRepo
	notifRepo    dispatch.NotificationRepo
	bookingRepo  dispatch.DriverBookingRepo
	distanceGW   dispatch.DistanceGW
	realtimeGW   dispatch.RealtimeGW
	eventGW      dispatch.EventGW
}

// NewDispatchUC creates a new dispatch use case
func NewDispatchUC(
	cfg *models.Config,
	presenceRepo dispatch.PresenceRepo,
	notifRepo dispatch.NotificationRepo,
	bookingRepo dispatch.DriverBookingRepo,
	distanceGW dispatch.DistanceGW,
	realtimeGW dispatch.RealtimeGW,
	eventGW dispatch.EventGW,
) *DispatchUC {
	return &DispatchUC{
		cfg:          cfg,
		presenceRepo: presenceRepo,
		notifRepo:    notifRepo,
		bookingRepo:  bookingRepo,
		distanceGW:   distanceGW,
		realtimeGW:   realtimeGW,
		eventGW:      eventGW,
	}
}
