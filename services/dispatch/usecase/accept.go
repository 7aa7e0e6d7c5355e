package usecase

import (
	"context"
	"strconv"

	"github.com/sewaroda/sewaroda/internal/pkg/constants"
	"github.com/sewaroda/sewaroda/internal/pkg/logger"
	"github.com/sewaroda/sewaroda/internal/pkg/models"
)

// AcceptBooking attaches a driver to a dispatched booking. The first driver
// to accept wins; everyone else in the booking group is told to stand down.
func (uc *DispatchUC) AcceptBooking(ctx context.Context, driverID string, req models.AcceptBookingRequest) (*models.DriverBooking, error) {
	booking := models.DriverBooking{
		DriverID:  driverID,
		BookingID: req.BookingID,
		ReceiveAt: req.ReceiveAt,
		ReturnAt:  req.ReturnAt,
	}

	created, err := uc.bookingRepo.Attach(ctx, booking)
	if err != nil {
		return nil, err
	}

	groupID := strconv.FormatInt(req.BookingID, 10)
	uc.realtimeGW.BroadcastToGroup(groupID, constants.EventBookingTaken, models.BookingAssignedEvent{
		BookingID:  created.BookingID,
		DriverID:   created.DriverID,
		AssignedAt: created.CreatedAt,
	})

	if err := uc.eventGW.PublishBookingAssigned(ctx, models.BookingAssignedEvent{
		BookingID:  created.BookingID,
		DriverID:   created.DriverID,
		AssignedAt: created.CreatedAt,
	}); err != nil {
		logger.Warn("Failed to publish booking assigned event",
			logger.Int64("booking_id", created.BookingID),
			logger.String("driver_id", created.DriverID),
			logger.Err(err))
	}

	logger.Info("Driver attached to booking",
		logger.Int64("booking_id", created.BookingID),
		logger.String("driver_id", created.DriverID),
		logger.Duration("rental_period", created.ReturnAt.Sub(created.ReceiveAt)))

	return created, nil
}
