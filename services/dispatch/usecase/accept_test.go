package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sewaroda/sewaroda/internal/pkg/constants"
	"github.com/sewaroda/sewaroda/internal/pkg/models"
	"github.com/sewaroda/sewaroda/services/dispatch"
)

func TestAcceptBooking_FirstDriverWins(t *testing.T) {
	uc, m, ctrl := newDispatchUC(t)
	defer ctrl.Finish()

	now := time.Now()
	req := models.AcceptBookingRequest{
		BookingID: 42,
		ReceiveAt: now,
		ReturnAt:  now.Add(6 * time.Hour),
	}
	stored := &models.DriverBooking{
		ID:        uuid.New(),
		DriverID:  "driver-a",
		BookingID: 42,
		ReceiveAt: req.ReceiveAt,
		ReturnAt:  req.ReturnAt,
		CreatedAt: now,
	}

	m.booking.EXPECT().Attach(gomock.Any(), gomock.Any()).Return(stored, nil)
	m.realtime.EXPECT().BroadcastToGroup("42", constants.EventBookingTaken, models.BookingAssignedEvent{
		BookingID:  42,
		DriverID:   "driver-a",
		AssignedAt: now,
	})
	m.event.EXPECT().PublishBookingAssigned(gomock.Any(), gomock.Any()).Return(nil)

	booking, err := uc.AcceptBooking(context.Background(), "driver-a", req)

	assert.NoError(t, err)
	assert.Equal(t, stored, booking)
}

func TestAcceptBooking_AlreadyTaken(t *testing.T) {
	uc, m, ctrl := newDispatchUC(t)
	defer ctrl.Finish()

	req := models.AcceptBookingRequest{BookingID: 42}
	m.booking.EXPECT().Attach(gomock.Any(), gomock.Any()).Return(nil, dispatch.ErrBookingTaken)

	booking, err := uc.AcceptBooking(context.Background(), "driver-late", req)

	assert.Nil(t, booking)
	assert.ErrorIs(t, err, dispatch.ErrBookingTaken)
}

func TestAcceptBooking_PublishFailureIsBestEffort(t *testing.T) {
	uc, m, ctrl := newDispatchUC(t)
	defer ctrl.Finish()

	now := time.Now()
	req := models.AcceptBookingRequest{BookingID: 5, ReceiveAt: now, ReturnAt: now.Add(time.Hour)}
	stored := &models.DriverBooking{
		ID:        uuid.New(),
		DriverID:  "driver-a",
		BookingID: 5,
		ReceiveAt: now,
		ReturnAt:  now.Add(time.Hour),
		CreatedAt: now,
	}

	m.booking.EXPECT().Attach(gomock.Any(), gomock.Any()).Return(stored, nil)
	m.realtime.EXPECT().BroadcastToGroup("5", constants.EventBookingTaken, gomock.Any())
	m.event.EXPECT().PublishBookingAssigned(gomock.Any(), gomock.Any()).
		Return(assert.AnError)

	booking, err := uc.AcceptBooking(context.Background(), "driver-a", req)

	assert.NoError(t, err)
	assert.NotNil(t, booking)
}
