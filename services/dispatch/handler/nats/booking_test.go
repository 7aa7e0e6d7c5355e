package nats

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sewaroda/sewaroda/internal/pkg/models"
	"github.com/sewaroda/sewaroda/services/dispatch/mocks"
)

func TestHandleBookingCreated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockDispatchUC(ctrl)
	handler := NewBookingHandler(mockUC, nil)

	mockUC.EXPECT().NotifyNearbyDrivers(gomock.Any(), models.BookingEvent{
		BookingID:       42,
		PickupLatitude:  -6.2088,
		PickupLongitude: 106.8456,
	}).Return(&models.DispatchResult{BookingID: 42, MatchedDrivers: []string{}}, nil)

	payload := []byte(`{"booking_id": 42, "pickup_latitude": -6.2088, "pickup_longitude": 106.8456}`)
	assert.NoError(t, handler.handleBookingCreated(payload))
}

func TestHandleBookingCreated_MalformedPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewBookingHandler(mocks.NewMockDispatchUC(ctrl), nil)

	assert.Error(t, handler.handleBookingCreated([]byte("not json")))
}

func TestHandleBookingCreated_MissingBookingID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewBookingHandler(mocks.NewMockDispatchUC(ctrl), nil)

	assert.Error(t, handler.handleBookingCreated([]byte(`{"pickup_latitude": -6.2}`)))
}
