package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sewaroda/sewaroda/internal/pkg/constants"
	"github.com/sewaroda/sewaroda/internal/pkg/models"
	"github.com/sewaroda/sewaroda/services/dispatch"
	"github.com/sewaroda/sewaroda/services/dispatch/mocks"
)

type dispatchMocks struct {
	presence *mocks.MockPresenceRepo
	notif    *mocks.MockNotificationRepo
	booking  *mocks.MockDriverBookingRepo
	distance *mocks.MockDistanceGW
	realtime *mocks.MockRealtimeGW
	event    *mocks.MockEventGW
}

func newDispatchUC(t *testing.T) (*DispatchUC, dispatchMocks, *gomock.Controller) {
	ctrl := gomock.NewController(t)

	m := dispatchMocks{
		presence: mocks.NewMockPresenceRepo(ctrl),
		notif:    mocks.NewMockNotificationRepo(ctrl),
		booking:  mocks.NewMockDriverBookingRepo(ctrl),
		distance: mocks.NewMockDistanceGW(ctrl),
		realtime: mocks.NewMockRealtimeGW(ctrl),
		event:    mocks.NewMockEventGW(ctrl),
	}

	cfg := &models.Config{
		Dispatch: models.DispatchConfig{
			RadiusMeters: 10000,
			PresenceTTL:  300,
		},
	}

	uc := NewDispatchUC(cfg, m.presence, m.notif, m.booking, m.distance, m.realtime, m.event)
	return uc, m, ctrl
}

func TestNotifyNearbyDrivers_NoOnlineDrivers(t *testing.T) {
	uc, m, ctrl := newDispatchUC(t)
	defer ctrl.Finish()

	event := models.BookingEvent{BookingID: 42, PickupLatitude: -6.2088, PickupLongitude: 106.8456}

	m.presence.EXPECT().ListActive(gomock.Any()).Return([]models.DriverPresence{}, nil)
	m.event.EXPECT().PublishDispatchCompleted(gomock.Any(), gomock.Any()).Return(nil)

	result, err := uc.NotifyNearbyDrivers(context.Background(), event)

	assert.NoError(t, err)
	assert.Equal(t, int64(42), result.BookingID)
	assert.Empty(t, result.MatchedDrivers)
	assert.Zero(t, result.Notified)
	assert.Zero(t, result.Broadcasts)
}

func TestNotifyNearbyDrivers_PresenceUnavailable(t *testing.T) {
	uc, m, ctrl := newDispatchUC(t)
	defer ctrl.Finish()

	m.presence.EXPECT().ListActive(gomock.Any()).Return(nil, errors.New("connection refused"))

	result, err := uc.NotifyNearbyDrivers(context.Background(), models.BookingEvent{BookingID: 42})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, dispatch.ErrPresenceUnavailable)
}

func TestNotifyNearbyDrivers_DistanceResolutionFails(t *testing.T) {
	uc, m, ctrl := newDispatchUC(t)
	defer ctrl.Finish()

	presences := []models.DriverPresence{
		{DriverID: "driver-a", Location: models.Location{Latitude: -6.21, Longitude: 106.85}},
	}

	m.presence.EXPECT().ListActive(gomock.Any()).Return(presences, nil)
	m.distance.EXPECT().ResolveDistances(gomock.Any(), gomock.Any(), presences).
		Return(nil, errors.New("deadline exceeded"))

	result, err := uc.NotifyNearbyDrivers(context.Background(), models.BookingEvent{BookingID: 42})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, dispatch.ErrDistanceResolution)
}

func TestNotifyNearbyDrivers_NoDriverWithinRadius(t *testing.T) {
	uc, m, ctrl := newDispatchUC(t)
	defer ctrl.Finish()

	presences := []models.DriverPresence{
		{DriverID: "driver-far", Location: models.Location{Latitude: -6.5, Longitude: 107.0}},
	}
	distances := []models.DistanceResult{
		{DriverID: "driver-far", Meters: 25000, Resolved: true},
	}

	m.presence.EXPECT().ListActive(gomock.Any()).Return(presences, nil)
	m.distance.EXPECT().ResolveDistances(gomock.Any(), gomock.Any(), presences).Return(distances, nil)
	m.event.EXPECT().PublishDispatchCompleted(gomock.Any(), gomock.Any()).Return(nil)

	result, err := uc.NotifyNearbyDrivers(context.Background(), models.BookingEvent{BookingID: 8})

	assert.NoError(t, err)
	assert.Empty(t, result.MatchedDrivers)
	assert.Zero(t, result.Notified)
	assert.Zero(t, result.Broadcasts)
}

func TestNotifyNearbyDrivers_MatchesAndBroadcastsOnce(t *testing.T) {
	uc, m, ctrl := newDispatchUC(t)
	defer ctrl.Finish()

	event := models.BookingEvent{BookingID: 42, PickupLatitude: -6.2088, PickupLongitude: 106.8456}
	presences := []models.DriverPresence{
		{DriverID: "driver-near", Location: models.Location{Latitude: -6.21, Longitude: 106.85}},
		{DriverID: "driver-far", Location: models.Location{Latitude: -6.5, Longitude: 107.0}},
		{DriverID: "driver-unroutable", Location: models.Location{Latitude: -6.3, Longitude: 106.9}},
	}
	distances := []models.DistanceResult{
		{DriverID: "driver-near", Meters: 4000, Resolved: true},
		{DriverID: "driver-far", Meters: 15000, Resolved: true},
		{DriverID: "driver-unroutable", Resolved: false},
	}

	m.presence.EXPECT().ListActive(gomock.Any()).Return(presences, nil)
	m.distance.EXPECT().ResolveDistances(gomock.Any(), event.PickupLocation(), presences).Return(distances, nil)

	m.notif.EXPECT().Append(gomock.Any(), matchNotification("driver-near", 42)).Return(uuid.New(), nil)
	m.realtime.EXPECT().Connections("driver-near").Return([]string{"conn-1", "conn-2"})
	m.realtime.EXPECT().JoinGroup("conn-1", "42")
	m.realtime.EXPECT().JoinGroup("conn-2", "42")
	m.realtime.EXPECT().BroadcastToGroup("42", constants.EventReceiveMessage, constants.BookingNearbyMessage)
	m.event.EXPECT().PublishDispatchCompleted(gomock.Any(), gomock.Any()).Return(nil)

	result, err := uc.NotifyNearbyDrivers(context.Background(), event)

	assert.NoError(t, err)
	assert.Equal(t, []string{"driver-near"}, result.MatchedDrivers)
	assert.Equal(t, 1, result.Notified)
	assert.Equal(t, 2, result.JoinedConnections)
	assert.Equal(t, 1, result.Broadcasts)
	assert.Empty(t, result.Failures)
}

func TestNotifyNearbyDrivers_DisconnectedDriverKeepsNotification(t *testing.T) {
	uc, m, ctrl := newDispatchUC(t)
	defer ctrl.Finish()

	event := models.BookingEvent{BookingID: 7}
	presences := []models.DriverPresence{
		{DriverID: "driver-online", Location: models.Location{Latitude: -6.21, Longitude: 106.85}},
		{DriverID: "driver-offline", Location: models.Location{Latitude: -6.22, Longitude: 106.86}},
	}
	distances := []models.DistanceResult{
		{DriverID: "driver-online", Meters: 3000, Resolved: true},
		{DriverID: "driver-offline", Meters: 5000, Resolved: true},
	}

	m.presence.EXPECT().ListActive(gomock.Any()).Return(presences, nil)
	m.distance.EXPECT().ResolveDistances(gomock.Any(), gomock.Any(), presences).Return(distances, nil)

	m.notif.EXPECT().Append(gomock.Any(), matchNotification("driver-online", 7)).Return(uuid.New(), nil)
	m.notif.EXPECT().Append(gomock.Any(), matchNotification("driver-offline", 7)).Return(uuid.New(), nil)
	m.realtime.EXPECT().Connections("driver-online").Return([]string{"conn-1"})
	m.realtime.EXPECT().Connections("driver-offline").Return(nil)
	m.realtime.EXPECT().JoinGroup("conn-1", "7")
	m.realtime.EXPECT().BroadcastToGroup("7", constants.EventReceiveMessage, constants.BookingNearbyMessage)
	m.event.EXPECT().PublishDispatchCompleted(gomock.Any(), gomock.Any()).Return(nil)

	result, err := uc.NotifyNearbyDrivers(context.Background(), event)

	assert.NoError(t, err)
	assert.Equal(t, 2, result.Notified)
	assert.Equal(t, 1, result.JoinedConnections)
	assert.Equal(t, 1, result.Broadcasts)
}

func TestNotifyNearbyDrivers_PersistFailureDoesNotAbort(t *testing.T) {
	uc, m, ctrl := newDispatchUC(t)
	defer ctrl.Finish()

	event := models.BookingEvent{BookingID: 9}
	presences := []models.DriverPresence{
		{DriverID: "driver-ok", Location: models.Location{Latitude: -6.21, Longitude: 106.85}},
		{DriverID: "driver-broken", Location: models.Location{Latitude: -6.22, Longitude: 106.86}},
	}
	distances := []models.DistanceResult{
		{DriverID: "driver-ok", Meters: 2000, Resolved: true},
		{DriverID: "driver-broken", Meters: 2500, Resolved: true},
	}

	m.presence.EXPECT().ListActive(gomock.Any()).Return(presences, nil)
	m.distance.EXPECT().ResolveDistances(gomock.Any(), gomock.Any(), presences).Return(distances, nil)

	m.notif.EXPECT().Append(gomock.Any(), matchNotification("driver-ok", 9)).Return(uuid.New(), nil)
	m.notif.EXPECT().Append(gomock.Any(), matchNotification("driver-broken", 9)).
		Return(uuid.Nil, errors.New("insert failed"))
	m.realtime.EXPECT().Connections("driver-ok").Return([]string{"conn-1"})
	m.realtime.EXPECT().Connections("driver-broken").Return([]string{"conn-2"})
	m.realtime.EXPECT().JoinGroup("conn-1", "9")
	m.realtime.EXPECT().JoinGroup("conn-2", "9")
	m.realtime.EXPECT().BroadcastToGroup("9", constants.EventReceiveMessage, constants.BookingNearbyMessage)
	m.event.EXPECT().PublishDispatchCompleted(gomock.Any(), gomock.Any()).Return(nil)

	result, err := uc.NotifyNearbyDrivers(context.Background(), event)

	assert.NoError(t, err)
	assert.Equal(t, 1, result.Notified)
	assert.Len(t, result.Failures, 1)
	assert.Equal(t, "driver-broken", result.Failures[0].DriverID)
	assert.Equal(t, 1, result.Broadcasts)
}

func TestNotifyNearbyDrivers_PublishFailureIsBestEffort(t *testing.T) {
	uc, m, ctrl := newDispatchUC(t)
	defer ctrl.Finish()

	event := models.BookingEvent{BookingID: 11}
	presences := []models.DriverPresence{
		{DriverID: "driver-a", Location: models.Location{Latitude: -6.21, Longitude: 106.85}},
	}
	distances := []models.DistanceResult{
		{DriverID: "driver-a", Meters: 100, Resolved: true},
	}

	m.presence.EXPECT().ListActive(gomock.Any()).Return(presences, nil)
	m.distance.EXPECT().ResolveDistances(gomock.Any(), gomock.Any(), presences).Return(distances, nil)
	m.notif.EXPECT().Append(gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
	m.realtime.EXPECT().Connections("driver-a").Return([]string{"conn-1"})
	m.realtime.EXPECT().JoinGroup("conn-1", "11")
	m.realtime.EXPECT().BroadcastToGroup("11", constants.EventReceiveMessage, constants.BookingNearbyMessage)
	m.event.EXPECT().PublishDispatchCompleted(gomock.Any(), gomock.Any()).
		Return(errors.New("nats down"))

	result, err := uc.NotifyNearbyDrivers(context.Background(), event)

	assert.NoError(t, err)
	assert.Equal(t, 1, result.Notified)
}

func TestUpdateDriverLocation(t *testing.T) {
	uc, m, ctrl := newDispatchUC(t)
	defer ctrl.Finish()

	location := models.Location{Latitude: -6.2088, Longitude: 106.8456}
	m.presence.EXPECT().Put(gomock.Any(), "driver-a", location).Return(nil)

	assert.NoError(t, uc.UpdateDriverLocation(context.Background(), "driver-a", location))
}

// matchNotification matches a notification append for the given driver and
// booking carrying the fixed dispatch content.
func matchNotification(driverID string, bookingID int64) gomock.Matcher {
	return notificationMatcher{driverID: driverID, bookingID: bookingID}
}

type notificationMatcher struct {
	driverID  string
	bookingID int64
}

func (m notificationMatcher) Matches(x interface{}) bool {
	n, ok := x.(models.Notification)
	if !ok {
		return false
	}
	return n.DriverID == m.driverID &&
		n.BookingID == m.bookingID &&
		n.Content == constants.BookingNearbyMessage &&
		!n.Read
}

func (m notificationMatcher) String() string {
	return "unread booking-nearby notification for " + m.driverID
}
