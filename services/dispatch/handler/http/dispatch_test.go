package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sewaroda/sewaroda/internal/pkg/models"
	"github.com/sewaroda/sewaroda/services/dispatch"
	"github.com/sewaroda/sewaroda/services/dispatch/mocks"
)

func TestTriggerDispatch_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockDispatchUC(ctrl)
	handler := NewDispatchHandler(mockUC)

	expected := &models.DispatchResult{
		BookingID:      42,
		MatchedDrivers: []string{"driver-a"},
		Notified:       1,
		Broadcasts:     1,
	}
	mockUC.EXPECT().NotifyNearbyDrivers(gomock.Any(), gomock.Any()).Return(expected, nil)

	body := `{"booking_id": 42, "pickup_latitude": -6.2088, "pickup_longitude": 106.8456}`
	req := httptest.NewRequest(http.MethodPost, "/internal/dispatch", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	require.NoError(t, handler.TriggerDispatch(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp SuccessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestTriggerDispatch_MissingBookingID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewDispatchHandler(mocks.NewMockDispatchUC(ctrl))

	req := httptest.NewRequest(http.MethodPost, "/internal/dispatch", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	require.NoError(t, handler.TriggerDispatch(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTriggerDispatch_UpstreamFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockDispatchUC(ctrl)
	handler := NewDispatchHandler(mockUC)

	mockUC.EXPECT().NotifyNearbyDrivers(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: timeout", dispatch.ErrDistanceResolution))

	body := `{"booking_id": 42, "pickup_latitude": -6.2, "pickup_longitude": 106.8}`
	req := httptest.NewRequest(http.MethodPost, "/internal/dispatch", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	require.NoError(t, handler.TriggerDispatch(c))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestAcceptBooking_Conflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockDispatchUC(ctrl)
	handler := NewDispatchHandler(mockUC)

	mockUC.EXPECT().AcceptBooking(gomock.Any(), "driver-late", gomock.Any()).
		Return(nil, dispatch.ErrBookingTaken)

	body := `{"booking_id": 42, "receive_at": "2026-09-01T08:00:00Z", "return_at": "2026-09-01T18:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/drivers/driver-late/bookings", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	c.SetParamNames("driverID")
	c.SetParamValues("driver-late")

	require.NoError(t, handler.AcceptBooking(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAcceptBooking_InvalidRentalPeriod(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewDispatchHandler(mocks.NewMockDispatchUC(ctrl))

	body := `{"booking_id": 42, "receive_at": "2026-09-01T18:00:00Z", "return_at": "2026-09-01T08:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/drivers/driver-a/bookings", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	c.SetParamNames("driverID")
	c.SetParamValues("driver-a")

	require.NoError(t, handler.AcceptBooking(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListNotifications(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockDispatchUC(ctrl)
	handler := NewDispatchHandler(mockUC)

	notifications := []models.Notification{
		{ID: uuid.New(), Content: "New booking nearby", DriverID: "driver-a", BookingID: 42},
	}
	mockUC.EXPECT().ListNotifications(gomock.Any(), "driver-a").Return(notifications, nil)

	req := httptest.NewRequest(http.MethodGet, "/drivers/driver-a/notifications", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	c.SetParamNames("driverID")
	c.SetParamValues("driver-a")

	require.NoError(t, handler.ListNotifications(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "New booking nearby")
}

func TestMarkNotificationRead_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockDispatchUC(ctrl)
	handler := NewDispatchHandler(mockUC)

	id := uuid.New()
	mockUC.EXPECT().MarkNotificationRead(gomock.Any(), "driver-a", id).
		Return(dispatch.ErrNotificationNotFound)

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	c.SetParamNames("driverID", "notificationID")
	c.SetParamValues("driver-a", id.String())

	require.NoError(t, handler.MarkNotificationRead(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMarkNotificationRead_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewDispatchHandler(mocks.NewMockDispatchUC(ctrl))

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	c.SetParamNames("driverID", "notificationID")
	c.SetParamValues("driver-a", "not-a-uuid")

	require.NoError(t, handler.MarkNotificationRead(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMarkNotificationsRead_Batch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockDispatchUC(ctrl)
	handler := NewDispatchHandler(mockUC)

	ids := []uuid.UUID{uuid.New(), uuid.New()}
	mockUC.EXPECT().MarkNotificationsRead(gomock.Any(), "driver-a", ids).Return(int64(2), nil)

	body, err := json.Marshal(MarkReadRequest{NotificationIDs: ids})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	c.SetParamNames("driverID")
	c.SetParamValues("driver-a")

	require.NoError(t, handler.MarkNotificationsRead(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"updated":2`)
}
