package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/sewaroda/sewaroda/internal/pkg/models"
)

// ListNotifications returns the driver's notification log, newest first
func (uc *DispatchUC) ListNotifications(ctx context.Context, driverID string) ([]models.Notification, error) {
	return uc.notifRepo.ListByDriver(ctx, driverID)
}

// MarkNotificationRead marks one of the driver's notifications as read
func (uc *DispatchUC) MarkNotificationRead(ctx context.Context, driverID string, notificationID uuid.UUID) error {
	return uc.notifRepo.MarkRead(ctx, driverID, notificationID)
}

// MarkNotificationsRead marks a batch of the driver's notifications as read
func (uc *DispatchUC) MarkNotificationsRead(ctx context.Context, driverID string, notificationIDs []uuid.UUID) (int64, error) {
	return uc.notifRepo.MarkReadBatch(ctx, driverID, notificationIDs)
}
