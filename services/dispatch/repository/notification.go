package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/sewaroda/sewaroda/internal/pkg/models"
	"github.com/sewaroda/sewaroda/services/dispatch"
)

// NotificationRepo persists the durable notification log in PostgreSQL
type NotificationRepo struct {
	db *sqlx.DB
}

// NewNotificationRepo creates a new notification repository
func NewNotificationRepo(db *sqlx.DB) *NotificationRepo {
	return &NotificationRepo{db: db}
}

// Append inserts one notification and returns its assigned id. Ids are
// generated client side so concurrent dispatch fan-outs never collide.
func (r *NotificationRepo) Append(ctx context.Context, notification models.Notification) (uuid.UUID, error) {
	notification.ID = uuid.New()
	notification.Read = false
	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO notifications (id, content, read, driver_id, booking_id, created_at)
		VALUES (:id, :content, :read, :driver_id, :booking_id, :created_at)`

	if _, err := r.db.NamedExecContext(ctx, query, notification); err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert notification: %w", err)
	}

	return notification.ID, nil
}

// ListByDriver returns the driver's notifications, newest first
func (r *NotificationRepo) ListByDriver(ctx context.Context, driverID string) ([]models.Notification, error) {
	query := `
		SELECT id, content, read, driver_id, booking_id, created_at
		FROM notifications
		WHERE driver_id = $1
		ORDER BY created_at DESC`

	notifications := []models.Notification{}
	if err := r.db.SelectContext(ctx, &notifications, query, driverID); err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	return notifications, nil
}

// MarkRead marks one of the driver's notifications as read. The driver id is
// part of the predicate so a driver cannot touch another driver's log.
func (r *NotificationRepo) MarkRead(ctx context.Context, driverID string, notificationID uuid.UUID) error {
	query := `UPDATE notifications SET read = TRUE WHERE id = $1 AND driver_id = $2`

	result, err := r.db.ExecContext(ctx, query, notificationID, driverID)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check notification update: %w", err)
	}
	if affected == 0 {
		return dispatch.ErrNotificationNotFound
	}

	return nil
}

// MarkReadBatch marks a set of the driver's notifications as read in one
// statement. Ids that do not exist or belong to another driver are skipped.
func (r *NotificationRepo) MarkReadBatch(ctx context.Context, driverID string, notificationIDs []uuid.UUID) (int64, error) {
	if len(notificationIDs) == 0 {
		return 0, nil
	}

	ids := make([]string, len(notificationIDs))
	for i, id := range notificationIDs {
		ids[i] = id.String()
	}

	query := `UPDATE notifications SET read = TRUE WHERE driver_id = $1 AND id = ANY($2)`

	result, err := r.db.ExecContext(ctx, query, driverID, pq.Array(ids))
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", err)
	}

	return result.RowsAffected()
}
