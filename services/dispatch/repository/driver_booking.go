package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/sewaroda/sewaroda/internal/pkg/models"
	"github.com/sewaroda/sewaroda/services/dispatch"
)

const pgUniqueViolation = "23505"

// DriverBookingRepo persists driver-to-booking attachments in PostgreSQL.
// The booking_id column carries a unique constraint, which is what enforces
// first-writer-wins when several drivers race to accept.
type DriverBookingRepo struct {
	db *sqlx.DB
}

// NewDriverBookingRepo creates a new driver booking repository
func NewDriverBookingRepo(db *sqlx.DB) *DriverBookingRepo {
	return &DriverBookingRepo{db: db}
}

// Attach records that a driver took a booking. A second attach for the same
// booking trips the unique constraint and returns ErrBookingTaken.
func (r *DriverBookingRepo) Attach(ctx context.Context, booking models.DriverBooking) (*models.DriverBooking, error) {
	booking.ID = uuid.New()
	booking.CreatedAt = time.Now()

	query := `
		INSERT INTO driver_bookings (id, driver_id, booking_id, receive_at, return_at, created_at)
		VALUES (:id, :driver_id, :booking_id, :receive_at, :return_at, :created_at)`

	if _, err := r.db.NamedExecContext(ctx, query, booking); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, dispatch.ErrBookingTaken
		}
		return nil, fmt.Errorf("failed to attach driver to booking: %w", err)
	}

	return &booking, nil
}
