package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/injoybeauty/salon-api/internal/model"
	apperrors "github.com/injoybeauty/salon-api/pkg/errors"
)

const uniqueViolation = "23505"

func (r *bookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	query := `
		INSERT INTO bookings (
			service_id, client_name, client_email, client_phone,
			booking_date, booking_time, notes, status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	booking.Status = model.BookingStatusPending
	booking.CreatedAt = time.Now()

	err := r.db.GetContext(ctx, &booking.ID, query,
		booking.ServiceID,
		booking.ClientName,
		booking.ClientEmail,
		booking.ClientPhone,
		booking.BookingDate,
		booking.BookingTime,
		booking.Notes,
		booking.Status,
		booking.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return apperrors.NewConflict("this time slot has just been booked", err)
		}
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

func (r *bookingRepository) Get(ctx context.Context, id int64) (*model.Booking, error) {
	query := `
		SELECT b.id, b.service_id, b.client_name, b.client_email, b.client_phone,
			   to_char(b.booking_date, 'YYYY-MM-DD') AS booking_date,
			   to_char(b.booking_time, 'HH24:MI') AS booking_time,
			   b.notes, b.status, b.created_at,
			   s.name AS service_name, s.duration AS service_duration, s.price AS service_price
		FROM bookings b
		JOIN services s ON s.id = b.service_id
		WHERE b.id = $1
	`
	var booking model.Booking
	err := r.db.GetContext(ctx, &booking, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFound("booking", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return &booking, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id int64, status model.BookingStatus) error {
	query := `
		UPDATE bookings
		SET status = $1
		WHERE id = $2
	`
	result, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.NewNotFound("booking", nil)
	}
	return nil
}

func (r *bookingRepository) ListBusyIntervals(ctx context.Context, date string) ([]model.BusyInterval, error) {
	query := `
		SELECT (EXTRACT(HOUR FROM b.booking_time) * 60 + EXTRACT(MINUTE FROM b.booking_time))::int AS start,
			   s.duration
		FROM bookings b
		JOIN services s ON s.id = b.service_id
		WHERE b.booking_date = $1
		AND b.status <> 'cancelled'
		ORDER BY start
	`
	var intervals []model.BusyInterval
	if err := r.db.SelectContext(ctx, &intervals, query, date); err != nil {
		return nil, fmt.Errorf("failed to list busy intervals: %w", err)
	}
	return intervals, nil
}
