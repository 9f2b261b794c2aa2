package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Migrate creates the schema. Every statement is idempotent so startup can
// run it unconditionally.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS services (
			id BIGSERIAL PRIMARY KEY,
			category TEXT NOT NULL,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			duration INT NOT NULL,
			price NUMERIC(10,2) NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS bookings (
			id BIGSERIAL PRIMARY KEY,
			service_id BIGINT NOT NULL REFERENCES services (id),
			client_name TEXT NOT NULL,
			client_email TEXT NOT NULL,
			client_phone TEXT NOT NULL DEFAULT '',
			booking_date DATE NOT NULL,
			booking_time TIME NOT NULL,
			notes TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT 'pending',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		// A race loser on the same slot gets a unique violation instead of a
		// silent double-booking. Cancelled rows free the slot again.
		`CREATE UNIQUE INDEX IF NOT EXISTS bookings_slot_key
			ON bookings (booking_date, booking_time)
			WHERE status <> 'cancelled'`,
		`CREATE INDEX IF NOT EXISTS bookings_date_idx ON bookings (booking_date)`,
		`CREATE TABLE IF NOT EXISTS contact_messages (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			subject TEXT NOT NULL DEFAULT '',
			message TEXT NOT NULL,
			is_read BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS gallery_images (
			id BIGSERIAL PRIMARY KEY,
			filename TEXT NOT NULL,
			alt_text TEXT NOT NULL DEFAULT '',
			category TEXT NOT NULL DEFAULT '',
			is_featured BOOLEAN NOT NULL DEFAULT FALSE,
			sort_order INT NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS intake_forms (
			id BIGSERIAL PRIMARY KEY,
			client_name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT NOT NULL DEFAULT '',
			client_type TEXT NOT NULL DEFAULT 'adult',
			service_location TEXT NOT NULL DEFAULT 'in-salon',
			address TEXT NOT NULL DEFAULT '',
			service_requested TEXT NOT NULL DEFAULT '',
			hair_length TEXT NOT NULL DEFAULT '',
			desired_style TEXT NOT NULL DEFAULT '',
			desired_style_other TEXT NOT NULL DEFAULT '',
			hair_type TEXT NOT NULL DEFAULT '',
			sensitive_to_noise BOOLEAN NOT NULL DEFAULT FALSE,
			sensitive_to_touch BOOLEAN NOT NULL DEFAULT FALSE,
			does_not_like_water BOOLEAN NOT NULL DEFAULT FALSE,
			nervous_anxious BOOLEAN NOT NULL DEFAULT FALSE,
			enjoys_fidget_toys BOOLEAN NOT NULL DEFAULT FALSE,
			needs_weighted_cape BOOLEAN NOT NULL DEFAULT FALSE,
			requires_quiet_environment BOOLEAN NOT NULL DEFAULT FALSE,
			other_sensory_needs TEXT NOT NULL DEFAULT '',
			uses_wheelchair BOOLEAN NOT NULL DEFAULT FALSE,
			limited_mobility BOOLEAN NOT NULL DEFAULT FALSE,
			has_behaviours BOOLEAN NOT NULL DEFAULT FALSE,
			behaviour_notes TEXT NOT NULL DEFAULT '',
			additional_notes TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT 'new',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS notifications (
			id UUID PRIMARY KEY,
			recipient TEXT NOT NULL,
			reply_to TEXT NOT NULL DEFAULT '',
			subject TEXT NOT NULL,
			text_body TEXT NOT NULL,
			html_body TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending',
			retry_count INT NOT NULL DEFAULT 0,
			last_error TEXT,
			next_retry_at TIMESTAMPTZ,
			sent_at TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS notifications_status_idx ON notifications (status)`,
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}
	return nil
}
