package model

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled:
		return true
	}
	return false
}

type Booking struct {
	ID          int64         `db:"id" json:"id"`
	ServiceID   int64         `db:"service_id" json:"service_id"`
	ClientName  string        `db:"client_name" json:"client_name"`
	ClientEmail string        `db:"client_email" json:"client_email"`
	ClientPhone string        `db:"client_phone" json:"client_phone,omitempty"`
	BookingDate string        `db:"booking_date" json:"booking_date"` // YYYY-MM-DD
	BookingTime string        `db:"booking_time" json:"booking_time"` // HH:MM
	Notes       string        `db:"notes" json:"notes,omitempty"`
	Status      BookingStatus `db:"status" json:"status"`
	CreatedAt   time.Time     `db:"created_at" json:"created_at"`

	// Joined from services on reads.
	ServiceName     string  `db:"service_name" json:"service_name,omitempty"`
	ServiceDuration int     `db:"service_duration" json:"duration,omitempty"`
	ServicePrice    float64 `db:"service_price" json:"price,omitempty"`
}

type CreateBookingRequest struct {
	ServiceID   int64  `json:"service_id" binding:"required"`
	ClientName  string `json:"client_name" binding:"required,max=200"`
	ClientEmail string `json:"client_email" binding:"required,email"`
	ClientPhone string `json:"client_phone" binding:"max=40"`
	BookingDate string `json:"booking_date" binding:"required,dateonly"`
	BookingTime string `json:"booking_time" binding:"required,hhmm"`
	Notes       string `json:"notes" binding:"max=2000"`
}

type UpdateBookingStatusRequest struct {
	Status BookingStatus `json:"status" binding:"required"`
}
