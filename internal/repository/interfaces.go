package repository

import (
	"context"
	"time"

	"github.com/injoybeauty/salon-api/internal/model"
)

type ServiceRepository interface {
	List(ctx context.Context, activeOnly bool) ([]*model.Service, error)
	ListByCategory(ctx context.Context, category string) ([]*model.Service, error)
	ListCategories(ctx context.Context) ([]string, error)
	Get(ctx context.Context, id int64) (*model.Service, error)
}

type BookingRepository interface {
	Create(ctx context.Context, booking *model.Booking) error
	Get(ctx context.Context, id int64) (*model.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status model.BookingStatus) error
	// ListBusyIntervals returns the occupied intervals for a date, in minutes
	// since midnight, excluding cancelled bookings.
	ListBusyIntervals(ctx context.Context, date string) ([]model.BusyInterval, error)
}

type ContactRepository interface {
	Create(ctx context.Context, msg *model.ContactMessage) error
	List(ctx context.Context, unreadOnly bool) ([]*model.ContactMessage, error)
	MarkRead(ctx context.Context, id int64) error
}

type GalleryRepository interface {
	List(ctx context.Context) ([]*model.GalleryImage, error)
	ListByCategory(ctx context.Context, category string) ([]*model.GalleryImage, error)
	ListFeatured(ctx context.Context, limit int) ([]*model.GalleryImage, error)
	ListCategories(ctx context.Context) ([]string, error)
}

type IntakeRepository interface {
	Create(ctx context.Context, form *model.IntakeForm) error
	Get(ctx context.Context, id int64) (*model.IntakeForm, error)
	List(ctx context.Context, status model.IntakeStatus) ([]*model.IntakeForm, error)
	UpdateStatus(ctx context.Context, id int64, status model.IntakeStatus) error
}

type NotificationRepository interface {
	Create(ctx context.Context, n *model.Notification) error
	// ListDue returns pending and retrying notifications whose next attempt
	// is not in the future, oldest first.
	ListDue(ctx context.Context, limit int, now time.Time) ([]*model.Notification, error)
	Update(ctx context.Context, n *model.Notification) error
}
