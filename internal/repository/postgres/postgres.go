package postgres

import (
	"github.com/jmoiron/sqlx"
)

type serviceRepository struct {
	db *sqlx.DB
}

type bookingRepository struct {
	db *sqlx.DB
}

type contactRepository struct {
	db *sqlx.DB
}

type galleryRepository struct {
	db *sqlx.DB
}

type intakeRepository struct {
	db *sqlx.DB
}

type notificationRepository struct {
	db *sqlx.DB
}

func NewServiceRepository(db *sqlx.DB) *serviceRepository {
	return &serviceRepository{db: db}
}

func NewBookingRepository(db *sqlx.DB) *bookingRepository {
	return &bookingRepository{db: db}
}

func NewContactRepository(db *sqlx.DB) *contactRepository {
	return &contactRepository{db: db}
}

func NewGalleryRepository(db *sqlx.DB) *galleryRepository {
	return &galleryRepository{db: db}
}

func NewIntakeRepository(db *sqlx.DB) *intakeRepository {
	return &intakeRepository{db: db}
}

func NewNotificationRepository(db *sqlx.DB) *notificationRepository {
	return &notificationRepository{db: db}
}
