package model

import "time"

type GalleryImage struct {
	ID         int64     `db:"id" json:"id"`
	Filename   string    `db:"filename" json:"filename"`
	AltText    string    `db:"alt_text" json:"alt_text,omitempty"`
	Category   string    `db:"category" json:"category,omitempty"`
	IsFeatured bool      `db:"is_featured" json:"is_featured"`
	SortOrder  int       `db:"sort_order" json:"sort_order"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}
