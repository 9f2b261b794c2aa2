package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type seedService struct {
	category    string
	name        string
	description string
	duration    int
	price       float64
}

type seedImage struct {
	filename   string
	altText    string
	category   string
	isFeatured bool
	sortOrder  int
}

var seedServices = []seedService{
	{"Hair", "Haircut & Style", "Precision cut tailored to your face shape and lifestyle, finished with a beautiful style.", 60, 75.00},
	{"Hair", "Blowout", "Professional blow dry and styling for any occasion.", 45, 55.00},
	{"Hair", "Color - Full", "Full head color application with premium products.", 120, 150.00},
	{"Hair", "Color - Highlights", "Dimensional highlights or lowlights for added depth.", 150, 180.00},
	{"Hair", "Balayage", "Hand-painted highlights for a natural, sun-kissed look.", 180, 220.00},
	{"Hair", "Deep Conditioning Treatment", "Intensive moisture treatment for damaged or dry hair.", 30, 45.00},
	{"Facial", "Classic Facial", "Deep cleansing facial with extraction and hydration.", 60, 85.00},
	{"Facial", "Anti-Aging Facial", "Targeted treatment to reduce fine lines and restore radiance.", 75, 120.00},
	{"Facial", "Hydrating Facial", "Intensive moisture boost for dehydrated skin.", 60, 95.00},
	{"Facial", "Acne Treatment Facial", "Specialized treatment for acne-prone skin.", 60, 90.00},
	{"Body", "Full Body Massage", "Relaxing Swedish massage to release tension.", 60, 95.00},
	{"Body", "Deep Tissue Massage", "Targeted pressure to relieve chronic muscle tension.", 60, 110.00},
	{"Body", "Body Scrub & Wrap", "Exfoliation followed by a nourishing body wrap.", 90, 130.00},
	{"Body", "Back Facial", "Deep cleansing and treatment for the back area.", 45, 75.00},
	{"Nailcare", "Classic Manicure", "Nail shaping, cuticle care, and polish application.", 30, 35.00},
	{"Nailcare", "Gel Manicure", "Long-lasting gel polish manicure.", 45, 50.00},
	{"Nailcare", "Classic Pedicure", "Relaxing foot treatment with polish.", 45, 45.00},
	{"Nailcare", "Spa Pedicure", "Luxurious pedicure with extended massage and mask.", 60, 65.00},
	{"Nailcare", "Nail Art", "Custom nail art designs (per nail).", 15, 10.00},
}

var seedImages = []seedImage{
	{"gallery-1.jpg", "Elegant updo hairstyle", "Hair", true, 1},
	{"gallery-2.jpg", "Natural balayage highlights", "Hair", true, 2},
	{"gallery-3.jpg", "Bridal makeup and hair", "Hair", false, 3},
	{"gallery-4.jpg", "Relaxing facial treatment", "Facial", true, 4},
	{"gallery-5.jpg", "Glowing skin after facial", "Facial", false, 5},
	{"gallery-6.jpg", "Artistic nail design", "Nailcare", true, 6},
	{"gallery-7.jpg", "French tip manicure", "Nailcare", false, 7},
	{"gallery-8.jpg", "Spa pedicure treatment", "Nailcare", false, 8},
	{"gallery-9.jpg", "Studio interior", "Studio", false, 9},
	{"gallery-10.jpg", "Product display", "Studio", false, 10},
	{"gallery-11.jpg", "Color transformation", "Hair", false, 11},
	{"gallery-12.jpg", "Massage therapy session", "Body", false, 12},
}

// Seed inserts the catalog and gallery fixtures on an empty database. Tables
// that already contain rows are left alone.
func Seed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, "SELECT COUNT(*) FROM services"); err != nil {
		return fmt.Errorf("failed to count services: %w", err)
	}
	if count == 0 {
		query := `
			INSERT INTO services (category, name, description, duration, price)
			VALUES ($1, $2, $3, $4, $5)
		`
		for _, s := range seedServices {
			if _, err := db.ExecContext(ctx, query, s.category, s.name, s.description, s.duration, s.price); err != nil {
				return fmt.Errorf("failed to seed service %q: %w", s.name, err)
			}
		}
	}

	if err := db.GetContext(ctx, &count, "SELECT COUNT(*) FROM gallery_images"); err != nil {
		return fmt.Errorf("failed to count gallery images: %w", err)
	}
	if count == 0 {
		query := `
			INSERT INTO gallery_images (filename, alt_text, category, is_featured, sort_order)
			VALUES ($1, $2, $3, $4, $5)
		`
		for _, img := range seedImages {
			if _, err := db.ExecContext(ctx, query, img.filename, img.altText, img.category, img.isFeatured, img.sortOrder); err != nil {
				return fmt.Errorf("failed to seed gallery image %q: %w", img.filename, err)
			}
		}
	}

	return nil
}
