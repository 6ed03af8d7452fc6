package hotel

import (
	"time"

	"github.com/lib/pq"

	"github.com/devbhoomi/tourism-api/internal/pkg/content"
)

// Hotel is a bookable property; rooms carry the nightly prices
type Hotel struct {
	ID            int64          `db:"id"`
	Name          string         `db:"name"`
	Slug          string         `db:"slug"`
	Description   *string        `db:"description"`
	Location      *string        `db:"location"`
	Category      *string        `db:"category"`
	DistrictID    *int64         `db:"district_id"`
	Price         *float64       `db:"price"`
	StarRating    *int           `db:"star_rating"`
	Amenities     pq.StringArray `db:"amenities"`
	ContactPhone  *string        `db:"contact_phone"`
	ContactEmail  *string        `db:"contact_email"`
	FeaturedImage *string        `db:"featured_image"`
	content.SEO
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Room belongs to a hotel
type Room struct {
	ID            int64     `db:"id"`
	HotelID       int64     `db:"hotel_id"`
	Name          string    `db:"name"`
	RoomType      *string   `db:"room_type"`
	Description   *string   `db:"description"`
	PricePerNight float64   `db:"price_per_night"`
	Capacity      int       `db:"capacity"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

// Filter narrows List results
type Filter struct {
	Category   *string
	DistrictID *int64
}
