package tourpackage

import (
	"time"

	"github.com/devbhoomi/tourism-api/internal/pkg/content"
)

// Package is a priced multi-day itinerary
type Package struct {
	ID            int64    `db:"id"`
	Title         string   `db:"title"`
	Slug          string   `db:"slug"`
	Description   *string  `db:"description"`
	Duration      *string  `db:"duration"`
	Price         *float64 `db:"price"`
	Location      *string  `db:"location"`
	FeaturedImage *string  `db:"featured_image"`
	content.SEO
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type Filter struct {
	Location *string
	MaxPrice *float64
}
