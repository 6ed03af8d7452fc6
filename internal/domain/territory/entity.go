package territory

import (
	"time"

	"github.com/devbhoomi/tourism-api/internal/pkg/content"
)

// Territory is a touristic region (Garhwal, Kumaon, ...) owning villages and season images
type Territory struct {
	ID            int64   `db:"id"`
	Title         string  `db:"title"`
	Slug          string  `db:"slug"`
	Capital       *string `db:"capital"`
	Description   *string `db:"description"`
	FeaturedImage *string `db:"featured_image"`
	content.SEO
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
