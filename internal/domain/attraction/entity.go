package attraction

import (
	"time"

	"github.com/devbhoomi/tourism-api/internal/pkg/content"
)

// Attraction is a point of interest, optionally inside a district
type Attraction struct {
	ID            int64   `db:"id"`
	Name          string  `db:"name"`
	Slug          string  `db:"slug"`
	Description   *string `db:"description"`
	Location      *string `db:"location"`
	DistrictID    *int64  `db:"district_id"`
	FeaturedImage *string `db:"featured_image"`
	content.SEO
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
