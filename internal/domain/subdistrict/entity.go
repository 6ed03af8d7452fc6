package subdistrict

import (
	"time"

	"github.com/devbhoomi/tourism-api/internal/pkg/content"
)

// Subdistrict is a tehsil-level area inside a district
type Subdistrict struct {
	ID            int64   `db:"id"`
	Title         string  `db:"title"`
	Slug          string  `db:"slug"`
	DistrictID    int64   `db:"district_id"`
	Description   *string `db:"description"`
	Location      *string `db:"location"`
	FeaturedImage *string `db:"featured_image"`
	content.SEO
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
