package district

import (
	"time"

	"github.com/devbhoomi/tourism-api/internal/pkg/content"
)

// District belongs to a state by name and owns images, subdistricts and attractions
type District struct {
	ID            int64   `db:"id"`
	Name          string  `db:"name"`
	Slug          string  `db:"slug"`
	StateName     string  `db:"state_name"`
	Description   *string `db:"description"`
	Headquarters  *string `db:"headquarters"`
	FeaturedImage *string `db:"featured_image"`
	content.SEO
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Image is a gallery picture of a district
type Image struct {
	ID         int64     `db:"id"`
	DistrictID int64     `db:"district_id"`
	ImagePath  string    `db:"image_path"`
	Caption    *string   `db:"caption"`
	CreatedAt  time.Time `db:"created_at"`
}
