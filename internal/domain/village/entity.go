package village

import (
	"time"

	"github.com/devbhoomi/tourism-api/internal/pkg/content"
)

// Village may belong to a territory, a subdistrict, or both
type Village struct {
	ID            int64   `db:"id"`
	Name          string  `db:"name"`
	Slug          string  `db:"slug"`
	TerritoryID   *int64  `db:"territory_id"`
	SubdistrictID *int64  `db:"subdistrict_id"`
	Description   *string `db:"description"`
	Population    *int    `db:"population"`
	FeaturedImage *string `db:"featured_image"`
	content.SEO
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Filter narrows List results
type Filter struct {
	TerritoryID   *int64
	SubdistrictID *int64
}
