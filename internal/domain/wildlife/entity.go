package wildlife

import (
	"time"

	"github.com/devbhoomi/tourism-api/internal/pkg/content"
)

// Sanctuary is a national park or wildlife sanctuary
type Sanctuary struct {
	ID              int64    `db:"id"`
	Name            string   `db:"name"`
	Slug            string   `db:"slug"`
	Description     *string  `db:"description"`
	Location        *string  `db:"location"`
	StateName       *string  `db:"state_name"`
	EstablishedYear *int     `db:"established_year"`
	AreaSqKm        *float64 `db:"area_sq_km"`
	BestTimeToVisit *string  `db:"best_time_to_visit"`
	FeaturedImage   *string  `db:"featured_image"`
	content.SEO
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
