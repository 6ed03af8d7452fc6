package culture

import (
	"time"

	"github.com/devbhoomi/tourism-api/internal/pkg/content"
)

// Info is a cultural article: festivals, cuisine, dance, crafts
type Info struct {
	ID            int64   `db:"id"`
	Title         string  `db:"title"`
	Slug          string  `db:"slug"`
	Category      string  `db:"category"`
	StateName     *string `db:"state_name"`
	Description   *string `db:"description"`
	FeaturedImage *string `db:"featured_image"`
	content.SEO
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type Filter struct {
	Category  *string
	StateName *string
}
