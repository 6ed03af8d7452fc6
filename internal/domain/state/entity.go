package state

import (
	"time"

	"github.com/devbhoomi/tourism-api/internal/pkg/content"
)

// State is a top-level region. Child rows reference it by name.
type State struct {
	ID            int64   `db:"id"`
	Name          string  `db:"name"`
	Slug          string  `db:"slug"`
	Capital       *string `db:"capital"`
	Description   *string `db:"description"`
	FeaturedImage *string `db:"featured_image"`
	content.SEO
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Image is a gallery picture attached to a state
type Image struct {
	ID        int64     `db:"id"`
	StateName string    `db:"state_name"`
	ImagePath string    `db:"image_path"`
	Caption   *string   `db:"caption"`
	CreatedAt time.Time `db:"created_at"`
}

// History is a historical note attached to a state
type History struct {
	ID        int64     `db:"id"`
	StateName string    `db:"state_name"`
	Title     string    `db:"title"`
	Content   *string   `db:"content"`
	Image     *string   `db:"image"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
