package webstory

import (
	"time"

	"github.com/devbhoomi/tourism-api/internal/pkg/content"
)

type Story struct {
	ID          int64   `db:"id"`
	Title       string  `db:"title"`
	Slug        string  `db:"slug"`
	Description *string `db:"description"`
	Content     *string `db:"content"`
	CoverImage  *string `db:"cover_image"`
	content.SEO
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
