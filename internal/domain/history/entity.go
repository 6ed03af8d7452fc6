package history

import (
	"time"

	"github.com/devbhoomi/tourism-api/internal/pkg/content"
)

// Entry is a historical article covering a named period
type Entry struct {
	ID      int64   `db:"id"`
	Title   string  `db:"title"`
	Slug    string  `db:"slug"`
	Period  *string `db:"period"`
	Content *string `db:"content"`
	Image   *string `db:"image"`
	content.SEO
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
