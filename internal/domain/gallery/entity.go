package gallery

import "time"

// Image is a standalone gallery picture
type Image struct {
	ID          int64     `db:"id"`
	Title       *string   `db:"title"`
	Description *string   `db:"description"`
	Category    *string   `db:"category"`
	Location    *string   `db:"location"`
	ImagePath   string    `db:"image_path"`
	CreatedAt   time.Time `db:"created_at"`
}
