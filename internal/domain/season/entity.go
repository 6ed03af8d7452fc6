package season

import "time"

// Image is a picture tagged with the season it was taken in, optionally
// attached to a territory.
type Image struct {
	ID          int64     `db:"id"`
	Season      string    `db:"season"`
	Title       *string   `db:"title"`
	Description *string   `db:"description"`
	TerritoryID *int64    `db:"territory_id"`
	ImagePath   string    `db:"image_path"`
	CreatedAt   time.Time `db:"created_at"`
}

type Filter struct {
	Season      *string
	TerritoryID *int64
}
