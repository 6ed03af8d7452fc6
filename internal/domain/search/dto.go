package search

import "github.com/devbhoomi/tourism-api/internal/pkg/upload"

// Item is a tagged search hit. Variant fields are omitted when the source
// does not carry them.
type Item struct {
	Type        Source   `json:"type"`
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Description *string  `json:"description"`
	Image       string   `json:"image,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	StarRating  *int     `json:"star_rating,omitempty"`
	Amenities   []string `json:"amenities,omitempty"`
	Duration    *string  `json:"duration,omitempty"`
	Location    *string  `json:"location,omitempty"`
}

type Result struct {
	Query   string  `json:"query"`
	Results []*Item `json:"results"`
	Total   int     `json:"total"`
}

func itemFromRow(source Source, row *Row, files *upload.Handler) *Item {
	item := &Item{
		Type:        source,
		ID:          row.ID,
		Title:       row.Title,
		Slug:        row.Slug,
		Description: row.Description,
		Image:       files.URLPtr(row.Image),
		Location:    row.Location,
	}

	switch source {
	case SourceHotel:
		item.Price = row.Price
		item.StarRating = row.StarRating
		item.Amenities = []string(row.Amenities)
		if item.Amenities == nil {
			item.Amenities = []string{}
		}
	case SourcePackage:
		item.Price = row.Price
		item.Duration = row.Duration
	}
	return item
}
