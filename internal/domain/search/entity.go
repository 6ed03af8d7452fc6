package search

import "github.com/lib/pq"

// Source is one searchable table.
type Source string

const (
	SourceState       Source = "state"
	SourceTerritory   Source = "territory"
	SourcePackage     Source = "package"
	SourceDistrict    Source = "district"
	SourceSubdistrict Source = "subdistrict"
	SourceHotel       Source = "hotel"
	SourceAttraction  Source = "attraction"
)

// Sources lists every searchable table in result order.
var Sources = []Source{
	SourceState,
	SourceTerritory,
	SourcePackage,
	SourceDistrict,
	SourceSubdistrict,
	SourceHotel,
	SourceAttraction,
}

// Row is a match in the shape shared by all sources. Columns a source does
// not carry stay NULL.
type Row struct {
	ID          int64          `db:"id"`
	Title       string         `db:"title"`
	Slug        string         `db:"slug"`
	Description *string        `db:"description"`
	Image       *string        `db:"image"`
	Price       *float64       `db:"price"`
	StarRating  *int           `db:"star_rating"`
	Amenities   pq.StringArray `db:"amenities"`
	Duration    *string        `db:"duration"`
	Location    *string        `db:"location"`
}
