package search

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type Repository interface {
	// Search returns rows of one source whose text columns contain pattern,
	// in id order, at most limit rows.
	Search(ctx context.Context, source Source, pattern string, limit int) ([]*Row, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// Every query selects the Row column set; $1 is the lowercased LIKE pattern
// and $2 the row cap.
var queries = map[Source]string{
	SourceState: `
		SELECT id, name AS title, slug, description, featured_image AS image,
			NULL::FLOAT8 AS price, NULL::INT AS star_rating, NULL::TEXT[] AS amenities,
			NULL::TEXT AS duration, capital AS location
		FROM states
		WHERE LOWER(name) LIKE $1 OR LOWER(COALESCE(description, '')) LIKE $1
		   OR LOWER(COALESCE(capital, '')) LIKE $1
		ORDER BY id LIMIT $2`,
	SourceTerritory: `
		SELECT id, title, slug, description, featured_image AS image,
			NULL::FLOAT8 AS price, NULL::INT AS star_rating, NULL::TEXT[] AS amenities,
			NULL::TEXT AS duration, capital AS location
		FROM territories
		WHERE LOWER(title) LIKE $1 OR LOWER(COALESCE(description, '')) LIKE $1
		   OR LOWER(COALESCE(capital, '')) LIKE $1
		ORDER BY id LIMIT $2`,
	SourcePackage: `
		SELECT id, title, slug, description, featured_image AS image,
			price::FLOAT8 AS price, NULL::INT AS star_rating, NULL::TEXT[] AS amenities,
			duration, location
		FROM tour_packages
		WHERE LOWER(title) LIKE $1 OR LOWER(COALESCE(description, '')) LIKE $1
		   OR LOWER(COALESCE(location, '')) LIKE $1 OR LOWER(COALESCE(duration, '')) LIKE $1
		ORDER BY id LIMIT $2`,
	SourceDistrict: `
		SELECT id, name AS title, slug, description, featured_image AS image,
			NULL::FLOAT8 AS price, NULL::INT AS star_rating, NULL::TEXT[] AS amenities,
			NULL::TEXT AS duration, state_name AS location
		FROM districts
		WHERE LOWER(name) LIKE $1 OR LOWER(COALESCE(description, '')) LIKE $1
		   OR LOWER(state_name) LIKE $1 OR LOWER(COALESCE(headquarters, '')) LIKE $1
		ORDER BY id LIMIT $2`,
	SourceSubdistrict: `
		SELECT s.id, s.title, s.slug, s.description, s.featured_image AS image,
			NULL::FLOAT8 AS price, NULL::INT AS star_rating, NULL::TEXT[] AS amenities,
			NULL::TEXT AS duration, d.name AS location
		FROM subdistricts s
		JOIN districts d ON d.id = s.district_id
		WHERE LOWER(s.title) LIKE $1 OR LOWER(COALESCE(s.description, '')) LIKE $1
		   OR LOWER(COALESCE(s.location, '')) LIKE $1
		ORDER BY s.id LIMIT $2`,
	SourceHotel: `
		SELECT id, name AS title, slug, description, featured_image AS image,
			price::FLOAT8 AS price, star_rating::INT AS star_rating, amenities,
			NULL::TEXT AS duration, location
		FROM hotels
		WHERE LOWER(name) LIKE $1 OR LOWER(COALESCE(description, '')) LIKE $1
		   OR LOWER(COALESCE(location, '')) LIKE $1 OR LOWER(COALESCE(category, '')) LIKE $1
		   OR LOWER(array_to_string(amenities, ' ')) LIKE $1
		ORDER BY id LIMIT $2`,
	SourceAttraction: `
		SELECT id, name AS title, slug, description, featured_image AS image,
			NULL::FLOAT8 AS price, NULL::INT AS star_rating, NULL::TEXT[] AS amenities,
			NULL::TEXT AS duration, location
		FROM attractions
		WHERE LOWER(name) LIKE $1 OR LOWER(COALESCE(description, '')) LIKE $1
		   OR LOWER(COALESCE(location, '')) LIKE $1
		ORDER BY id LIMIT $2`,
}

func (r *repository) Search(ctx context.Context, source Source, pattern string, limit int) ([]*Row, error) {
	query, ok := queries[source]
	if !ok {
		return nil, fmt.Errorf("unknown search source %q", source)
	}

	rows := []*Row{}
	if err := r.db.SelectContext(ctx, &rows, query, pattern, limit); err != nil {
		return nil, fmt.Errorf("search %s: %w", source, err)
	}
	return rows, nil
}
