package wildlife

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/devbhoomi/tourism-api/internal/pkg/database"
)

// Repository defines sanctuary data access interface
type Repository interface {
	Create(ctx context.Context, s *Sanctuary) error
	GetByID(ctx context.Context, id int64) (*Sanctuary, error)
	GetBySlug(ctx context.Context, slug string) (*Sanctuary, error)
	List(ctx context.Context, stateName *string) ([]*Sanctuary, error)
	Update(ctx context.Context, id int64, req *UpdateSanctuaryRequest, featuredImage *string) (*Sanctuary, error)
	Delete(ctx context.Context, id int64) (*string, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
}

type repository struct {
	db *sqlx.DB
}

const columns = `
	id, name, slug, description, location, state_name, established_year, area_sq_km,
	best_time_to_visit, featured_image, meta_title, meta_description, meta_keywords,
	created_at, updated_at
`

// NewRepository creates sanctuary repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, s *Sanctuary) error {
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO wildlife_sanctuaries (
			name, slug, description, location, state_name, established_year, area_sq_km,
			best_time_to_visit, featured_image, meta_title, meta_description, meta_keywords
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, updated_at
	`,
		s.Name, s.Slug, s.Description, s.Location, s.StateName, s.EstablishedYear, s.AreaSqKm,
		s.BestTimeToVisit, s.FeaturedImage, s.MetaTitle, s.MetaDescription, s.MetaKeywords,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if database.IsUniqueViolation(err, "wildlife_sanctuaries_slug_key") {
		return ErrSlugTaken
	}
	return err
}

func (r *repository) get(ctx context.Context, where string, arg interface{}) (*Sanctuary, error) {
	var s Sanctuary
	err := r.db.GetContext(ctx, &s, `SELECT `+columns+` FROM wildlife_sanctuaries WHERE `+where, arg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSanctuaryNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Sanctuary, error) {
	return r.get(ctx, "id = $1", id)
}

func (r *repository) GetBySlug(ctx context.Context, slug string) (*Sanctuary, error) {
	return r.get(ctx, "slug = $1", slug)
}

func (r *repository) List(ctx context.Context, stateName *string) ([]*Sanctuary, error) {
	items := []*Sanctuary{}
	err := r.db.SelectContext(ctx, &items, `
		SELECT `+columns+` FROM wildlife_sanctuaries
		WHERE ($1::TEXT IS NULL OR LOWER(state_name) = LOWER($1))
		ORDER BY name ASC
	`, stateName)
	return items, err
}

func (r *repository) Update(ctx context.Context, id int64, req *UpdateSanctuaryRequest, featuredImage *string) (*Sanctuary, error) {
	var s Sanctuary
	err := r.db.GetContext(ctx, &s, `
		UPDATE wildlife_sanctuaries SET
			name = COALESCE($2, name),
			slug = COALESCE($3, slug),
			description = COALESCE($4, description),
			location = COALESCE($5, location),
			state_name = COALESCE($6, state_name),
			established_year = COALESCE($7, established_year),
			area_sq_km = COALESCE($8, area_sq_km),
			best_time_to_visit = COALESCE($9, best_time_to_visit),
			featured_image = COALESCE($10, featured_image),
			meta_title = COALESCE($11, meta_title),
			meta_description = COALESCE($12, meta_description),
			meta_keywords = COALESCE($13, meta_keywords),
			updated_at = NOW()
		WHERE id = $1
		RETURNING `+columns,
		id, req.Name, req.Slug, req.Description, req.Location, req.StateName, req.EstablishedYear,
		req.AreaSqKm, req.BestTimeToVisit, featuredImage,
		req.MetaTitle, req.MetaDescription, req.MetaKeywords,
	)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, ErrSanctuaryNotFound
	case database.IsUniqueViolation(err, "wildlife_sanctuaries_slug_key"):
		return nil, ErrSlugTaken
	case err != nil:
		return nil, err
	}
	return &s, nil
}

func (r *repository) Delete(ctx context.Context, id int64) (*string, error) {
	var image sql.NullString
	err := r.db.GetContext(ctx, &image, `DELETE FROM wildlife_sanctuaries WHERE id = $1 RETURNING featured_image`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSanctuaryNotFound
	}
	if err != nil || !image.Valid {
		return nil, err
	}
	return &image.String, nil
}

func (r *repository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM wildlife_sanctuaries WHERE slug = $1)`, slug)
	return exists, err
}
