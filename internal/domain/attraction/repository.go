package attraction

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/devbhoomi/tourism-api/internal/pkg/database"
)

type Repository interface {
	Create(ctx context.Context, a *Attraction) error
	GetByID(ctx context.Context, id int64) (*Attraction, error)
	GetBySlug(ctx context.Context, slug string) (*Attraction, error)
	List(ctx context.Context, districtID *int64) ([]*Attraction, error)
	Update(ctx context.Context, id int64, req *UpdateAttractionRequest, featuredImage *string) (*Attraction, error)
	Delete(ctx context.Context, id int64) (*string, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
}

type repository struct {
	db *sqlx.DB
}

const columns = `
	id, name, slug, description, location, district_id, featured_image,
	meta_title, meta_description, meta_keywords, created_at, updated_at
`

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func mapWriteError(err error) error {
	switch {
	case database.IsUniqueViolation(err, "attractions_slug_key"):
		return ErrSlugTaken
	case database.IsForeignKeyViolation(err):
		return ErrUnknownDistrict
	}
	return err
}

func (r *repository) Create(ctx context.Context, a *Attraction) error {
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO attractions (
			name, slug, description, location, district_id, featured_image,
			meta_title, meta_description, meta_keywords
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`,
		a.Name, a.Slug, a.Description, a.Location, a.DistrictID, a.FeaturedImage,
		a.MetaTitle, a.MetaDescription, a.MetaKeywords,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	return mapWriteError(err)
}

func (r *repository) get(ctx context.Context, where string, arg interface{}) (*Attraction, error) {
	var a Attraction
	err := r.db.GetContext(ctx, &a, `SELECT `+columns+` FROM attractions WHERE `+where, arg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAttractionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Attraction, error) {
	return r.get(ctx, "id = $1", id)
}

func (r *repository) GetBySlug(ctx context.Context, slug string) (*Attraction, error) {
	return r.get(ctx, "slug = $1", slug)
}

func (r *repository) List(ctx context.Context, districtID *int64) ([]*Attraction, error) {
	items := []*Attraction{}
	err := r.db.SelectContext(ctx, &items, `
		SELECT `+columns+` FROM attractions
		WHERE ($1::BIGINT IS NULL OR district_id = $1)
		ORDER BY name ASC
	`, districtID)
	return items, err
}

func (r *repository) Update(ctx context.Context, id int64, req *UpdateAttractionRequest, featuredImage *string) (*Attraction, error) {
	var a Attraction
	err := r.db.GetContext(ctx, &a, `
		UPDATE attractions SET
			name = COALESCE($2, name),
			slug = COALESCE($3, slug),
			description = COALESCE($4, description),
			location = COALESCE($5, location),
			district_id = COALESCE($6, district_id),
			featured_image = COALESCE($7, featured_image),
			meta_title = COALESCE($8, meta_title),
			meta_description = COALESCE($9, meta_description),
			meta_keywords = COALESCE($10, meta_keywords),
			updated_at = NOW()
		WHERE id = $1
		RETURNING `+columns,
		id, req.Name, req.Slug, req.Description, req.Location, req.DistrictID, featuredImage,
		req.MetaTitle, req.MetaDescription, req.MetaKeywords,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAttractionNotFound
	}
	if err != nil {
		return nil, mapWriteError(err)
	}
	return &a, nil
}

func (r *repository) Delete(ctx context.Context, id int64) (*string, error) {
	var image sql.NullString
	err := r.db.GetContext(ctx, &image, `DELETE FROM attractions WHERE id = $1 RETURNING featured_image`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAttractionNotFound
	}
	if err != nil || !image.Valid {
		return nil, err
	}
	return &image.String, nil
}

func (r *repository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM attractions WHERE slug = $1)`, slug)
	return exists, err
}
