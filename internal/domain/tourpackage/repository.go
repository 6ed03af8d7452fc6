package tourpackage

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/devbhoomi/tourism-api/internal/pkg/database"
)

type Repository interface {
	Create(ctx context.Context, p *Package) error
	GetByID(ctx context.Context, id int64) (*Package, error)
	GetBySlug(ctx context.Context, slug string) (*Package, error)
	List(ctx context.Context, filter Filter) ([]*Package, error)
	Update(ctx context.Context, id int64, req *UpdatePackageRequest, featuredImage *string) (*Package, error)
	Delete(ctx context.Context, id int64) (*string, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
}

type repository struct {
	db *sqlx.DB
}

const columns = `
	id, title, slug, description, duration, price, location, featured_image,
	meta_title, meta_description, meta_keywords, created_at, updated_at
`

const slugConstraint = "tour_packages_slug_key"

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, p *Package) error {
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO tour_packages (
			title, slug, description, duration, price, location, featured_image,
			meta_title, meta_description, meta_keywords
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`,
		p.Title, p.Slug, p.Description, p.Duration, p.Price, p.Location, p.FeaturedImage,
		p.MetaTitle, p.MetaDescription, p.MetaKeywords,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if database.IsUniqueViolation(err, slugConstraint) {
		return ErrSlugTaken
	}
	return err
}

func (r *repository) get(ctx context.Context, where string, arg interface{}) (*Package, error) {
	var p Package
	err := r.db.GetContext(ctx, &p, `SELECT `+columns+` FROM tour_packages WHERE `+where, arg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPackageNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Package, error) {
	return r.get(ctx, "id = $1", id)
}

func (r *repository) GetBySlug(ctx context.Context, slug string) (*Package, error) {
	return r.get(ctx, "slug = $1", slug)
}

func (r *repository) List(ctx context.Context, filter Filter) ([]*Package, error) {
	packages := []*Package{}
	err := r.db.SelectContext(ctx, &packages, `
		SELECT `+columns+` FROM tour_packages
		WHERE ($1::TEXT IS NULL OR LOWER(location) LIKE '%' || LOWER($1) || '%')
		  AND ($2::NUMERIC IS NULL OR price <= $2)
		ORDER BY created_at DESC, id DESC
	`, filter.Location, filter.MaxPrice)
	return packages, err
}

func (r *repository) Update(ctx context.Context, id int64, req *UpdatePackageRequest, featuredImage *string) (*Package, error) {
	var p Package
	err := r.db.GetContext(ctx, &p, `
		UPDATE tour_packages SET
			title = COALESCE($2, title),
			slug = COALESCE($3, slug),
			description = COALESCE($4, description),
			duration = COALESCE($5, duration),
			price = COALESCE($6, price),
			location = COALESCE($7, location),
			featured_image = COALESCE($8, featured_image),
			meta_title = COALESCE($9, meta_title),
			meta_description = COALESCE($10, meta_description),
			meta_keywords = COALESCE($11, meta_keywords),
			updated_at = NOW()
		WHERE id = $1
		RETURNING `+columns,
		id, req.Title, req.Slug, req.Description, req.Duration, req.Price, req.Location, featuredImage,
		req.MetaTitle, req.MetaDescription, req.MetaKeywords,
	)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, ErrPackageNotFound
	case database.IsUniqueViolation(err, slugConstraint):
		return nil, ErrSlugTaken
	case err != nil:
		return nil, err
	}
	return &p, nil
}

func (r *repository) Delete(ctx context.Context, id int64) (*string, error) {
	var image sql.NullString
	err := r.db.GetContext(ctx, &image, `DELETE FROM tour_packages WHERE id = $1 RETURNING featured_image`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPackageNotFound
	}
	if err != nil || !image.Valid {
		return nil, err
	}
	return &image.String, nil
}

func (r *repository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM tour_packages WHERE slug = $1)`, slug)
	return exists, err
}
