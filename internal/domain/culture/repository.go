package culture

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/devbhoomi/tourism-api/internal/pkg/database"
)

type Repository interface {
	Create(ctx context.Context, i *Info) error
	GetByID(ctx context.Context, id int64) (*Info, error)
	GetBySlug(ctx context.Context, slug string) (*Info, error)
	List(ctx context.Context, filter Filter) ([]*Info, error)
	Update(ctx context.Context, id int64, req *UpdateInfoRequest, featuredImage *string) (*Info, error)
	Delete(ctx context.Context, id int64) (*string, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
}

type repository struct {
	db *sqlx.DB
}

const columns = `
	id, title, slug, category, state_name, description, featured_image,
	meta_title, meta_description, meta_keywords, created_at, updated_at
`

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, i *Info) error {
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO cultural_info (
			title, slug, category, state_name, description, featured_image,
			meta_title, meta_description, meta_keywords
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`,
		i.Title, i.Slug, i.Category, i.StateName, i.Description, i.FeaturedImage,
		i.MetaTitle, i.MetaDescription, i.MetaKeywords,
	).Scan(&i.ID, &i.CreatedAt, &i.UpdatedAt)
	if database.IsUniqueViolation(err, "cultural_info_slug_key") {
		return ErrSlugTaken
	}
	return err
}

func (r *repository) get(ctx context.Context, where string, arg interface{}) (*Info, error) {
	var i Info
	err := r.db.GetContext(ctx, &i, `SELECT `+columns+` FROM cultural_info WHERE `+where, arg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrInfoNotFound
	}
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Info, error) {
	return r.get(ctx, "id = $1", id)
}

func (r *repository) GetBySlug(ctx context.Context, slug string) (*Info, error) {
	return r.get(ctx, "slug = $1", slug)
}

func (r *repository) List(ctx context.Context, filter Filter) ([]*Info, error) {
	items := []*Info{}
	err := r.db.SelectContext(ctx, &items, `
		SELECT `+columns+` FROM cultural_info
		WHERE ($1::TEXT IS NULL OR LOWER(category) = LOWER($1))
		  AND ($2::TEXT IS NULL OR LOWER(state_name) = LOWER($2))
		ORDER BY title ASC
	`, filter.Category, filter.StateName)
	return items, err
}

func (r *repository) Update(ctx context.Context, id int64, req *UpdateInfoRequest, featuredImage *string) (*Info, error) {
	var i Info
	err := r.db.GetContext(ctx, &i, `
		UPDATE cultural_info SET
			title = COALESCE($2, title),
			slug = COALESCE($3, slug),
			category = COALESCE($4, category),
			state_name = COALESCE($5, state_name),
			description = COALESCE($6, description),
			featured_image = COALESCE($7, featured_image),
			meta_title = COALESCE($8, meta_title),
			meta_description = COALESCE($9, meta_description),
			meta_keywords = COALESCE($10, meta_keywords),
			updated_at = NOW()
		WHERE id = $1
		RETURNING `+columns,
		id, req.Title, req.Slug, req.Category, req.StateName, req.Description, featuredImage,
		req.MetaTitle, req.MetaDescription, req.MetaKeywords,
	)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, ErrInfoNotFound
	case database.IsUniqueViolation(err, "cultural_info_slug_key"):
		return nil, ErrSlugTaken
	case err != nil:
		return nil, err
	}
	return &i, nil
}

func (r *repository) Delete(ctx context.Context, id int64) (*string, error) {
	var image sql.NullString
	err := r.db.GetContext(ctx, &image, `DELETE FROM cultural_info WHERE id = $1 RETURNING featured_image`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrInfoNotFound
	}
	if err != nil || !image.Valid {
		return nil, err
	}
	return &image.String, nil
}

func (r *repository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM cultural_info WHERE slug = $1)`, slug)
	return exists, err
}
