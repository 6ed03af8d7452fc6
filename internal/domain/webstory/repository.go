package webstory

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/devbhoomi/tourism-api/internal/pkg/database"
)

type Repository interface {
	Create(ctx context.Context, s *Story) error
	GetByID(ctx context.Context, id int64) (*Story, error)
	GetBySlug(ctx context.Context, slug string) (*Story, error)
	List(ctx context.Context) ([]*Story, error)
	Update(ctx context.Context, id int64, req *UpdateStoryRequest, coverImage *string) (*Story, error)
	Delete(ctx context.Context, id int64) (*string, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
}

type repository struct {
	db *sqlx.DB
}

const columns = `
	id, title, slug, description, content, cover_image,
	meta_title, meta_description, meta_keywords, created_at, updated_at
`

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, s *Story) error {
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO web_stories (
			title, slug, description, content, cover_image,
			meta_title, meta_description, meta_keywords
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`,
		s.Title, s.Slug, s.Description, s.Content, s.CoverImage,
		s.MetaTitle, s.MetaDescription, s.MetaKeywords,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if database.IsUniqueViolation(err, "web_stories_slug_key") {
		return ErrSlugTaken
	}
	return err
}

func (r *repository) get(ctx context.Context, where string, arg interface{}) (*Story, error) {
	var s Story
	err := r.db.GetContext(ctx, &s, `SELECT `+columns+` FROM web_stories WHERE `+where, arg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrStoryNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Story, error) {
	return r.get(ctx, "id = $1", id)
}

func (r *repository) GetBySlug(ctx context.Context, slug string) (*Story, error) {
	return r.get(ctx, "slug = $1", slug)
}

func (r *repository) List(ctx context.Context) ([]*Story, error) {
	stories := []*Story{}
	err := r.db.SelectContext(ctx, &stories, `SELECT `+columns+` FROM web_stories ORDER BY created_at DESC, id DESC`)
	return stories, err
}

func (r *repository) Update(ctx context.Context, id int64, req *UpdateStoryRequest, coverImage *string) (*Story, error) {
	var s Story
	err := r.db.GetContext(ctx, &s, `
		UPDATE web_stories SET
			title = COALESCE($2, title),
			slug = COALESCE($3, slug),
			description = COALESCE($4, description),
			content = COALESCE($5, content),
			cover_image = COALESCE($6, cover_image),
			meta_title = COALESCE($7, meta_title),
			meta_description = COALESCE($8, meta_description),
			meta_keywords = COALESCE($9, meta_keywords),
			updated_at = NOW()
		WHERE id = $1
		RETURNING `+columns,
		id, req.Title, req.Slug, req.Description, req.Content, coverImage,
		req.MetaTitle, req.MetaDescription, req.MetaKeywords,
	)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, ErrStoryNotFound
	case database.IsUniqueViolation(err, "web_stories_slug_key"):
		return nil, ErrSlugTaken
	case err != nil:
		return nil, err
	}
	return &s, nil
}

func (r *repository) Delete(ctx context.Context, id int64) (*string, error) {
	var cover sql.NullString
	err := r.db.GetContext(ctx, &cover, `DELETE FROM web_stories WHERE id = $1 RETURNING cover_image`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrStoryNotFound
	}
	if err != nil || !cover.Valid {
		return nil, err
	}
	return &cover.String, nil
}

func (r *repository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM web_stories WHERE slug = $1)`, slug)
	return exists, err
}
