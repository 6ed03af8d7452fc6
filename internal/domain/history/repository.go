package history

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/devbhoomi/tourism-api/internal/pkg/database"
)

type Repository interface {
	Create(ctx context.Context, e *Entry) error
	GetByID(ctx context.Context, id int64) (*Entry, error)
	GetBySlug(ctx context.Context, slug string) (*Entry, error)
	List(ctx context.Context) ([]*Entry, error)
	Update(ctx context.Context, id int64, req *UpdateEntryRequest, image *string) (*Entry, error)
	Delete(ctx context.Context, id int64) (*string, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
}

type repository struct {
	db *sqlx.DB
}

const columns = `
	id, title, slug, period, content, image,
	meta_title, meta_description, meta_keywords, created_at, updated_at
`

const slugConstraint = "history_entries_slug_key"

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, e *Entry) error {
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO history_entries (
			title, slug, period, content, image,
			meta_title, meta_description, meta_keywords
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`,
		e.Title, e.Slug, e.Period, e.Content, e.Image,
		e.MetaTitle, e.MetaDescription, e.MetaKeywords,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if database.IsUniqueViolation(err, slugConstraint) {
		return ErrSlugTaken
	}
	return err
}

func (r *repository) get(ctx context.Context, where string, arg interface{}) (*Entry, error) {
	var e Entry
	err := r.db.GetContext(ctx, &e, `SELECT `+columns+` FROM history_entries WHERE `+where, arg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Entry, error) {
	return r.get(ctx, "id = $1", id)
}

func (r *repository) GetBySlug(ctx context.Context, slug string) (*Entry, error) {
	return r.get(ctx, "slug = $1", slug)
}

func (r *repository) List(ctx context.Context) ([]*Entry, error) {
	entries := []*Entry{}
	err := r.db.SelectContext(ctx, &entries, `SELECT `+columns+` FROM history_entries ORDER BY created_at DESC, id DESC`)
	return entries, err
}

func (r *repository) Update(ctx context.Context, id int64, req *UpdateEntryRequest, image *string) (*Entry, error) {
	var e Entry
	err := r.db.GetContext(ctx, &e, `
		UPDATE history_entries SET
			title = COALESCE($2, title),
			slug = COALESCE($3, slug),
			period = COALESCE($4, period),
			content = COALESCE($5, content),
			image = COALESCE($6, image),
			meta_title = COALESCE($7, meta_title),
			meta_description = COALESCE($8, meta_description),
			meta_keywords = COALESCE($9, meta_keywords),
			updated_at = NOW()
		WHERE id = $1
		RETURNING `+columns,
		id, req.Title, req.Slug, req.Period, req.Content, image,
		req.MetaTitle, req.MetaDescription, req.MetaKeywords,
	)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, ErrEntryNotFound
	case database.IsUniqueViolation(err, slugConstraint):
		return nil, ErrSlugTaken
	case err != nil:
		return nil, err
	}
	return &e, nil
}

func (r *repository) Delete(ctx context.Context, id int64) (*string, error) {
	var image sql.NullString
	err := r.db.GetContext(ctx, &image, `DELETE FROM history_entries WHERE id = $1 RETURNING image`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEntryNotFound
	}
	if err != nil || !image.Valid {
		return nil, err
	}
	return &image.String, nil
}

func (r *repository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM history_entries WHERE slug = $1)`, slug)
	return exists, err
}
