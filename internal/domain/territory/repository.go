package territory

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/devbhoomi/tourism-api/internal/pkg/database"
)

// Repository defines territory data access interface
type Repository interface {
	Create(ctx context.Context, t *Territory) error
	GetByID(ctx context.Context, id int64) (*Territory, error)
	GetBySlug(ctx context.Context, slug string) (*Territory, error)
	List(ctx context.Context) ([]*Territory, error)
	Update(ctx context.Context, id int64, req *UpdateTerritoryRequest, featuredImage *string) (*Territory, error)
	Delete(ctx context.Context, id int64) ([]string, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
}

type repository struct {
	db *sqlx.DB
}

const territoryColumns = `
	id, title, slug, capital, description, featured_image,
	meta_title, meta_description, meta_keywords, created_at, updated_at
`

// NewRepository creates territory repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, t *Territory) error {
	query := `
		INSERT INTO territories (
			title, slug, capital, description, featured_image,
			meta_title, meta_description, meta_keywords
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowxContext(ctx, query,
		t.Title, t.Slug, t.Capital, t.Description, t.FeaturedImage,
		t.MetaTitle, t.MetaDescription, t.MetaKeywords,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if database.IsUniqueViolation(err, "territories_slug_key") {
		return ErrSlugTaken
	}
	return err
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Territory, error) {
	var t Territory
	err := r.db.GetContext(ctx, &t, `SELECT `+territoryColumns+` FROM territories WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTerritoryNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) GetBySlug(ctx context.Context, slug string) (*Territory, error) {
	var t Territory
	err := r.db.GetContext(ctx, &t, `SELECT `+territoryColumns+` FROM territories WHERE slug = $1`, slug)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTerritoryNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) List(ctx context.Context) ([]*Territory, error) {
	territories := []*Territory{}
	err := r.db.SelectContext(ctx, &territories, `SELECT `+territoryColumns+` FROM territories ORDER BY title ASC`)
	return territories, err
}

func (r *repository) Update(ctx context.Context, id int64, req *UpdateTerritoryRequest, featuredImage *string) (*Territory, error) {
	query := `
		UPDATE territories SET
			title = COALESCE($2, title),
			slug = COALESCE($3, slug),
			capital = COALESCE($4, capital),
			description = COALESCE($5, description),
			featured_image = COALESCE($6, featured_image),
			meta_title = COALESCE($7, meta_title),
			meta_description = COALESCE($8, meta_description),
			meta_keywords = COALESCE($9, meta_keywords),
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + territoryColumns

	var t Territory
	err := r.db.GetContext(ctx, &t, query,
		id, req.Title, req.Slug, req.Capital, req.Description, featuredImage,
		req.MetaTitle, req.MetaDescription, req.MetaKeywords,
	)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, ErrTerritoryNotFound
	case database.IsUniqueViolation(err, "territories_slug_key"):
		return nil, ErrSlugTaken
	case err != nil:
		return nil, err
	}
	return &t, nil
}

// Delete removes the territory and returns every file path owned by it and
// by the villages and season images removed through ON DELETE CASCADE.
func (r *repository) Delete(ctx context.Context, id int64) ([]string, error) {
	var files []string
	err := database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var children []string
		err := tx.SelectContext(ctx, &children, `
			SELECT featured_image FROM villages WHERE territory_id = $1 AND featured_image IS NOT NULL
			UNION ALL
			SELECT image_path FROM season_images WHERE territory_id = $1
		`, id)
		if err != nil {
			return err
		}

		var own sql.NullString
		err = tx.GetContext(ctx, &own, `DELETE FROM territories WHERE id = $1 RETURNING featured_image`, id)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrTerritoryNotFound
		}
		if err != nil {
			return err
		}

		if own.Valid {
			files = append(files, own.String)
		}
		files = append(files, children...)
		return nil
	})
	return files, err
}

func (r *repository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM territories WHERE slug = $1)`, slug)
	return exists, err
}
