package village

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/devbhoomi/tourism-api/internal/pkg/database"
)

// Repository defines village data access interface
type Repository interface {
	Create(ctx context.Context, v *Village) error
	GetByID(ctx context.Context, id int64) (*Village, error)
	GetBySlug(ctx context.Context, slug string) (*Village, error)
	List(ctx context.Context, filter Filter) ([]*Village, error)
	Update(ctx context.Context, id int64, req *UpdateVillageRequest, featuredImage *string) (*Village, error)
	Delete(ctx context.Context, id int64) (*string, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
}

type repository struct {
	db *sqlx.DB
}

const columns = `
	id, name, slug, territory_id, subdistrict_id, description, population, featured_image,
	meta_title, meta_description, meta_keywords, created_at, updated_at
`

// NewRepository creates village repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, v *Village) error {
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO villages (
			name, slug, territory_id, subdistrict_id, description, population, featured_image,
			meta_title, meta_description, meta_keywords
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`,
		v.Name, v.Slug, v.TerritoryID, v.SubdistrictID, v.Description, v.Population, v.FeaturedImage,
		v.MetaTitle, v.MetaDescription, v.MetaKeywords,
	).Scan(&v.ID, &v.CreatedAt, &v.UpdatedAt)
	return mapWriteError(err)
}

func (r *repository) get(ctx context.Context, where string, arg interface{}) (*Village, error) {
	var v Village
	err := r.db.GetContext(ctx, &v, `SELECT `+columns+` FROM villages WHERE `+where, arg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrVillageNotFound
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Village, error) {
	return r.get(ctx, "id = $1", id)
}

func (r *repository) GetBySlug(ctx context.Context, slug string) (*Village, error) {
	return r.get(ctx, "slug = $1", slug)
}

func (r *repository) List(ctx context.Context, filter Filter) ([]*Village, error) {
	items := []*Village{}
	err := r.db.SelectContext(ctx, &items, `
		SELECT `+columns+` FROM villages
		WHERE ($1::BIGINT IS NULL OR territory_id = $1)
		  AND ($2::BIGINT IS NULL OR subdistrict_id = $2)
		ORDER BY name ASC
	`, filter.TerritoryID, filter.SubdistrictID)
	return items, err
}

func (r *repository) Update(ctx context.Context, id int64, req *UpdateVillageRequest, featuredImage *string) (*Village, error) {
	var v Village
	err := r.db.GetContext(ctx, &v, `
		UPDATE villages SET
			name = COALESCE($2, name),
			slug = COALESCE($3, slug),
			territory_id = COALESCE($4, territory_id),
			subdistrict_id = COALESCE($5, subdistrict_id),
			description = COALESCE($6, description),
			population = COALESCE($7, population),
			featured_image = COALESCE($8, featured_image),
			meta_title = COALESCE($9, meta_title),
			meta_description = COALESCE($10, meta_description),
			meta_keywords = COALESCE($11, meta_keywords),
			updated_at = NOW()
		WHERE id = $1
		RETURNING `+columns,
		id, req.Name, req.Slug, req.TerritoryID, req.SubdistrictID, req.Description, req.Population, featuredImage,
		req.MetaTitle, req.MetaDescription, req.MetaKeywords,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrVillageNotFound
	}
	if err := mapWriteError(err); err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *repository) Delete(ctx context.Context, id int64) (*string, error) {
	var image sql.NullString
	err := r.db.GetContext(ctx, &image, `DELETE FROM villages WHERE id = $1 RETURNING featured_image`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrVillageNotFound
	}
	if err != nil {
		return nil, err
	}
	if !image.Valid {
		return nil, nil
	}
	return &image.String, nil
}

func (r *repository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM villages WHERE slug = $1)`, slug)
	return exists, err
}

func mapWriteError(err error) error {
	switch {
	case err == nil:
		return nil
	case database.IsUniqueViolation(err, "villages_slug_key"):
		return ErrSlugTaken
	case database.IsForeignKeyViolation(err):
		return ErrUnknownParent
	default:
		return err
	}
}
