package subdistrict

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/devbhoomi/tourism-api/internal/pkg/database"
)

// Repository defines subdistrict data access interface
type Repository interface {
	Create(ctx context.Context, s *Subdistrict) error
	GetByID(ctx context.Context, id int64) (*Subdistrict, error)
	GetBySlug(ctx context.Context, slug string) (*Subdistrict, error)
	List(ctx context.Context, districtID *int64) ([]*Subdistrict, error)
	Update(ctx context.Context, id int64, req *UpdateSubdistrictRequest, featuredImage *string) (*Subdistrict, error)
	Delete(ctx context.Context, id int64) ([]string, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
}

type repository struct {
	db *sqlx.DB
}

const columns = `
	id, title, slug, district_id, description, location, featured_image,
	meta_title, meta_description, meta_keywords, created_at, updated_at
`

// NewRepository creates subdistrict repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, s *Subdistrict) error {
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO subdistricts (
			title, slug, district_id, description, location, featured_image,
			meta_title, meta_description, meta_keywords
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`,
		s.Title, s.Slug, s.DistrictID, s.Description, s.Location, s.FeaturedImage,
		s.MetaTitle, s.MetaDescription, s.MetaKeywords,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	return mapWriteError(err)
}

func (r *repository) get(ctx context.Context, where string, arg interface{}) (*Subdistrict, error) {
	var s Subdistrict
	err := r.db.GetContext(ctx, &s, `SELECT `+columns+` FROM subdistricts WHERE `+where, arg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSubdistrictNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Subdistrict, error) {
	return r.get(ctx, "id = $1", id)
}

func (r *repository) GetBySlug(ctx context.Context, slug string) (*Subdistrict, error) {
	return r.get(ctx, "slug = $1", slug)
}

func (r *repository) List(ctx context.Context, districtID *int64) ([]*Subdistrict, error) {
	items := []*Subdistrict{}
	err := r.db.SelectContext(ctx, &items, `
		SELECT `+columns+` FROM subdistricts
		WHERE ($1::BIGINT IS NULL OR district_id = $1)
		ORDER BY title ASC
	`, districtID)
	return items, err
}

func (r *repository) Update(ctx context.Context, id int64, req *UpdateSubdistrictRequest, featuredImage *string) (*Subdistrict, error) {
	var s Subdistrict
	err := r.db.GetContext(ctx, &s, `
		UPDATE subdistricts SET
			title = COALESCE($2, title),
			slug = COALESCE($3, slug),
			district_id = COALESCE($4, district_id),
			description = COALESCE($5, description),
			location = COALESCE($6, location),
			featured_image = COALESCE($7, featured_image),
			meta_title = COALESCE($8, meta_title),
			meta_description = COALESCE($9, meta_description),
			meta_keywords = COALESCE($10, meta_keywords),
			updated_at = NOW()
		WHERE id = $1
		RETURNING `+columns,
		id, req.Title, req.Slug, req.DistrictID, req.Description, req.Location, featuredImage,
		req.MetaTitle, req.MetaDescription, req.MetaKeywords,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSubdistrictNotFound
	}
	if err := mapWriteError(err); err != nil {
		return nil, err
	}
	return &s, nil
}

// Delete removes the subdistrict and returns its own and its villages' files
func (r *repository) Delete(ctx context.Context, id int64) ([]string, error) {
	var files []string
	err := database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		err := tx.SelectContext(ctx, &files, `
			SELECT featured_image FROM villages
			WHERE subdistrict_id = $1 AND featured_image IS NOT NULL
		`, id)
		if err != nil {
			return err
		}

		var own sql.NullString
		err = tx.GetContext(ctx, &own, `DELETE FROM subdistricts WHERE id = $1 RETURNING featured_image`, id)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrSubdistrictNotFound
		}
		if err != nil {
			return err
		}
		if own.Valid {
			files = append(files, own.String)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

func (r *repository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM subdistricts WHERE slug = $1)`, slug)
	return exists, err
}

func mapWriteError(err error) error {
	switch {
	case err == nil:
		return nil
	case database.IsUniqueViolation(err, "subdistricts_slug_key"):
		return ErrSlugTaken
	case database.IsForeignKeyViolation(err):
		return ErrUnknownDistrict
	default:
		return err
	}
}
