package district

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/devbhoomi/tourism-api/internal/pkg/database"
)

// Repository defines district data access interface
type Repository interface {
	Create(ctx context.Context, d *District) error
	GetByID(ctx context.Context, id int64) (*District, error)
	GetBySlug(ctx context.Context, slug string) (*District, error)
	List(ctx context.Context) ([]*District, error)
	ListByState(ctx context.Context, stateName string) ([]*District, error)
	Update(ctx context.Context, id int64, req *UpdateDistrictRequest, featuredImage *string) (*District, error)
	Delete(ctx context.Context, id int64) ([]string, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	ResolveStateName(ctx context.Context, name string) (string, error)

	ListImages(ctx context.Context, districtID int64) ([]*Image, error)
	CreateImage(ctx context.Context, img *Image) error
	DeleteImage(ctx context.Context, id int64) (string, error)
}

type repository struct {
	db *sqlx.DB
}

const districtColumns = `
	id, name, slug, state_name, description, headquarters, featured_image,
	meta_title, meta_description, meta_keywords, created_at, updated_at
`

// NewRepository creates district repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, d *District) error {
	query := `
		INSERT INTO districts (
			name, slug, state_name, description, headquarters, featured_image,
			meta_title, meta_description, meta_keywords
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowxContext(ctx, query,
		d.Name, d.Slug, d.StateName, d.Description, d.Headquarters, d.FeaturedImage,
		d.MetaTitle, d.MetaDescription, d.MetaKeywords,
	).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
	if database.IsUniqueViolation(err, "districts_slug_key") {
		return ErrSlugTaken
	}
	return err
}

func (r *repository) get(ctx context.Context, where string, arg interface{}) (*District, error) {
	var d District
	err := r.db.GetContext(ctx, &d, `SELECT `+districtColumns+` FROM districts WHERE `+where, arg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrDistrictNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*District, error) {
	return r.get(ctx, "id = $1", id)
}

func (r *repository) GetBySlug(ctx context.Context, slug string) (*District, error) {
	return r.get(ctx, "slug = $1", slug)
}

func (r *repository) List(ctx context.Context) ([]*District, error) {
	districts := []*District{}
	err := r.db.SelectContext(ctx, &districts, `SELECT `+districtColumns+` FROM districts ORDER BY name ASC`)
	return districts, err
}

func (r *repository) ListByState(ctx context.Context, stateName string) ([]*District, error) {
	districts := []*District{}
	err := r.db.SelectContext(ctx, &districts, `
		SELECT `+districtColumns+` FROM districts
		WHERE LOWER(state_name) = LOWER($1)
		ORDER BY name ASC
	`, stateName)
	return districts, err
}

func (r *repository) Update(ctx context.Context, id int64, req *UpdateDistrictRequest, featuredImage *string) (*District, error) {
	query := `
		UPDATE districts SET
			name = COALESCE($2, name),
			slug = COALESCE($3, slug),
			state_name = COALESCE($4, state_name),
			description = COALESCE($5, description),
			headquarters = COALESCE($6, headquarters),
			featured_image = COALESCE($7, featured_image),
			meta_title = COALESCE($8, meta_title),
			meta_description = COALESCE($9, meta_description),
			meta_keywords = COALESCE($10, meta_keywords),
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + districtColumns

	var d District
	err := r.db.GetContext(ctx, &d, query,
		id, req.Name, req.Slug, req.StateName, req.Description, req.Headquarters, featuredImage,
		req.MetaTitle, req.MetaDescription, req.MetaKeywords,
	)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, ErrDistrictNotFound
	case database.IsUniqueViolation(err, "districts_slug_key"):
		return nil, ErrSlugTaken
	case err != nil:
		return nil, err
	}
	return &d, nil
}

// Delete removes the district and returns the files of every row that goes
// with it: images, subdistricts and their villages, attractions.
func (r *repository) Delete(ctx context.Context, id int64) ([]string, error) {
	var files []string
	err := database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		err := tx.SelectContext(ctx, &files, `
			SELECT image_path FROM district_images WHERE district_id = $1
			UNION ALL
			SELECT featured_image FROM subdistricts WHERE district_id = $1 AND featured_image IS NOT NULL
			UNION ALL
			SELECT v.featured_image FROM villages v
				JOIN subdistricts s ON s.id = v.subdistrict_id
				WHERE s.district_id = $1 AND v.featured_image IS NOT NULL
			UNION ALL
			SELECT featured_image FROM attractions WHERE district_id = $1 AND featured_image IS NOT NULL
		`, id)
		if err != nil {
			return err
		}

		var own sql.NullString
		err = tx.GetContext(ctx, &own, `DELETE FROM districts WHERE id = $1 RETURNING featured_image`, id)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrDistrictNotFound
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
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM districts WHERE slug = $1)`, slug)
	return exists, err
}

// ResolveStateName returns the stored spelling of a state name
func (r *repository) ResolveStateName(ctx context.Context, name string) (string, error) {
	var stored string
	err := r.db.GetContext(ctx, &stored, `SELECT name FROM states WHERE LOWER(name) = LOWER($1) LIMIT 1`, name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrUnknownState
	}
	return stored, err
}

func (r *repository) ListImages(ctx context.Context, districtID int64) ([]*Image, error) {
	images := []*Image{}
	err := r.db.SelectContext(ctx, &images, `
		SELECT id, district_id, image_path, caption, created_at
		FROM district_images
		WHERE district_id = $1
		ORDER BY created_at DESC, id DESC
	`, districtID)
	return images, err
}

func (r *repository) CreateImage(ctx context.Context, img *Image) error {
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO district_images (district_id, image_path, caption)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, img.DistrictID, img.ImagePath, img.Caption).Scan(&img.ID, &img.CreatedAt)
	if database.IsForeignKeyViolation(err) {
		return ErrDistrictNotFound
	}
	return err
}

func (r *repository) DeleteImage(ctx context.Context, id int64) (string, error) {
	var path string
	err := r.db.GetContext(ctx, &path, `DELETE FROM district_images WHERE id = $1 RETURNING image_path`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrImageNotFound
	}
	return path, err
}
