package state

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/devbhoomi/tourism-api/internal/pkg/database"
)

// Repository defines state data access interface
type Repository interface {
	Create(ctx context.Context, s *State) error
	GetByID(ctx context.Context, id int64) (*State, error)
	GetByKey(ctx context.Context, key string) (*State, error)
	List(ctx context.Context) ([]*State, error)
	Update(ctx context.Context, id int64, req *UpdateStateRequest, featuredImage *string) (*State, error)
	Delete(ctx context.Context, id int64) ([]string, error)
	SlugExists(ctx context.Context, slug string) (bool, error)

	ListImages(ctx context.Context, stateName string) ([]*Image, error)
	CreateImage(ctx context.Context, img *Image) error
	DeleteImage(ctx context.Context, id int64) (string, error)

	ListHistory(ctx context.Context, stateName string) ([]*History, error)
	GetHistory(ctx context.Context, id int64) (*History, error)
	CreateHistory(ctx context.Context, h *History) error
	UpdateHistory(ctx context.Context, id int64, req *UpdateHistoryRequest, image *string) (*History, error)
	DeleteHistory(ctx context.Context, id int64) (*string, error)
}

type repository struct {
	db *sqlx.DB
}

const stateColumns = `
	id, name, slug, capital, description, featured_image,
	meta_title, meta_description, meta_keywords, created_at, updated_at
`

// stateFilesQuery lists every file owned by rows that reference a state
// name, including the district subtree removed through ON DELETE CASCADE.
const stateFilesQuery = `
	SELECT image_path FROM state_images WHERE state_name = $1
	UNION ALL
	SELECT image FROM state_history WHERE state_name = $1 AND image IS NOT NULL
	UNION ALL
	SELECT featured_image FROM districts WHERE state_name = $1 AND featured_image IS NOT NULL
	UNION ALL
	SELECT di.image_path FROM district_images di
		JOIN districts d ON d.id = di.district_id WHERE d.state_name = $1
	UNION ALL
	SELECT s.featured_image FROM subdistricts s
		JOIN districts d ON d.id = s.district_id
		WHERE d.state_name = $1 AND s.featured_image IS NOT NULL
	UNION ALL
	SELECT v.featured_image FROM villages v
		JOIN subdistricts s ON s.id = v.subdistrict_id
		JOIN districts d ON d.id = s.district_id
		WHERE d.state_name = $1 AND v.featured_image IS NOT NULL
	UNION ALL
	SELECT a.featured_image FROM attractions a
		JOIN districts d ON d.id = a.district_id
		WHERE d.state_name = $1 AND a.featured_image IS NOT NULL
`

// NewRepository creates state repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func mapWriteError(err error) error {
	switch {
	case database.IsUniqueViolation(err, "states_slug_key"):
		return ErrSlugTaken
	case database.IsUniqueViolation(err, "states_name_key"):
		return ErrNameTaken
	}
	return err
}

func (r *repository) Create(ctx context.Context, s *State) error {
	query := `
		INSERT INTO states (
			name, slug, capital, description, featured_image,
			meta_title, meta_description, meta_keywords
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowxContext(ctx, query,
		s.Name, s.Slug, s.Capital, s.Description, s.FeaturedImage,
		s.MetaTitle, s.MetaDescription, s.MetaKeywords,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	return mapWriteError(err)
}

func (r *repository) GetByID(ctx context.Context, id int64) (*State, error) {
	var s State
	err := r.db.GetContext(ctx, &s, `SELECT `+stateColumns+` FROM states WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrStateNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// GetByKey resolves a slug or a case-insensitive name; a slug match wins.
func (r *repository) GetByKey(ctx context.Context, key string) (*State, error) {
	query := `
		SELECT ` + stateColumns + ` FROM states
		WHERE slug = $1 OR LOWER(name) = LOWER($1)
		ORDER BY (slug = $1) DESC
		LIMIT 1
	`
	var s State
	err := r.db.GetContext(ctx, &s, query, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrStateNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) List(ctx context.Context) ([]*State, error) {
	states := []*State{}
	err := r.db.SelectContext(ctx, &states, `SELECT `+stateColumns+` FROM states ORDER BY name ASC`)
	return states, err
}

// Update applies the patch and, when the name changes, renames the
// state_name references held by child rows in the same transaction.
func (r *repository) Update(ctx context.Context, id int64, req *UpdateStateRequest, featuredImage *string) (*State, error) {
	var updated State
	err := database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var oldName string
		err := tx.GetContext(ctx, &oldName, `SELECT name FROM states WHERE id = $1 FOR UPDATE`, id)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrStateNotFound
		}
		if err != nil {
			return err
		}

		query := `
			UPDATE states SET
				name = COALESCE($2, name),
				slug = COALESCE($3, slug),
				capital = COALESCE($4, capital),
				description = COALESCE($5, description),
				featured_image = COALESCE($6, featured_image),
				meta_title = COALESCE($7, meta_title),
				meta_description = COALESCE($8, meta_description),
				meta_keywords = COALESCE($9, meta_keywords),
				updated_at = NOW()
			WHERE id = $1
			RETURNING ` + stateColumns
		err = tx.GetContext(ctx, &updated, query,
			id, req.Name, req.Slug, req.Capital, req.Description, featuredImage,
			req.MetaTitle, req.MetaDescription, req.MetaKeywords,
		)
		if err != nil {
			return mapWriteError(err)
		}

		if updated.Name == oldName {
			return nil
		}
		for _, table := range []string{"state_images", "state_history", "districts"} {
			if _, err := tx.ExecContext(ctx, `UPDATE `+table+` SET state_name = $1 WHERE state_name = $2`, updated.Name, oldName); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes the state together with its images, history and districts
// and returns every file path those rows owned.
func (r *repository) Delete(ctx context.Context, id int64) ([]string, error) {
	var files []string
	err := database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var s State
		err := tx.GetContext(ctx, &s, `SELECT `+stateColumns+` FROM states WHERE id = $1 FOR UPDATE`, id)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrStateNotFound
		}
		if err != nil {
			return err
		}

		if err := tx.SelectContext(ctx, &files, stateFilesQuery, s.Name); err != nil {
			return err
		}

		for _, table := range []string{"state_images", "state_history", "districts"} {
			if _, err := tx.ExecContext(ctx, `DELETE FROM `+table+` WHERE state_name = $1`, s.Name); err != nil {
				return err
			}
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM states WHERE id = $1`, id); err != nil {
			return err
		}

		if s.FeaturedImage != nil {
			files = append(files, *s.FeaturedImage)
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
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM states WHERE slug = $1)`, slug)
	return exists, err
}
