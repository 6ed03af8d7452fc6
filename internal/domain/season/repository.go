package season

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/devbhoomi/tourism-api/internal/pkg/database"
)

type Repository interface {
	Create(ctx context.Context, img *Image) error
	GetByID(ctx context.Context, id int64) (*Image, error)
	List(ctx context.Context, filter Filter) ([]*Image, error)
	Update(ctx context.Context, id int64, req *UpdateImageRequest, imagePath *string) (*Image, error)
	Delete(ctx context.Context, id int64) (string, error)
}

type repository struct {
	db *sqlx.DB
}

const columns = `id, season, title, description, territory_id, image_path, created_at`

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, img *Image) error {
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO season_images (season, title, description, territory_id, image_path)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, img.Season, img.Title, img.Description, img.TerritoryID, img.ImagePath,
	).Scan(&img.ID, &img.CreatedAt)
	if database.IsForeignKeyViolation(err) {
		return ErrUnknownTerritory
	}
	return err
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Image, error) {
	var img Image
	err := r.db.GetContext(ctx, &img, `SELECT `+columns+` FROM season_images WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrImageNotFound
	}
	if err != nil {
		return nil, err
	}
	return &img, nil
}

func (r *repository) List(ctx context.Context, filter Filter) ([]*Image, error) {
	images := []*Image{}
	err := r.db.SelectContext(ctx, &images, `
		SELECT `+columns+` FROM season_images
		WHERE ($1::TEXT IS NULL OR season = LOWER($1))
		  AND ($2::BIGINT IS NULL OR territory_id = $2)
		ORDER BY created_at DESC, id DESC
	`, filter.Season, filter.TerritoryID)
	return images, err
}

func (r *repository) Update(ctx context.Context, id int64, req *UpdateImageRequest, imagePath *string) (*Image, error) {
	var img Image
	err := r.db.GetContext(ctx, &img, `
		UPDATE season_images SET
			season = COALESCE($2, season),
			title = COALESCE($3, title),
			description = COALESCE($4, description),
			territory_id = COALESCE($5, territory_id),
			image_path = COALESCE($6, image_path)
		WHERE id = $1
		RETURNING `+columns,
		id, req.Season, req.Title, req.Description, req.TerritoryID, imagePath,
	)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, ErrImageNotFound
	case database.IsForeignKeyViolation(err):
		return nil, ErrUnknownTerritory
	case err != nil:
		return nil, err
	}
	return &img, nil
}

func (r *repository) Delete(ctx context.Context, id int64) (string, error) {
	var path string
	err := r.db.GetContext(ctx, &path, `DELETE FROM season_images WHERE id = $1 RETURNING image_path`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrImageNotFound
	}
	return path, err
}
