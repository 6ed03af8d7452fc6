package gallery

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

type Repository interface {
	Create(ctx context.Context, img *Image) error
	GetByID(ctx context.Context, id int64) (*Image, error)
	List(ctx context.Context, category *string) ([]*Image, error)
	Update(ctx context.Context, id int64, req *UpdateImageRequest, imagePath *string) (*Image, error)
	Delete(ctx context.Context, id int64) (string, error)
}

type repository struct {
	db *sqlx.DB
}

const columns = `id, title, description, category, location, image_path, created_at`

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, img *Image) error {
	return r.db.QueryRowxContext(ctx, `
		INSERT INTO gallery_images (title, description, category, location, image_path)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, img.Title, img.Description, img.Category, img.Location, img.ImagePath,
	).Scan(&img.ID, &img.CreatedAt)
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Image, error) {
	var img Image
	err := r.db.GetContext(ctx, &img, `SELECT `+columns+` FROM gallery_images WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrImageNotFound
	}
	if err != nil {
		return nil, err
	}
	return &img, nil
}

func (r *repository) List(ctx context.Context, category *string) ([]*Image, error) {
	images := []*Image{}
	err := r.db.SelectContext(ctx, &images, `
		SELECT `+columns+` FROM gallery_images
		WHERE ($1::TEXT IS NULL OR LOWER(category) = LOWER($1))
		ORDER BY created_at DESC, id DESC
	`, category)
	return images, err
}

func (r *repository) Update(ctx context.Context, id int64, req *UpdateImageRequest, imagePath *string) (*Image, error) {
	var img Image
	err := r.db.GetContext(ctx, &img, `
		UPDATE gallery_images SET
			title = COALESCE($2, title),
			description = COALESCE($3, description),
			category = COALESCE($4, category),
			location = COALESCE($5, location),
			image_path = COALESCE($6, image_path)
		WHERE id = $1
		RETURNING `+columns,
		id, req.Title, req.Description, req.Category, req.Location, imagePath,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrImageNotFound
	}
	if err != nil {
		return nil, err
	}
	return &img, nil
}

func (r *repository) Delete(ctx context.Context, id int64) (string, error) {
	var path string
	err := r.db.GetContext(ctx, &path, `DELETE FROM gallery_images WHERE id = $1 RETURNING image_path`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrImageNotFound
	}
	return path, err
}
