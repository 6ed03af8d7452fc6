package state

import (
	"context"
	"database/sql"
	"errors"
)

const historyColumns = `id, state_name, title, content, image, created_at, updated_at`

func (r *repository) ListImages(ctx context.Context, stateName string) ([]*Image, error) {
	images := []*Image{}
	err := r.db.SelectContext(ctx, &images, `
		SELECT id, state_name, image_path, caption, created_at
		FROM state_images
		WHERE state_name = $1
		ORDER BY created_at DESC, id DESC
	`, stateName)
	return images, err
}

func (r *repository) CreateImage(ctx context.Context, img *Image) error {
	return r.db.QueryRowxContext(ctx, `
		INSERT INTO state_images (state_name, image_path, caption)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, img.StateName, img.ImagePath, img.Caption).Scan(&img.ID, &img.CreatedAt)
}

func (r *repository) DeleteImage(ctx context.Context, id int64) (string, error) {
	var path string
	err := r.db.GetContext(ctx, &path, `DELETE FROM state_images WHERE id = $1 RETURNING image_path`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrImageNotFound
	}
	return path, err
}

func (r *repository) ListHistory(ctx context.Context, stateName string) ([]*History, error) {
	entries := []*History{}
	err := r.db.SelectContext(ctx, &entries, `
		SELECT `+historyColumns+` FROM state_history
		WHERE state_name = $1
		ORDER BY created_at ASC, id ASC
	`, stateName)
	return entries, err
}

func (r *repository) GetHistory(ctx context.Context, id int64) (*History, error) {
	var h History
	err := r.db.GetContext(ctx, &h, `SELECT `+historyColumns+` FROM state_history WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrHistoryNotFound
	}
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *repository) CreateHistory(ctx context.Context, h *History) error {
	return r.db.QueryRowxContext(ctx, `
		INSERT INTO state_history (state_name, title, content, image)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, h.StateName, h.Title, h.Content, h.Image).Scan(&h.ID, &h.CreatedAt, &h.UpdatedAt)
}

func (r *repository) UpdateHistory(ctx context.Context, id int64, req *UpdateHistoryRequest, image *string) (*History, error) {
	var h History
	err := r.db.GetContext(ctx, &h, `
		UPDATE state_history SET
			title = COALESCE($2, title),
			content = COALESCE($3, content),
			image = COALESCE($4, image),
			updated_at = NOW()
		WHERE id = $1
		RETURNING `+historyColumns, id, req.Title, req.Content, image)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrHistoryNotFound
	}
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *repository) DeleteHistory(ctx context.Context, id int64) (*string, error) {
	var image sql.NullString
	err := r.db.GetContext(ctx, &image, `DELETE FROM state_history WHERE id = $1 RETURNING image`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrHistoryNotFound
	}
	if err != nil {
		return nil, err
	}
	if !image.Valid {
		return nil, nil
	}
	return &image.String, nil
}
