package team

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

type Repository interface {
	Create(ctx context.Context, m *Member) error
	GetByID(ctx context.Context, id int64) (*Member, error)
	List(ctx context.Context) ([]*Member, error)
	Update(ctx context.Context, id int64, req *UpdateMemberRequest, photo *string) (*Member, error)
	Delete(ctx context.Context, id int64) (*string, error)
}

type repository struct {
	db *sqlx.DB
}

const columns = `id, name, designation, bio, email, photo, display_order, created_at, updated_at`

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, m *Member) error {
	return r.db.QueryRowxContext(ctx, `
		INSERT INTO team_members (name, designation, bio, email, photo, display_order)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, m.Name, m.Designation, m.Bio, m.Email, m.Photo, m.DisplayOrder,
	).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Member, error) {
	var m Member
	err := r.db.GetContext(ctx, &m, `SELECT `+columns+` FROM team_members WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMemberNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *repository) List(ctx context.Context) ([]*Member, error) {
	members := []*Member{}
	err := r.db.SelectContext(ctx, &members, `SELECT `+columns+` FROM team_members ORDER BY display_order ASC, name ASC`)
	return members, err
}

func (r *repository) Update(ctx context.Context, id int64, req *UpdateMemberRequest, photo *string) (*Member, error) {
	var m Member
	err := r.db.GetContext(ctx, &m, `
		UPDATE team_members SET
			name = COALESCE($2, name),
			designation = COALESCE($3, designation),
			bio = COALESCE($4, bio),
			email = COALESCE($5, email),
			photo = COALESCE($6, photo),
			display_order = COALESCE($7, display_order),
			updated_at = NOW()
		WHERE id = $1
		RETURNING `+columns,
		id, req.Name, req.Designation, req.Bio, req.Email, photo, req.DisplayOrder,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMemberNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *repository) Delete(ctx context.Context, id int64) (*string, error) {
	var photo sql.NullString
	err := r.db.GetContext(ctx, &photo, `DELETE FROM team_members WHERE id = $1 RETURNING photo`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMemberNotFound
	}
	if err != nil || !photo.Valid {
		return nil, err
	}
	return &photo.String, nil
}
