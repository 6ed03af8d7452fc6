package auth

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/devbhoomi/tourism-api/internal/pkg/database"
)

type Repository interface {
	Create(ctx context.Context, a *Admin) error
	GetByEmail(ctx context.Context, email string) (*Admin, error)
	GetByID(ctx context.Context, id int64) (*Admin, error)
	TouchLastLogin(ctx context.Context, id int64) error
}

type repository struct {
	db *sqlx.DB
}

const columns = `id, email, password_hash, name, role, last_login_at, created_at, updated_at`

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, a *Admin) error {
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO admins (email, password_hash, name, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, a.Email, a.PasswordHash, a.Name, a.Role,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if database.IsUniqueViolation(err, "admins_email_key") {
		return ErrEmailAlreadyExists
	}
	return err
}

func (r *repository) get(ctx context.Context, where string, arg interface{}) (*Admin, error) {
	var a Admin
	err := r.db.GetContext(ctx, &a, `SELECT `+columns+` FROM admins WHERE `+where, arg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAdminNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) GetByEmail(ctx context.Context, email string) (*Admin, error) {
	return r.get(ctx, "email = $1", email)
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Admin, error) {
	return r.get(ctx, "id = $1", id)
}

func (r *repository) TouchLastLogin(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `UPDATE admins SET last_login_at = NOW(), updated_at = NOW() WHERE id = $1`, id)
	return err
}
