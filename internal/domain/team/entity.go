package team

import "time"

type Member struct {
	ID           int64     `db:"id"`
	Name         string    `db:"name"`
	Designation  *string   `db:"designation"`
	Bio          *string   `db:"bio"`
	Email        *string   `db:"email"`
	Photo        *string   `db:"photo"`
	DisplayOrder int       `db:"display_order"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}
