package team

import (
	"time"

	"github.com/devbhoomi/tourism-api/internal/pkg/upload"
)

type CreateMemberRequest struct {
	Name         string  `json:"name" form:"name" validate:"required,min=2,max=255"`
	Designation  *string `json:"designation" form:"designation" validate:"omitempty,max=255"`
	Bio          *string `json:"bio" form:"bio"`
	Email        *string `json:"email" form:"email" validate:"omitempty,email"`
	DisplayOrder *int    `json:"display_order" form:"display_order" validate:"omitempty,gte=0"`
}

type UpdateMemberRequest struct {
	Name         *string `json:"name" form:"name" validate:"omitempty,min=2,max=255"`
	Designation  *string `json:"designation" form:"designation" validate:"omitempty,max=255"`
	Bio          *string `json:"bio" form:"bio"`
	Email        *string `json:"email" form:"email" validate:"omitempty,email"`
	DisplayOrder *int    `json:"display_order" form:"display_order" validate:"omitempty,gte=0"`
}

type MemberResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Designation  *string   `json:"designation"`
	Bio          *string   `json:"bio"`
	Email        *string   `json:"email"`
	Photo        string    `json:"photo,omitempty"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func MemberResponseFromEntity(m *Member, files *upload.Handler) *MemberResponse {
	return &MemberResponse{
		ID:           m.ID,
		Name:         m.Name,
		Designation:  m.Designation,
		Bio:          m.Bio,
		Email:        m.Email,
		Photo:        files.URLPtr(m.Photo),
		DisplayOrder: m.DisplayOrder,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
