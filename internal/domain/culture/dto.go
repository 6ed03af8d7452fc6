package culture

import (
	"time"

	"github.com/devbhoomi/tourism-api/internal/pkg/content"
	"github.com/devbhoomi/tourism-api/internal/pkg/upload"
)

type CreateInfoRequest struct {
	Title       string  `json:"title" form:"title" validate:"required,min=2,max=255"`
	Slug        *string `json:"slug" form:"slug" validate:"omitempty,slug,max=255"`
	Category    string  `json:"category" form:"category" validate:"required,max=100"`
	StateName   *string `json:"state_name" form:"state_name" validate:"omitempty,max=255"`
	Description *string `json:"description" form:"description"`
	content.SEOInput
}

type UpdateInfoRequest struct {
	Title       *string `json:"title" form:"title" validate:"omitempty,min=2,max=255"`
	Slug        *string `json:"slug" form:"slug" validate:"omitempty,slug,max=255"`
	Category    *string `json:"category" form:"category" validate:"omitempty,max=100"`
	StateName   *string `json:"state_name" form:"state_name" validate:"omitempty,max=255"`
	Description *string `json:"description" form:"description"`
	content.SEOInput
}

type InfoResponse struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	Slug          string  `json:"slug"`
	Category      string  `json:"category"`
	StateName     *string `json:"state_name"`
	Description   *string `json:"description"`
	FeaturedImage string  `json:"featured_image,omitempty"`
	content.SEO
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func InfoResponseFromEntity(i *Info, files *upload.Handler) *InfoResponse {
	return &InfoResponse{
		ID:            i.ID,
		Title:         i.Title,
		Slug:          i.Slug,
		Category:      i.Category,
		StateName:     i.StateName,
		Description:   i.Description,
		FeaturedImage: files.URLPtr(i.FeaturedImage),
		SEO:           i.SEO,
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
	}
}
