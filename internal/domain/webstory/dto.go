package webstory

import (
	"time"

	"github.com/devbhoomi/tourism-api/internal/pkg/content"
	"github.com/devbhoomi/tourism-api/internal/pkg/upload"
)

type CreateStoryRequest struct {
	Title       string  `json:"title" form:"title" validate:"required,min=2,max=255"`
	Slug        *string `json:"slug" form:"slug" validate:"omitempty,slug,max=255"`
	Description *string `json:"description" form:"description"`
	Content     *string `json:"content" form:"content"`
	content.SEOInput
}

type UpdateStoryRequest struct {
	Title       *string `json:"title" form:"title" validate:"omitempty,min=2,max=255"`
	Slug        *string `json:"slug" form:"slug" validate:"omitempty,slug,max=255"`
	Description *string `json:"description" form:"description"`
	Content     *string `json:"content" form:"content"`
	content.SEOInput
}

type StoryResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Slug        string  `json:"slug"`
	Description *string `json:"description"`
	Content     *string `json:"content"`
	CoverImage  string  `json:"cover_image,omitempty"`
	content.SEO
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func StoryResponseFromEntity(s *Story, files *upload.Handler) *StoryResponse {
	return &StoryResponse{
		ID:          s.ID,
		Title:       s.Title,
		Slug:        s.Slug,
		Description: s.Description,
		Content:     s.Content,
		CoverImage:  files.URLPtr(s.CoverImage),
		SEO:         s.SEO,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
