package history

import (
	"time"

	"github.com/devbhoomi/tourism-api/internal/pkg/content"
	"github.com/devbhoomi/tourism-api/internal/pkg/upload"
)

type CreateEntryRequest struct {
	Title   string  `json:"title" form:"title" validate:"required,min=2,max=255"`
	Slug    *string `json:"slug" form:"slug" validate:"omitempty,slug,max=255"`
	Period  *string `json:"period" form:"period" validate:"omitempty,max=255"`
	Content *string `json:"content" form:"content"`
	content.SEOInput
}

type UpdateEntryRequest struct {
	Title   *string `json:"title" form:"title" validate:"omitempty,min=2,max=255"`
	Slug    *string `json:"slug" form:"slug" validate:"omitempty,slug,max=255"`
	Period  *string `json:"period" form:"period" validate:"omitempty,max=255"`
	Content *string `json:"content" form:"content"`
	content.SEOInput
}

type EntryResponse struct {
	ID      int64   `json:"id"`
	Title   string  `json:"title"`
	Slug    string  `json:"slug"`
	Period  *string `json:"period"`
	Content *string `json:"content"`
	Image   string  `json:"image,omitempty"`
	content.SEO
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func EntryResponseFromEntity(e *Entry, files *upload.Handler) *EntryResponse {
	return &EntryResponse{
		ID:        e.ID,
		Title:     e.Title,
		Slug:      e.Slug,
		Period:    e.Period,
		Content:   e.Content,
		Image:     files.URLPtr(e.Image),
		SEO:       e.SEO,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
