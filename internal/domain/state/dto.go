package state

import (
	"time"

	"github.com/devbhoomi/tourism-api/internal/pkg/content"
	"github.com/devbhoomi/tourism-api/internal/pkg/upload"
)

// CreateStateRequest represents state creation
type CreateStateRequest struct {
	Name        string  `json:"name" form:"name" validate:"required,min=2,max=255"`
	Slug        *string `json:"slug" form:"slug" validate:"omitempty,slug,max=255"`
	Capital     *string `json:"capital" form:"capital" validate:"omitempty,max=255"`
	Description *string `json:"description" form:"description"`
	content.SEOInput
}

// UpdateStateRequest represents a partial state update
type UpdateStateRequest struct {
	Name        *string `json:"name" form:"name" validate:"omitempty,min=2,max=255"`
	Slug        *string `json:"slug" form:"slug" validate:"omitempty,slug,max=255"`
	Capital     *string `json:"capital" form:"capital" validate:"omitempty,max=255"`
	Description *string `json:"description" form:"description"`
	content.SEOInput
}

// CreateImageRequest carries the caption of an uploaded state image
type CreateImageRequest struct {
	Caption *string `json:"caption" form:"caption" validate:"omitempty,max=500"`
}

// CreateHistoryRequest represents a new history entry for a state
type CreateHistoryRequest struct {
	Title   string  `json:"title" form:"title" validate:"required,min=2,max=255"`
	Content *string `json:"content" form:"content"`
}

// UpdateHistoryRequest represents a partial history update
type UpdateHistoryRequest struct {
	Title   *string `json:"title" form:"title" validate:"omitempty,min=2,max=255"`
	Content *string `json:"content" form:"content"`
}

// StateResponse represents state in API response
type StateResponse struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Slug          string  `json:"slug"`
	Capital       *string `json:"capital"`
	Description   *string `json:"description"`
	FeaturedImage string  `json:"featured_image,omitempty"`
	content.SEO
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ImageResponse represents a state image in API response
type ImageResponse struct {
	ID        int64     `json:"id"`
	StateName string    `json:"state_name"`
	ImageURL  string    `json:"image_url"`
	Caption   *string   `json:"caption"`
	CreatedAt time.Time `json:"created_at"`
}

// HistoryResponse represents a history entry in API response
type HistoryResponse struct {
	ID        int64     `json:"id"`
	StateName string    `json:"state_name"`
	Title     string    `json:"title"`
	Content   *string   `json:"content"`
	Image     string    `json:"image,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func StateResponseFromEntity(s *State, files *upload.Handler) *StateResponse {
	return &StateResponse{
		ID:            s.ID,
		Name:          s.Name,
		Slug:          s.Slug,
		Capital:       s.Capital,
		Description:   s.Description,
		FeaturedImage: files.URLPtr(s.FeaturedImage),
		SEO:           s.SEO,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func ImageResponseFromEntity(img *Image, files *upload.Handler) *ImageResponse {
	return &ImageResponse{
		ID:        img.ID,
		StateName: img.StateName,
		ImageURL:  files.URL(img.ImagePath),
		Caption:   img.Caption,
		CreatedAt: img.CreatedAt,
	}
}

func HistoryResponseFromEntity(h *History, files *upload.Handler) *HistoryResponse {
	return &HistoryResponse{
		ID:        h.ID,
		StateName: h.StateName,
		Title:     h.Title,
		Content:   h.Content,
		Image:     files.URLPtr(h.Image),
		CreatedAt: h.CreatedAt,
		UpdatedAt: h.UpdatedAt,
	}
}
