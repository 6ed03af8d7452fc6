package territory

import (
	"time"

	"github.com/devbhoomi/tourism-api/internal/pkg/content"
	"github.com/devbhoomi/tourism-api/internal/pkg/upload"
)

// CreateTerritoryRequest represents territory creation
type CreateTerritoryRequest struct {
	Title       string  `json:"title" form:"title" validate:"required,min=2,max=255"`
	Slug        *string `json:"slug" form:"slug" validate:"omitempty,slug,max=255"`
	Capital     *string `json:"capital" form:"capital" validate:"omitempty,max=255"`
	Description *string `json:"description" form:"description"`
	content.SEOInput
}

// UpdateTerritoryRequest represents a partial update; absent fields are kept
type UpdateTerritoryRequest struct {
	Title       *string `json:"title" form:"title" validate:"omitempty,min=2,max=255"`
	Slug        *string `json:"slug" form:"slug" validate:"omitempty,slug,max=255"`
	Capital     *string `json:"capital" form:"capital" validate:"omitempty,max=255"`
	Description *string `json:"description" form:"description"`
	content.SEOInput
}

// TerritoryResponse represents territory in API response
type TerritoryResponse struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	Slug          string  `json:"slug"`
	Capital       *string `json:"capital"`
	Description   *string `json:"description"`
	FeaturedImage string  `json:"featured_image,omitempty"`
	content.SEO
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TerritoryResponseFromEntity converts entity to response
func TerritoryResponseFromEntity(t *Territory, files *upload.Handler) *TerritoryResponse {
	return &TerritoryResponse{
		ID:            t.ID,
		Title:         t.Title,
		Slug:          t.Slug,
		Capital:       t.Capital,
		Description:   t.Description,
		FeaturedImage: files.URLPtr(t.FeaturedImage),
		SEO:           t.SEO,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}
