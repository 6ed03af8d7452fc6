package attraction

import (
	"time"

	"github.com/devbhoomi/tourism-api/internal/pkg/content"
	"github.com/devbhoomi/tourism-api/internal/pkg/upload"
)

type CreateAttractionRequest struct {
	Name        string  `json:"name" form:"name" validate:"required,min=2,max=255"`
	Slug        *string `json:"slug" form:"slug" validate:"omitempty,slug,max=255"`
	Description *string `json:"description" form:"description"`
	Location    *string `json:"location" form:"location" validate:"omitempty,max=255"`
	DistrictID  *int64  `json:"district_id" form:"district_id" validate:"omitempty,gt=0"`
	content.SEOInput
}

type UpdateAttractionRequest struct {
	Name        *string `json:"name" form:"name" validate:"omitempty,min=2,max=255"`
	Slug        *string `json:"slug" form:"slug" validate:"omitempty,slug,max=255"`
	Description *string `json:"description" form:"description"`
	Location    *string `json:"location" form:"location" validate:"omitempty,max=255"`
	DistrictID  *int64  `json:"district_id" form:"district_id" validate:"omitempty,gt=0"`
	content.SEOInput
}

type AttractionResponse struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Slug          string  `json:"slug"`
	Description   *string `json:"description"`
	Location      *string `json:"location"`
	DistrictID    *int64  `json:"district_id"`
	FeaturedImage string  `json:"featured_image,omitempty"`
	content.SEO
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func AttractionResponseFromEntity(a *Attraction, files *upload.Handler) *AttractionResponse {
	return &AttractionResponse{
		ID:            a.ID,
		Name:          a.Name,
		Slug:          a.Slug,
		Description:   a.Description,
		Location:      a.Location,
		DistrictID:    a.DistrictID,
		FeaturedImage: files.URLPtr(a.FeaturedImage),
		SEO:           a.SEO,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}
