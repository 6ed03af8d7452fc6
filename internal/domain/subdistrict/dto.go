package subdistrict

import (
	"time"

	"github.com/devbhoomi/tourism-api/internal/pkg/content"
	"github.com/devbhoomi/tourism-api/internal/pkg/upload"
)

type CreateSubdistrictRequest struct {
	Title       string  `json:"title" form:"title" validate:"required,min=2,max=255"`
	Slug        *string `json:"slug" form:"slug" validate:"omitempty,slug,max=255"`
	DistrictID  int64   `json:"district_id" form:"district_id" validate:"required,gt=0"`
	Description *string `json:"description" form:"description"`
	Location    *string `json:"location" form:"location" validate:"omitempty,max=255"`
	content.SEOInput
}

type UpdateSubdistrictRequest struct {
	Title       *string `json:"title" form:"title" validate:"omitempty,min=2,max=255"`
	Slug        *string `json:"slug" form:"slug" validate:"omitempty,slug,max=255"`
	DistrictID  *int64  `json:"district_id" form:"district_id" validate:"omitempty,gt=0"`
	Description *string `json:"description" form:"description"`
	Location    *string `json:"location" form:"location" validate:"omitempty,max=255"`
	content.SEOInput
}

type SubdistrictResponse struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	Slug          string  `json:"slug"`
	DistrictID    int64   `json:"district_id"`
	Description   *string `json:"description"`
	Location      *string `json:"location"`
	FeaturedImage string  `json:"featured_image,omitempty"`
	content.SEO
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func SubdistrictResponseFromEntity(s *Subdistrict, files *upload.Handler) *SubdistrictResponse {
	return &SubdistrictResponse{
		ID:            s.ID,
		Title:         s.Title,
		Slug:          s.Slug,
		DistrictID:    s.DistrictID,
		Description:   s.Description,
		Location:      s.Location,
		FeaturedImage: files.URLPtr(s.FeaturedImage),
		SEO:           s.SEO,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}
