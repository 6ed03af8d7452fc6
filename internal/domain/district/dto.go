package district

import (
	"time"

	"github.com/devbhoomi/tourism-api/internal/pkg/content"
	"github.com/devbhoomi/tourism-api/internal/pkg/upload"
)

type CreateDistrictRequest struct {
	Name         string  `json:"name" form:"name" validate:"required,min=2,max=255"`
	Slug         *string `json:"slug" form:"slug" validate:"omitempty,slug,max=255"`
	StateName    string  `json:"state_name" form:"state_name" validate:"required,max=255"`
	Description  *string `json:"description" form:"description"`
	Headquarters *string `json:"headquarters" form:"headquarters" validate:"omitempty,max=255"`
	content.SEOInput
}

type UpdateDistrictRequest struct {
	Name         *string `json:"name" form:"name" validate:"omitempty,min=2,max=255"`
	Slug         *string `json:"slug" form:"slug" validate:"omitempty,slug,max=255"`
	StateName    *string `json:"state_name" form:"state_name" validate:"omitempty,max=255"`
	Description  *string `json:"description" form:"description"`
	Headquarters *string `json:"headquarters" form:"headquarters" validate:"omitempty,max=255"`
	content.SEOInput
}

type CreateImageRequest struct {
	Caption *string `json:"caption" form:"caption" validate:"omitempty,max=500"`
}

type DistrictResponse struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Slug          string  `json:"slug"`
	StateName     string  `json:"state_name"`
	Description   *string `json:"description"`
	Headquarters  *string `json:"headquarters"`
	FeaturedImage string  `json:"featured_image,omitempty"`
	content.SEO
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ImageResponse struct {
	ID         int64     `json:"id"`
	DistrictID int64     `json:"district_id"`
	ImageURL   string    `json:"image_url"`
	Caption    *string   `json:"caption"`
	CreatedAt  time.Time `json:"created_at"`
}

func DistrictResponseFromEntity(d *District, files *upload.Handler) *DistrictResponse {
	return &DistrictResponse{
		ID:            d.ID,
		Name:          d.Name,
		Slug:          d.Slug,
		StateName:     d.StateName,
		Description:   d.Description,
		Headquarters:  d.Headquarters,
		FeaturedImage: files.URLPtr(d.FeaturedImage),
		SEO:           d.SEO,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func ImageResponseFromEntity(img *Image, files *upload.Handler) *ImageResponse {
	return &ImageResponse{
		ID:         img.ID,
		DistrictID: img.DistrictID,
		ImageURL:   files.URL(img.ImagePath),
		Caption:    img.Caption,
		CreatedAt:  img.CreatedAt,
	}
}
