package season

import (
	"time"

	"github.com/devbhoomi/tourism-api/internal/pkg/upload"
)

type CreateImageRequest struct {
	Season      string  `json:"season" form:"season" validate:"required,season"`
	Title       *string `json:"title" form:"title" validate:"omitempty,max=255"`
	Description *string `json:"description" form:"description"`
	TerritoryID *int64  `json:"territory_id" form:"territory_id" validate:"omitempty,gt=0"`
}

type UpdateImageRequest struct {
	Season      *string `json:"season" form:"season" validate:"omitempty,season"`
	Title       *string `json:"title" form:"title" validate:"omitempty,max=255"`
	Description *string `json:"description" form:"description"`
	TerritoryID *int64  `json:"territory_id" form:"territory_id" validate:"omitempty,gt=0"`
}

type ImageResponse struct {
	ID          int64     `json:"id"`
	Season      string    `json:"season"`
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	TerritoryID *int64    `json:"territory_id"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}

func ImageResponseFromEntity(img *Image, files *upload.Handler) *ImageResponse {
	return &ImageResponse{
		ID:          img.ID,
		Season:      img.Season,
		Title:       img.Title,
		Description: img.Description,
		TerritoryID: img.TerritoryID,
		ImageURL:    files.URL(img.ImagePath),
		CreatedAt:   img.CreatedAt,
	}
}
