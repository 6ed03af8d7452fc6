package gallery

import (
	"time"

	"github.com/devbhoomi/tourism-api/internal/pkg/upload"
)

type CreateImageRequest struct {
	Title       *string `json:"title" form:"title" validate:"omitempty,max=255"`
	Description *string `json:"description" form:"description"`
	Category    *string `json:"category" form:"category" validate:"omitempty,max=100"`
	Location    *string `json:"location" form:"location" validate:"omitempty,max=255"`
}

type UpdateImageRequest struct {
	Title       *string `json:"title" form:"title" validate:"omitempty,max=255"`
	Description *string `json:"description" form:"description"`
	Category    *string `json:"category" form:"category" validate:"omitempty,max=100"`
	Location    *string `json:"location" form:"location" validate:"omitempty,max=255"`
}

type ImageResponse struct {
	ID          int64     `json:"id"`
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Category    *string   `json:"category"`
	Location    *string   `json:"location"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}

func ImageResponseFromEntity(img *Image, files *upload.Handler) *ImageResponse {
	return &ImageResponse{
		ID:          img.ID,
		Title:       img.Title,
		Description: img.Description,
		Category:    img.Category,
		Location:    img.Location,
		ImageURL:    files.URL(img.ImagePath),
		CreatedAt:   img.CreatedAt,
	}
}
