package tourpackage

import (
	"time"

	"github.com/devbhoomi/tourism-api/internal/pkg/content"
	"github.com/devbhoomi/tourism-api/internal/pkg/upload"
)

type CreatePackageRequest struct {
	Title       string   `json:"title" form:"title" validate:"required,min=2,max=255"`
	Slug        *string  `json:"slug" form:"slug" validate:"omitempty,slug,max=255"`
	Description *string  `json:"description" form:"description"`
	Duration    *string  `json:"duration" form:"duration" validate:"omitempty,max=100"`
	Price       *float64 `json:"price" form:"price" validate:"omitempty,gte=0"`
	Location    *string  `json:"location" form:"location" validate:"omitempty,max=255"`
	content.SEOInput
}

type UpdatePackageRequest struct {
	Title       *string  `json:"title" form:"title" validate:"omitempty,min=2,max=255"`
	Slug        *string  `json:"slug" form:"slug" validate:"omitempty,slug,max=255"`
	Description *string  `json:"description" form:"description"`
	Duration    *string  `json:"duration" form:"duration" validate:"omitempty,max=100"`
	Price       *float64 `json:"price" form:"price" validate:"omitempty,gte=0"`
	Location    *string  `json:"location" form:"location" validate:"omitempty,max=255"`
	content.SEOInput
}

type PackageResponse struct {
	ID            int64    `json:"id"`
	Title         string   `json:"title"`
	Slug          string   `json:"slug"`
	Description   *string  `json:"description"`
	Duration      *string  `json:"duration"`
	Price         *float64 `json:"price"`
	Location      *string  `json:"location"`
	FeaturedImage string   `json:"featured_image,omitempty"`
	content.SEO
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func PackageResponseFromEntity(p *Package, files *upload.Handler) *PackageResponse {
	return &PackageResponse{
		ID:            p.ID,
		Title:         p.Title,
		Slug:          p.Slug,
		Description:   p.Description,
		Duration:      p.Duration,
		Price:         p.Price,
		Location:      p.Location,
		FeaturedImage: files.URLPtr(p.FeaturedImage),
		SEO:           p.SEO,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
