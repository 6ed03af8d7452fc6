package village

import (
	"time"

	"github.com/devbhoomi/tourism-api/internal/pkg/content"
	"github.com/devbhoomi/tourism-api/internal/pkg/upload"
)

type CreateVillageRequest struct {
	Name          string  `json:"name" form:"name" validate:"required,min=2,max=255"`
	Slug          *string `json:"slug" form:"slug" validate:"omitempty,slug,max=255"`
	TerritoryID   *int64  `json:"territory_id" form:"territory_id" validate:"omitempty,gt=0"`
	SubdistrictID *int64  `json:"subdistrict_id" form:"subdistrict_id" validate:"omitempty,gt=0"`
	Description   *string `json:"description" form:"description"`
	Population    *int    `json:"population" form:"population" validate:"omitempty,gte=0"`
	content.SEOInput
}

type UpdateVillageRequest struct {
	Name          *string `json:"name" form:"name" validate:"omitempty,min=2,max=255"`
	Slug          *string `json:"slug" form:"slug" validate:"omitempty,slug,max=255"`
	TerritoryID   *int64  `json:"territory_id" form:"territory_id" validate:"omitempty,gt=0"`
	SubdistrictID *int64  `json:"subdistrict_id" form:"subdistrict_id" validate:"omitempty,gt=0"`
	Description   *string `json:"description" form:"description"`
	Population    *int    `json:"population" form:"population" validate:"omitempty,gte=0"`
	content.SEOInput
}

type VillageResponse struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Slug          string  `json:"slug"`
	TerritoryID   *int64  `json:"territory_id"`
	SubdistrictID *int64  `json:"subdistrict_id"`
	Description   *string `json:"description"`
	Population    *int    `json:"population"`
	FeaturedImage string  `json:"featured_image,omitempty"`
	content.SEO
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func VillageResponseFromEntity(v *Village, files *upload.Handler) *VillageResponse {
	return &VillageResponse{
		ID:            v.ID,
		Name:          v.Name,
		Slug:          v.Slug,
		TerritoryID:   v.TerritoryID,
		SubdistrictID: v.SubdistrictID,
		Description:   v.Description,
		Population:    v.Population,
		FeaturedImage: files.URLPtr(v.FeaturedImage),
		SEO:           v.SEO,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}
