package wildlife

import (
	"time"

	"github.com/devbhoomi/tourism-api/internal/pkg/content"
	"github.com/devbhoomi/tourism-api/internal/pkg/upload"
)

type CreateSanctuaryRequest struct {
	Name            string   `json:"name" form:"name" validate:"required,min=2,max=255"`
	Slug            *string  `json:"slug" form:"slug" validate:"omitempty,slug,max=255"`
	Description     *string  `json:"description" form:"description"`
	Location        *string  `json:"location" form:"location" validate:"omitempty,max=255"`
	StateName       *string  `json:"state_name" form:"state_name" validate:"omitempty,max=255"`
	EstablishedYear *int     `json:"established_year" form:"established_year" validate:"omitempty,min=1800,max=2100"`
	AreaSqKm        *float64 `json:"area_sq_km" form:"area_sq_km" validate:"omitempty,gte=0"`
	BestTimeToVisit *string  `json:"best_time_to_visit" form:"best_time_to_visit" validate:"omitempty,max=255"`
	content.SEOInput
}

type UpdateSanctuaryRequest struct {
	Name            *string  `json:"name" form:"name" validate:"omitempty,min=2,max=255"`
	Slug            *string  `json:"slug" form:"slug" validate:"omitempty,slug,max=255"`
	Description     *string  `json:"description" form:"description"`
	Location        *string  `json:"location" form:"location" validate:"omitempty,max=255"`
	StateName       *string  `json:"state_name" form:"state_name" validate:"omitempty,max=255"`
	EstablishedYear *int     `json:"established_year" form:"established_year" validate:"omitempty,min=1800,max=2100"`
	AreaSqKm        *float64 `json:"area_sq_km" form:"area_sq_km" validate:"omitempty,gte=0"`
	BestTimeToVisit *string  `json:"best_time_to_visit" form:"best_time_to_visit" validate:"omitempty,max=255"`
	content.SEOInput
}

type SanctuaryResponse struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	Slug            string   `json:"slug"`
	Description     *string  `json:"description"`
	Location        *string  `json:"location"`
	StateName       *string  `json:"state_name"`
	EstablishedYear *int     `json:"established_year"`
	AreaSqKm        *float64 `json:"area_sq_km"`
	BestTimeToVisit *string  `json:"best_time_to_visit"`
	FeaturedImage   string   `json:"featured_image,omitempty"`
	content.SEO
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func SanctuaryResponseFromEntity(s *Sanctuary, files *upload.Handler) *SanctuaryResponse {
	return &SanctuaryResponse{
		ID:              s.ID,
		Name:            s.Name,
		Slug:            s.Slug,
		Description:     s.Description,
		Location:        s.Location,
		StateName:       s.StateName,
		EstablishedYear: s.EstablishedYear,
		AreaSqKm:        s.AreaSqKm,
		BestTimeToVisit: s.BestTimeToVisit,
		FeaturedImage:   files.URLPtr(s.FeaturedImage),
		SEO:             s.SEO,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}
