package hotel

import (
	"time"

	"github.com/devbhoomi/tourism-api/internal/pkg/content"
	"github.com/devbhoomi/tourism-api/internal/pkg/upload"
)

type CreateHotelRequest struct {
	Name         string   `json:"name" form:"name" validate:"required,min=2,max=255"`
	Slug         *string  `json:"slug" form:"slug" validate:"omitempty,slug,max=255"`
	Description  *string  `json:"description" form:"description"`
	Location     *string  `json:"location" form:"location" validate:"omitempty,max=255"`
	Category     *string  `json:"category" form:"category" validate:"omitempty,max=100"`
	DistrictID   *int64   `json:"district_id" form:"district_id" validate:"omitempty,gt=0"`
	Price        *float64 `json:"price" form:"price" validate:"omitempty,gte=0"`
	StarRating   *int     `json:"star_rating" form:"star_rating" validate:"omitempty,min=1,max=5"`
	Amenities    []string `json:"amenities" form:"amenities" validate:"omitempty,dive,min=1,max=100"`
	ContactPhone *string  `json:"contact_phone" form:"contact_phone" validate:"omitempty,max=50"`
	ContactEmail *string  `json:"contact_email" form:"contact_email" validate:"omitempty,email"`
	content.SEOInput
}

type UpdateHotelRequest struct {
	Name         *string  `json:"name" form:"name" validate:"omitempty,min=2,max=255"`
	Slug         *string  `json:"slug" form:"slug" validate:"omitempty,slug,max=255"`
	Description  *string  `json:"description" form:"description"`
	Location     *string  `json:"location" form:"location" validate:"omitempty,max=255"`
	Category     *string  `json:"category" form:"category" validate:"omitempty,max=100"`
	DistrictID   *int64   `json:"district_id" form:"district_id" validate:"omitempty,gt=0"`
	Price        *float64 `json:"price" form:"price" validate:"omitempty,gte=0"`
	StarRating   *int     `json:"star_rating" form:"star_rating" validate:"omitempty,min=1,max=5"`
	Amenities    []string `json:"amenities" form:"amenities" validate:"omitempty,dive,min=1,max=100"`
	ContactPhone *string  `json:"contact_phone" form:"contact_phone" validate:"omitempty,max=50"`
	ContactEmail *string  `json:"contact_email" form:"contact_email" validate:"omitempty,email"`
	content.SEOInput
}

type CreateRoomRequest struct {
	Name          string  `json:"name" form:"name" validate:"required,min=1,max=255"`
	RoomType      *string `json:"room_type" form:"room_type" validate:"omitempty,max=100"`
	Description   *string `json:"description" form:"description"`
	PricePerNight float64 `json:"price_per_night" form:"price_per_night" validate:"gte=0"`
	Capacity      int     `json:"capacity" form:"capacity" validate:"omitempty,min=1,max=50"`
}

type UpdateRoomRequest struct {
	Name          *string  `json:"name" form:"name" validate:"omitempty,min=1,max=255"`
	RoomType      *string  `json:"room_type" form:"room_type" validate:"omitempty,max=100"`
	Description   *string  `json:"description" form:"description"`
	PricePerNight *float64 `json:"price_per_night" form:"price_per_night" validate:"omitempty,gte=0"`
	Capacity      *int     `json:"capacity" form:"capacity" validate:"omitempty,min=1,max=50"`
}

type HotelResponse struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Slug          string   `json:"slug"`
	Description   *string  `json:"description"`
	Location      *string  `json:"location"`
	Category      *string  `json:"category"`
	DistrictID    *int64   `json:"district_id"`
	Price         *float64 `json:"price"`
	StarRating    *int     `json:"star_rating"`
	Amenities     []string `json:"amenities"`
	ContactPhone  *string  `json:"contact_phone"`
	ContactEmail  *string  `json:"contact_email"`
	FeaturedImage string   `json:"featured_image,omitempty"`
	content.SEO
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type RoomResponse struct {
	ID            int64     `json:"id"`
	HotelID       int64     `json:"hotel_id"`
	Name          string    `json:"name"`
	RoomType      *string   `json:"room_type"`
	Description   *string   `json:"description"`
	PricePerNight float64   `json:"price_per_night"`
	Capacity      int       `json:"capacity"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func HotelResponseFromEntity(h *Hotel, files *upload.Handler) *HotelResponse {
	amenities := []string(h.Amenities)
	if amenities == nil {
		amenities = []string{}
	}
	return &HotelResponse{
		ID:            h.ID,
		Name:          h.Name,
		Slug:          h.Slug,
		Description:   h.Description,
		Location:      h.Location,
		Category:      h.Category,
		DistrictID:    h.DistrictID,
		Price:         h.Price,
		StarRating:    h.StarRating,
		Amenities:     amenities,
		ContactPhone:  h.ContactPhone,
		ContactEmail:  h.ContactEmail,
		FeaturedImage: files.URLPtr(h.FeaturedImage),
		SEO:           h.SEO,
		CreatedAt:     h.CreatedAt,
		UpdatedAt:     h.UpdatedAt,
	}
}

func RoomResponseFromEntity(r *Room) *RoomResponse {
	return &RoomResponse{
		ID:            r.ID,
		HotelID:       r.HotelID,
		Name:          r.Name,
		RoomType:      r.RoomType,
		Description:   r.Description,
		PricePerNight: r.PricePerNight,
		Capacity:      r.Capacity,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}
