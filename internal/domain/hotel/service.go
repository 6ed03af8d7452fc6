package hotel

import (
	"context"

	"github.com/lib/pq"

	"github.com/devbhoomi/tourism-api/internal/pkg/content"
	"github.com/devbhoomi/tourism-api/internal/pkg/slug"
	"github.com/devbhoomi/tourism-api/internal/pkg/upload"
)

const (
	imageDir        = "hotels"
	defaultCapacity = 2
)

// Service handles hotel and room business logic
type Service struct {
	repo  Repository
	files *upload.Handler
}

// NewService creates hotel service
func NewService(repo Repository, files *upload.Handler) *Service {
	return &Service{repo: repo, files: files}
}

func (s *Service) List(ctx context.Context, filter Filter) ([]*Hotel, error) {
	return s.repo.List(ctx, filter)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*Hotel, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetBySlug(ctx context.Context, slugValue string) (*Hotel, error) {
	return s.repo.GetBySlug(ctx, slugValue)
}

func (s *Service) Create(ctx context.Context, req *CreateHotelRequest, image *upload.Attachment) (*Hotel, error) {
	slugValue, err := s.resolveSlug(ctx, req.Slug, req.Name)
	if err != nil {
		return nil, err
	}

	h := &Hotel{
		Name:         req.Name,
		Slug:         slugValue,
		Description:  req.Description,
		Location:     req.Location,
		Category:     req.Category,
		DistrictID:   req.DistrictID,
		Price:        req.Price,
		StarRating:   req.StarRating,
		Amenities:    pq.StringArray(req.Amenities),
		ContactPhone: req.ContactPhone,
		ContactEmail: req.ContactEmail,
		SEO:          req.SEOInput.SEO(),
	}

	if image != nil {
		path, err := s.files.Store(ctx, image, upload.Options{Dir: imageDir, Prefix: "hotel"})
		if err != nil {
			return nil, err
		}
		h.FeaturedImage = &path
	}

	if err := s.repo.Create(ctx, h); err != nil {
		s.files.Remove(ctx, content.Deref(h.FeaturedImage))
		return nil, err
	}
	return h, nil
}

func (s *Service) Update(ctx context.Context, id int64, req *UpdateHotelRequest, image *upload.Attachment) (*Hotel, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Slug != nil && *req.Slug != current.Slug {
		taken, err := s.repo.SlugExists(ctx, *req.Slug)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrSlugTaken
		}
	}

	var newImage *string
	if image != nil {
		path, err := s.files.Store(ctx, image, upload.Options{Dir: imageDir, Prefix: "hotel"})
		if err != nil {
			return nil, err
		}
		newImage = &path
	}

	updated, err := s.repo.Update(ctx, id, req, newImage)
	if err != nil {
		s.files.Remove(ctx, content.Deref(newImage))
		return nil, err
	}
	if newImage != nil {
		s.files.Remove(ctx, content.Deref(current.FeaturedImage))
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	image, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	s.files.Remove(ctx, content.Deref(image))
	return nil
}

func (s *Service) ListRooms(ctx context.Context, hotelID int64) ([]*Room, error) {
	if _, err := s.repo.GetByID(ctx, hotelID); err != nil {
		return nil, err
	}
	return s.repo.ListRooms(ctx, hotelID)
}

func (s *Service) GetRoom(ctx context.Context, id int64) (*Room, error) {
	return s.repo.GetRoom(ctx, id)
}

func (s *Service) CreateRoom(ctx context.Context, hotelID int64, req *CreateRoomRequest) (*Room, error) {
	if _, err := s.repo.GetByID(ctx, hotelID); err != nil {
		return nil, err
	}

	room := &Room{
		HotelID:       hotelID,
		Name:          req.Name,
		RoomType:      req.RoomType,
		Description:   req.Description,
		PricePerNight: req.PricePerNight,
		Capacity:      req.Capacity,
	}
	if room.Capacity == 0 {
		room.Capacity = defaultCapacity
	}

	if err := s.repo.CreateRoom(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *Service) UpdateRoom(ctx context.Context, id int64, req *UpdateRoomRequest) (*Room, error) {
	return s.repo.UpdateRoom(ctx, id, req)
}

func (s *Service) DeleteRoom(ctx context.Context, id int64) error {
	return s.repo.DeleteRoom(ctx, id)
}

func (s *Service) resolveSlug(ctx context.Context, explicit *string, name string) (string, error) {
	if explicit != nil && *explicit != "" {
		taken, err := s.repo.SlugExists(ctx, *explicit)
		if err != nil {
			return "", err
		}
		if taken {
			return "", ErrSlugTaken
		}
		return *explicit, nil
	}
	return slug.Unique(ctx, name, s.repo.SlugExists)
}
