package subdistrict

import (
	"context"

	"github.com/devbhoomi/tourism-api/internal/pkg/content"
	"github.com/devbhoomi/tourism-api/internal/pkg/slug"
	"github.com/devbhoomi/tourism-api/internal/pkg/upload"
)

const imageDir = "subdistricts"

// Service handles subdistrict business logic
type Service struct {
	repo  Repository
	files *upload.Handler
}

// NewService creates subdistrict service
func NewService(repo Repository, files *upload.Handler) *Service {
	return &Service{repo: repo, files: files}
}

func (s *Service) List(ctx context.Context, districtID *int64) ([]*Subdistrict, error) {
	return s.repo.List(ctx, districtID)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*Subdistrict, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetBySlug(ctx context.Context, slugValue string) (*Subdistrict, error) {
	return s.repo.GetBySlug(ctx, slugValue)
}

func (s *Service) Create(ctx context.Context, req *CreateSubdistrictRequest, image *upload.Attachment) (*Subdistrict, error) {
	slugValue, err := s.resolveSlug(ctx, req.Slug, req.Title)
	if err != nil {
		return nil, err
	}

	sd := &Subdistrict{
		Title:       req.Title,
		Slug:        slugValue,
		DistrictID:  req.DistrictID,
		Description: req.Description,
		Location:    req.Location,
		SEO:         req.SEOInput.SEO(),
	}

	if image != nil {
		path, err := s.files.Store(ctx, image, upload.Options{Dir: imageDir, Prefix: "subdistrict"})
		if err != nil {
			return nil, err
		}
		sd.FeaturedImage = &path
	}

	if err := s.repo.Create(ctx, sd); err != nil {
		s.files.Remove(ctx, content.Deref(sd.FeaturedImage))
		return nil, err
	}
	return sd, nil
}

func (s *Service) Update(ctx context.Context, id int64, req *UpdateSubdistrictRequest, image *upload.Attachment) (*Subdistrict, error) {
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
		path, err := s.files.Store(ctx, image, upload.Options{Dir: imageDir, Prefix: "subdistrict"})
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
	files, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	s.files.Remove(ctx, files...)
	return nil
}

func (s *Service) resolveSlug(ctx context.Context, explicit *string, title string) (string, error) {
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
	return slug.Unique(ctx, title, s.repo.SlugExists)
}
