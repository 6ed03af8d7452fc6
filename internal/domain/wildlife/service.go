package wildlife

import (
	"context"

	"github.com/devbhoomi/tourism-api/internal/pkg/content"
	"github.com/devbhoomi/tourism-api/internal/pkg/slug"
	"github.com/devbhoomi/tourism-api/internal/pkg/upload"
)

const imageDir = "wildlife"

type Service struct {
	repo  Repository
	files *upload.Handler
}

func NewService(repo Repository, files *upload.Handler) *Service {
	return &Service{repo: repo, files: files}
}

func (s *Service) List(ctx context.Context, stateName *string) ([]*Sanctuary, error) {
	return s.repo.List(ctx, stateName)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*Sanctuary, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetBySlug(ctx context.Context, slugValue string) (*Sanctuary, error) {
	return s.repo.GetBySlug(ctx, slugValue)
}

func (s *Service) Create(ctx context.Context, req *CreateSanctuaryRequest, image *upload.Attachment) (*Sanctuary, error) {
	slugValue, err := s.resolveSlug(ctx, req.Slug, req.Name)
	if err != nil {
		return nil, err
	}

	sanctuary := &Sanctuary{
		Name:            req.Name,
		Slug:            slugValue,
		Description:     req.Description,
		Location:        req.Location,
		StateName:       req.StateName,
		EstablishedYear: req.EstablishedYear,
		AreaSqKm:        req.AreaSqKm,
		BestTimeToVisit: req.BestTimeToVisit,
		SEO:             req.SEOInput.SEO(),
	}

	if image != nil {
		path, err := s.files.Store(ctx, image, upload.Options{Dir: imageDir, Prefix: "wildlife"})
		if err != nil {
			return nil, err
		}
		sanctuary.FeaturedImage = &path
	}

	if err := s.repo.Create(ctx, sanctuary); err != nil {
		s.files.Remove(ctx, content.Deref(sanctuary.FeaturedImage))
		return nil, err
	}
	return sanctuary, nil
}

func (s *Service) Update(ctx context.Context, id int64, req *UpdateSanctuaryRequest, image *upload.Attachment) (*Sanctuary, error) {
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
		path, err := s.files.Store(ctx, image, upload.Options{Dir: imageDir, Prefix: "wildlife"})
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
