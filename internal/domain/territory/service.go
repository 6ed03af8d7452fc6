package territory

import (
	"context"

	"github.com/devbhoomi/tourism-api/internal/pkg/content"
	"github.com/devbhoomi/tourism-api/internal/pkg/slug"
	"github.com/devbhoomi/tourism-api/internal/pkg/upload"
)

const imageDir = "territories"

// Service handles territory business logic
type Service struct {
	repo  Repository
	files *upload.Handler
}

// NewService creates territory service
func NewService(repo Repository, files *upload.Handler) *Service {
	return &Service{repo: repo, files: files}
}

func (s *Service) List(ctx context.Context) ([]*Territory, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*Territory, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetBySlug(ctx context.Context, slugValue string) (*Territory, error) {
	return s.repo.GetBySlug(ctx, slugValue)
}

// Create stores the optional image, derives a unique slug and inserts the row
func (s *Service) Create(ctx context.Context, req *CreateTerritoryRequest, image *upload.Attachment) (*Territory, error) {
	slugValue, err := s.resolveSlug(ctx, req.Slug, req.Title)
	if err != nil {
		return nil, err
	}

	t := &Territory{
		Title:       req.Title,
		Slug:        slugValue,
		Capital:     req.Capital,
		Description: req.Description,
		SEO:         req.SEOInput.SEO(),
	}

	if image != nil {
		path, err := s.files.Store(ctx, image, upload.Options{Dir: imageDir, Prefix: "territory"})
		if err != nil {
			return nil, err
		}
		t.FeaturedImage = &path
	}

	if err := s.repo.Create(ctx, t); err != nil {
		s.files.Remove(ctx, content.Deref(t.FeaturedImage))
		return nil, err
	}
	return t, nil
}

// Update applies a partial update; a new image replaces and removes the old one
func (s *Service) Update(ctx context.Context, id int64, req *UpdateTerritoryRequest, image *upload.Attachment) (*Territory, error) {
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
		path, err := s.files.Store(ctx, image, upload.Options{Dir: imageDir, Prefix: "territory"})
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

// Delete removes the territory and every file owned by it or its children
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
