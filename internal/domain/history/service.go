package history

import (
	"context"

	"github.com/devbhoomi/tourism-api/internal/pkg/content"
	"github.com/devbhoomi/tourism-api/internal/pkg/slug"
	"github.com/devbhoomi/tourism-api/internal/pkg/upload"
)

var storeOptions = upload.Options{Dir: "history", Prefix: "history"}

type Service struct {
	repo  Repository
	files *upload.Handler
}

func NewService(repo Repository, files *upload.Handler) *Service {
	return &Service{repo: repo, files: files}
}

func (s *Service) List(ctx context.Context) ([]*Entry, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*Entry, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetBySlug(ctx context.Context, slugValue string) (*Entry, error) {
	return s.repo.GetBySlug(ctx, slugValue)
}

func (s *Service) Create(ctx context.Context, req *CreateEntryRequest, image *upload.Attachment) (*Entry, error) {
	slugValue, err := s.resolveSlug(ctx, req.Slug, req.Title)
	if err != nil {
		return nil, err
	}

	entry := &Entry{
		Title:   req.Title,
		Slug:    slugValue,
		Period:  req.Period,
		Content: req.Content,
		SEO:     req.SEOInput.SEO(),
	}

	if image != nil {
		path, err := s.files.Store(ctx, image, storeOptions)
		if err != nil {
			return nil, err
		}
		entry.Image = &path
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		s.files.Remove(ctx, content.Deref(entry.Image))
		return nil, err
	}
	return entry, nil
}

func (s *Service) Update(ctx context.Context, id int64, req *UpdateEntryRequest, image *upload.Attachment) (*Entry, error) {
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
		path, err := s.files.Store(ctx, image, storeOptions)
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
		s.files.Remove(ctx, content.Deref(current.Image))
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
