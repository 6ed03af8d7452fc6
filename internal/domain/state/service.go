package state

import (
	"context"
	"errors"
	"strconv"

	"github.com/devbhoomi/tourism-api/internal/pkg/content"
	"github.com/devbhoomi/tourism-api/internal/pkg/slug"
	"github.com/devbhoomi/tourism-api/internal/pkg/upload"
)

const (
	imageDir   = "states"
	galleryDir = "states/gallery"
	historyDir = "states/history"
)

// Service handles state business logic
type Service struct {
	repo  Repository
	files *upload.Handler
}

// NewService creates state service
func NewService(repo Repository, files *upload.Handler) *Service {
	return &Service{repo: repo, files: files}
}

func (s *Service) List(ctx context.Context) ([]*State, error) {
	return s.repo.List(ctx)
}

// Get resolves a numeric id, a slug or a case-insensitive name
func (s *Service) Get(ctx context.Context, key string) (*State, error) {
	if id, err := strconv.ParseInt(key, 10, 64); err == nil && id > 0 {
		st, err := s.repo.GetByID(ctx, id)
		if err == nil {
			return st, nil
		}
		if !errors.Is(err, ErrStateNotFound) {
			return nil, err
		}
	}
	return s.repo.GetByKey(ctx, key)
}

func (s *Service) Create(ctx context.Context, req *CreateStateRequest, image *upload.Attachment) (*State, error) {
	slugValue, err := s.resolveSlug(ctx, req.Slug, req.Name)
	if err != nil {
		return nil, err
	}

	st := &State{
		Name:        req.Name,
		Slug:        slugValue,
		Capital:     req.Capital,
		Description: req.Description,
		SEO:         req.SEOInput.SEO(),
	}

	if image != nil {
		path, err := s.files.Store(ctx, image, upload.Options{Dir: imageDir, Prefix: "state"})
		if err != nil {
			return nil, err
		}
		st.FeaturedImage = &path
	}

	if err := s.repo.Create(ctx, st); err != nil {
		s.files.Remove(ctx, content.Deref(st.FeaturedImage))
		return nil, err
	}
	return st, nil
}

func (s *Service) Update(ctx context.Context, id int64, req *UpdateStateRequest, image *upload.Attachment) (*State, error) {
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
		path, err := s.files.Store(ctx, image, upload.Options{Dir: imageDir, Prefix: "state"})
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

// Delete removes the state, its images, history and districts, then their files
func (s *Service) Delete(ctx context.Context, id int64) error {
	files, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	s.files.Remove(ctx, files...)
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
