package webstory

import (
	"context"

	"github.com/devbhoomi/tourism-api/internal/pkg/content"
	"github.com/devbhoomi/tourism-api/internal/pkg/slug"
	"github.com/devbhoomi/tourism-api/internal/pkg/storage"
	"github.com/devbhoomi/tourism-api/internal/pkg/upload"
)

// Covers may be short clips as well as stills.
var storeOptions = upload.Options{Dir: "web-stories", Prefix: "story", Category: storage.CategoryMedia}

type Service struct {
	repo  Repository
	files *upload.Handler
}

func NewService(repo Repository, files *upload.Handler) *Service {
	return &Service{repo: repo, files: files}
}

func (s *Service) List(ctx context.Context) ([]*Story, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*Story, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetBySlug(ctx context.Context, slugValue string) (*Story, error) {
	return s.repo.GetBySlug(ctx, slugValue)
}

func (s *Service) Create(ctx context.Context, req *CreateStoryRequest, cover *upload.Attachment) (*Story, error) {
	slugValue, err := s.resolveSlug(ctx, req.Slug, req.Title)
	if err != nil {
		return nil, err
	}

	story := &Story{
		Title:       req.Title,
		Slug:        slugValue,
		Description: req.Description,
		Content:     req.Content,
		SEO:         req.SEOInput.SEO(),
	}

	if cover != nil {
		path, err := s.files.Store(ctx, cover, storeOptions)
		if err != nil {
			return nil, err
		}
		story.CoverImage = &path
	}

	if err := s.repo.Create(ctx, story); err != nil {
		s.files.Remove(ctx, content.Deref(story.CoverImage))
		return nil, err
	}
	return story, nil
}

func (s *Service) Update(ctx context.Context, id int64, req *UpdateStoryRequest, cover *upload.Attachment) (*Story, error) {
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

	var newCover *string
	if cover != nil {
		path, err := s.files.Store(ctx, cover, storeOptions)
		if err != nil {
			return nil, err
		}
		newCover = &path
	}

	updated, err := s.repo.Update(ctx, id, req, newCover)
	if err != nil {
		s.files.Remove(ctx, content.Deref(newCover))
		return nil, err
	}
	if newCover != nil {
		s.files.Remove(ctx, content.Deref(current.CoverImage))
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	cover, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	s.files.Remove(ctx, content.Deref(cover))
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
