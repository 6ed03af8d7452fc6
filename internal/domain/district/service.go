package district

import (
	"context"

	"github.com/devbhoomi/tourism-api/internal/pkg/content"
	"github.com/devbhoomi/tourism-api/internal/pkg/slug"
	"github.com/devbhoomi/tourism-api/internal/pkg/storage"
	"github.com/devbhoomi/tourism-api/internal/pkg/upload"
)

const (
	imageDir   = "districts"
	galleryDir = "districts/gallery"
)

// Service handles district business logic
type Service struct {
	repo  Repository
	files *upload.Handler
}

// NewService creates district service
func NewService(repo Repository, files *upload.Handler) *Service {
	return &Service{repo: repo, files: files}
}

func (s *Service) List(ctx context.Context) ([]*District, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByState(ctx context.Context, stateName string) ([]*District, error) {
	return s.repo.ListByState(ctx, stateName)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*District, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetBySlug(ctx context.Context, slugValue string) (*District, error) {
	return s.repo.GetBySlug(ctx, slugValue)
}

// Create checks the parent state, derives a unique slug and stores the optional image
func (s *Service) Create(ctx context.Context, req *CreateDistrictRequest, image *upload.Attachment) (*District, error) {
	stateName, err := s.repo.ResolveStateName(ctx, req.StateName)
	if err != nil {
		return nil, err
	}

	slugValue, err := s.resolveSlug(ctx, req.Slug, req.Name)
	if err != nil {
		return nil, err
	}

	d := &District{
		Name:         req.Name,
		Slug:         slugValue,
		StateName:    stateName,
		Description:  req.Description,
		Headquarters: req.Headquarters,
		SEO:          req.SEOInput.SEO(),
	}

	if image != nil {
		path, err := s.files.Store(ctx, image, upload.Options{Dir: imageDir, Prefix: "district"})
		if err != nil {
			return nil, err
		}
		d.FeaturedImage = &path
	}

	if err := s.repo.Create(ctx, d); err != nil {
		s.files.Remove(ctx, content.Deref(d.FeaturedImage))
		return nil, err
	}
	return d, nil
}

func (s *Service) Update(ctx context.Context, id int64, req *UpdateDistrictRequest, image *upload.Attachment) (*District, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.StateName != nil {
		stateName, err := s.repo.ResolveStateName(ctx, *req.StateName)
		if err != nil {
			return nil, err
		}
		req.StateName = &stateName
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
		path, err := s.files.Store(ctx, image, upload.Options{Dir: imageDir, Prefix: "district"})
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

// Delete removes the district with its images, subdistricts, villages and attractions
func (s *Service) Delete(ctx context.Context, id int64) error {
	files, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	s.files.Remove(ctx, files...)
	return nil
}

func (s *Service) ListImages(ctx context.Context, districtID int64) ([]*Image, error) {
	if _, err := s.repo.GetByID(ctx, districtID); err != nil {
		return nil, err
	}
	return s.repo.ListImages(ctx, districtID)
}

func (s *Service) AddImage(ctx context.Context, districtID int64, req *CreateImageRequest, image *upload.Attachment) (*Image, error) {
	if image == nil {
		return nil, ErrImageRequired
	}
	if _, err := s.repo.GetByID(ctx, districtID); err != nil {
		return nil, err
	}

	path, err := s.files.Store(ctx, image, upload.Options{Dir: galleryDir, Prefix: "district", Category: storage.CategoryGallery})
	if err != nil {
		return nil, err
	}

	img := &Image{DistrictID: districtID, ImagePath: path, Caption: req.Caption}
	if err := s.repo.CreateImage(ctx, img); err != nil {
		s.files.Remove(ctx, path)
		return nil, err
	}
	return img, nil
}

func (s *Service) DeleteImage(ctx context.Context, id int64) error {
	path, err := s.repo.DeleteImage(ctx, id)
	if err != nil {
		return err
	}
	s.files.Remove(ctx, path)
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
