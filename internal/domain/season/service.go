package season

import (
	"context"

	"github.com/devbhoomi/tourism-api/internal/pkg/content"
	"github.com/devbhoomi/tourism-api/internal/pkg/storage"
	"github.com/devbhoomi/tourism-api/internal/pkg/upload"
)

type Service struct {
	repo  Repository
	files *upload.Handler
}

func NewService(repo Repository, files *upload.Handler) *Service {
	return &Service{repo: repo, files: files}
}

// storeOptions files territory pictures apart from the generic season pool.
func storeOptions(territoryID *int64) upload.Options {
	if territoryID != nil {
		return upload.Options{Dir: "territory-seasons", Prefix: "season", Category: storage.CategoryGallery}
	}
	return upload.Options{Dir: "seasons", Prefix: "season", Category: storage.CategoryGallery}
}

func (s *Service) List(ctx context.Context, filter Filter) ([]*Image, error) {
	return s.repo.List(ctx, filter)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*Image, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, req *CreateImageRequest, image *upload.Attachment) (*Image, error) {
	if image == nil {
		return nil, ErrImageRequired
	}

	path, err := s.files.Store(ctx, image, storeOptions(req.TerritoryID))
	if err != nil {
		return nil, err
	}

	img := &Image{
		Season:      req.Season,
		Title:       req.Title,
		Description: req.Description,
		TerritoryID: req.TerritoryID,
		ImagePath:   path,
	}
	if err := s.repo.Create(ctx, img); err != nil {
		s.files.Remove(ctx, path)
		return nil, err
	}
	return img, nil
}

func (s *Service) Update(ctx context.Context, id int64, req *UpdateImageRequest, image *upload.Attachment) (*Image, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var newPath *string
	if image != nil {
		territoryID := current.TerritoryID
		if req.TerritoryID != nil {
			territoryID = req.TerritoryID
		}
		path, err := s.files.Store(ctx, image, storeOptions(territoryID))
		if err != nil {
			return nil, err
		}
		newPath = &path
	}

	updated, err := s.repo.Update(ctx, id, req, newPath)
	if err != nil {
		s.files.Remove(ctx, content.Deref(newPath))
		return nil, err
	}
	if newPath != nil {
		s.files.Remove(ctx, current.ImagePath)
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	path, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	s.files.Remove(ctx, path)
	return nil
}
