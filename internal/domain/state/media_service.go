package state

import (
	"context"

	"github.com/devbhoomi/tourism-api/internal/pkg/content"
	"github.com/devbhoomi/tourism-api/internal/pkg/storage"
	"github.com/devbhoomi/tourism-api/internal/pkg/upload"
)

// ListImages returns the gallery of the state identified by key
func (s *Service) ListImages(ctx context.Context, key string) ([]*Image, error) {
	st, err := s.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	return s.repo.ListImages(ctx, st.Name)
}

func (s *Service) AddImage(ctx context.Context, key string, req *CreateImageRequest, image *upload.Attachment) (*Image, error) {
	if image == nil {
		return nil, ErrImageRequired
	}
	st, err := s.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	path, err := s.files.Store(ctx, image, upload.Options{Dir: galleryDir, Prefix: "state", Category: storage.CategoryGallery})
	if err != nil {
		return nil, err
	}

	img := &Image{StateName: st.Name, ImagePath: path, Caption: req.Caption}
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

func (s *Service) ListHistory(ctx context.Context, key string) ([]*History, error) {
	st, err := s.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	return s.repo.ListHistory(ctx, st.Name)
}

func (s *Service) AddHistory(ctx context.Context, key string, req *CreateHistoryRequest, image *upload.Attachment) (*History, error) {
	st, err := s.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	h := &History{StateName: st.Name, Title: req.Title, Content: req.Content}
	if image != nil {
		path, err := s.files.Store(ctx, image, upload.Options{Dir: historyDir, Prefix: "history"})
		if err != nil {
			return nil, err
		}
		h.Image = &path
	}

	if err := s.repo.CreateHistory(ctx, h); err != nil {
		s.files.Remove(ctx, content.Deref(h.Image))
		return nil, err
	}
	return h, nil
}

func (s *Service) UpdateHistory(ctx context.Context, id int64, req *UpdateHistoryRequest, image *upload.Attachment) (*History, error) {
	current, err := s.repo.GetHistory(ctx, id)
	if err != nil {
		return nil, err
	}

	var newImage *string
	if image != nil {
		path, err := s.files.Store(ctx, image, upload.Options{Dir: historyDir, Prefix: "history"})
		if err != nil {
			return nil, err
		}
		newImage = &path
	}

	updated, err := s.repo.UpdateHistory(ctx, id, req, newImage)
	if err != nil {
		s.files.Remove(ctx, content.Deref(newImage))
		return nil, err
	}
	if newImage != nil {
		s.files.Remove(ctx, content.Deref(current.Image))
	}
	return updated, nil
}

func (s *Service) DeleteHistory(ctx context.Context, id int64) error {
	image, err := s.repo.DeleteHistory(ctx, id)
	if err != nil {
		return err
	}
	s.files.Remove(ctx, content.Deref(image))
	return nil
}
