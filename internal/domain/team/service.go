package team

import (
	"context"

	"github.com/devbhoomi/tourism-api/internal/pkg/content"
	"github.com/devbhoomi/tourism-api/internal/pkg/upload"
)

var storeOptions = upload.Options{Dir: "team", Prefix: "member"}

type Service struct {
	repo  Repository
	files *upload.Handler
}

func NewService(repo Repository, files *upload.Handler) *Service {
	return &Service{repo: repo, files: files}
}

// List returns members in display order, ties broken by name.
func (s *Service) List(ctx context.Context) ([]*Member, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*Member, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, req *CreateMemberRequest, photo *upload.Attachment) (*Member, error) {
	member := &Member{
		Name:        req.Name,
		Designation: req.Designation,
		Bio:         req.Bio,
		Email:       req.Email,
	}
	if req.DisplayOrder != nil {
		member.DisplayOrder = *req.DisplayOrder
	}

	if photo != nil {
		path, err := s.files.Store(ctx, photo, storeOptions)
		if err != nil {
			return nil, err
		}
		member.Photo = &path
	}

	if err := s.repo.Create(ctx, member); err != nil {
		s.files.Remove(ctx, content.Deref(member.Photo))
		return nil, err
	}
	return member, nil
}

func (s *Service) Update(ctx context.Context, id int64, req *UpdateMemberRequest, photo *upload.Attachment) (*Member, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var newPhoto *string
	if photo != nil {
		path, err := s.files.Store(ctx, photo, storeOptions)
		if err != nil {
			return nil, err
		}
		newPhoto = &path
	}

	updated, err := s.repo.Update(ctx, id, req, newPhoto)
	if err != nil {
		s.files.Remove(ctx, content.Deref(newPhoto))
		return nil, err
	}
	if newPhoto != nil {
		s.files.Remove(ctx, content.Deref(current.Photo))
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	photo, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	s.files.Remove(ctx, content.Deref(photo))
	return nil
}
