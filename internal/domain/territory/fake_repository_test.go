package territory

import (
	"context"
	"time"

	"github.com/devbhoomi/tourism-api/internal/pkg/content"
)

type fakeRepo struct {
	nextID     int64
	rows       map[int64]*Territory
	children   map[int64][]string
	lastStored string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{rows: map[int64]*Territory{}, children: map[int64][]string{}}
}

func (f *fakeRepo) Create(ctx context.Context, t *Territory) error {
	for _, existing := range f.rows {
		if existing.Slug == t.Slug {
			return ErrSlugTaken
		}
	}
	f.nextID++
	t.ID = f.nextID
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt
	cp := *t
	f.rows[t.ID] = &cp
	return nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id int64) (*Territory, error) {
	t, ok := f.rows[id]
	if !ok {
		return nil, ErrTerritoryNotFound
	}
	cp := *t
	return &cp, nil
}

func (f *fakeRepo) GetBySlug(ctx context.Context, slug string) (*Territory, error) {
	for _, t := range f.rows {
		if t.Slug == slug {
			cp := *t
			return &cp, nil
		}
	}
	return nil, ErrTerritoryNotFound
}

func (f *fakeRepo) List(ctx context.Context) ([]*Territory, error) {
	out := []*Territory{}
	for _, t := range f.rows {
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeRepo) Update(ctx context.Context, id int64, req *UpdateTerritoryRequest, featuredImage *string) (*Territory, error) {
	t, ok := f.rows[id]
	if !ok {
		return nil, ErrTerritoryNotFound
	}
	if req.Title != nil {
		t.Title = *req.Title
	}
	if req.Slug != nil {
		t.Slug = *req.Slug
	}
	if req.Capital != nil {
		t.Capital = req.Capital
	}
	if req.Description != nil {
		t.Description = req.Description
	}
	if featuredImage != nil {
		t.FeaturedImage = featuredImage
	}
	if req.MetaTitle != nil {
		t.MetaTitle = req.MetaTitle
	}
	t.UpdatedAt = time.Now()
	cp := *t
	return &cp, nil
}

func (f *fakeRepo) Delete(ctx context.Context, id int64) ([]string, error) {
	t, ok := f.rows[id]
	if !ok {
		return nil, ErrTerritoryNotFound
	}
	delete(f.rows, id)
	files := []string{}
	if p := content.Deref(t.FeaturedImage); p != "" {
		files = append(files, p)
	}
	return append(files, f.children[id]...), nil
}

func (f *fakeRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	for _, t := range f.rows {
		if t.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}
