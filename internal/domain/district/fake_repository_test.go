package district

import (
	"context"
	"strings"
	"time"

	"github.com/devbhoomi/tourism-api/internal/pkg/content"
)

type fakeRepo struct {
	nextID   int64
	rows     map[int64]*District
	images   map[int64]*Image
	states   []string
	children map[int64][]string
}

func newFakeRepo(states ...string) *fakeRepo {
	return &fakeRepo{
		rows:     map[int64]*District{},
		images:   map[int64]*Image{},
		states:   states,
		children: map[int64][]string{},
	}
}

func (f *fakeRepo) Create(ctx context.Context, d *District) error {
	if taken, _ := f.SlugExists(ctx, d.Slug); taken {
		return ErrSlugTaken
	}
	f.nextID++
	d.ID = f.nextID
	d.CreatedAt = time.Now()
	d.UpdatedAt = d.CreatedAt
	cp := *d
	f.rows[d.ID] = &cp
	return nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id int64) (*District, error) {
	d, ok := f.rows[id]
	if !ok {
		return nil, ErrDistrictNotFound
	}
	cp := *d
	return &cp, nil
}

func (f *fakeRepo) GetBySlug(ctx context.Context, slug string) (*District, error) {
	for _, d := range f.rows {
		if d.Slug == slug {
			cp := *d
			return &cp, nil
		}
	}
	return nil, ErrDistrictNotFound
}

func (f *fakeRepo) List(ctx context.Context) ([]*District, error) {
	out := []*District{}
	for _, d := range f.rows {
		out = append(out, d)
	}
	return out, nil
}

func (f *fakeRepo) ListByState(ctx context.Context, stateName string) ([]*District, error) {
	out := []*District{}
	for _, d := range f.rows {
		if strings.EqualFold(d.StateName, stateName) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeRepo) Update(ctx context.Context, id int64, req *UpdateDistrictRequest, featuredImage *string) (*District, error) {
	d, ok := f.rows[id]
	if !ok {
		return nil, ErrDistrictNotFound
	}
	if req.Name != nil {
		d.Name = *req.Name
	}
	if req.Slug != nil {
		d.Slug = *req.Slug
	}
	if req.StateName != nil {
		d.StateName = *req.StateName
	}
	if req.Headquarters != nil {
		d.Headquarters = req.Headquarters
	}
	if featuredImage != nil {
		d.FeaturedImage = featuredImage
	}
	cp := *d
	return &cp, nil
}

func (f *fakeRepo) Delete(ctx context.Context, id int64) ([]string, error) {
	d, ok := f.rows[id]
	if !ok {
		return nil, ErrDistrictNotFound
	}
	files := append([]string{}, f.children[id]...)
	for imgID, img := range f.images {
		if img.DistrictID == id {
			files = append(files, img.ImagePath)
			delete(f.images, imgID)
		}
	}
	if p := content.Deref(d.FeaturedImage); p != "" {
		files = append(files, p)
	}
	delete(f.rows, id)
	return files, nil
}

func (f *fakeRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	for _, d := range f.rows {
		if d.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) ResolveStateName(ctx context.Context, name string) (string, error) {
	for _, s := range f.states {
		if strings.EqualFold(s, name) {
			return s, nil
		}
	}
	return "", ErrUnknownState
}

func (f *fakeRepo) ListImages(ctx context.Context, districtID int64) ([]*Image, error) {
	out := []*Image{}
	for _, img := range f.images {
		if img.DistrictID == districtID {
			out = append(out, img)
		}
	}
	return out, nil
}

func (f *fakeRepo) CreateImage(ctx context.Context, img *Image) error {
	f.nextID++
	img.ID = f.nextID
	img.CreatedAt = time.Now()
	cp := *img
	f.images[img.ID] = &cp
	return nil
}

func (f *fakeRepo) DeleteImage(ctx context.Context, id int64) (string, error) {
	img, ok := f.images[id]
	if !ok {
		return "", ErrImageNotFound
	}
	delete(f.images, id)
	return img.ImagePath, nil
}
