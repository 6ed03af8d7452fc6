package state

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/devbhoomi/tourism-api/internal/pkg/content"
	"github.com/devbhoomi/tourism-api/internal/pkg/upload/uploadtest"
)

type fakeRepo struct {
	nextID  int64
	states  map[int64]*State
	images  map[int64]*Image
	history map[int64]*History
	// districtFiles simulates files owned by districts of a state name
	districtFiles map[string][]string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		states:        map[int64]*State{},
		images:        map[int64]*Image{},
		history:       map[int64]*History{},
		districtFiles: map[string][]string{},
	}
}

func (f *fakeRepo) id() int64 { f.nextID++; return f.nextID }

func (f *fakeRepo) Create(ctx context.Context, s *State) error {
	for _, e := range f.states {
		if e.Slug == s.Slug {
			return ErrSlugTaken
		}
		if e.Name == s.Name {
			return ErrNameTaken
		}
	}
	s.ID = f.id()
	s.CreatedAt, s.UpdatedAt = time.Now(), time.Now()
	cp := *s
	f.states[s.ID] = &cp
	return nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id int64) (*State, error) {
	if s, ok := f.states[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, ErrStateNotFound
}

func (f *fakeRepo) GetByKey(ctx context.Context, key string) (*State, error) {
	for _, s := range f.states {
		if s.Slug == key {
			cp := *s
			return &cp, nil
		}
	}
	for _, s := range f.states {
		if strings.EqualFold(s.Name, key) {
			cp := *s
			return &cp, nil
		}
	}
	return nil, ErrStateNotFound
}

func (f *fakeRepo) List(ctx context.Context) ([]*State, error) {
	out := []*State{}
	for _, s := range f.states {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeRepo) Update(ctx context.Context, id int64, req *UpdateStateRequest, featuredImage *string) (*State, error) {
	s, ok := f.states[id]
	if !ok {
		return nil, ErrStateNotFound
	}
	if req.Name != nil {
		for _, img := range f.images {
			if img.StateName == s.Name {
				img.StateName = *req.Name
			}
		}
		s.Name = *req.Name
	}
	if req.Capital != nil {
		s.Capital = req.Capital
	}
	if featuredImage != nil {
		s.FeaturedImage = featuredImage
	}
	cp := *s
	return &cp, nil
}

func (f *fakeRepo) Delete(ctx context.Context, id int64) ([]string, error) {
	s, ok := f.states[id]
	if !ok {
		return nil, ErrStateNotFound
	}
	files := []string{}
	for k, img := range f.images {
		if img.StateName == s.Name {
			files = append(files, img.ImagePath)
			delete(f.images, k)
		}
	}
	for k, h := range f.history {
		if h.StateName == s.Name {
			if h.Image != nil {
				files = append(files, *h.Image)
			}
			delete(f.history, k)
		}
	}
	files = append(files, f.districtFiles[s.Name]...)
	delete(f.districtFiles, s.Name)
	delete(f.states, id)
	if s.FeaturedImage != nil {
		files = append(files, *s.FeaturedImage)
	}
	return files, nil
}

func (f *fakeRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	for _, s := range f.states {
		if s.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) ListImages(ctx context.Context, stateName string) ([]*Image, error) {
	out := []*Image{}
	for _, img := range f.images {
		if img.StateName == stateName {
			out = append(out, img)
		}
	}
	return out, nil
}

func (f *fakeRepo) CreateImage(ctx context.Context, img *Image) error {
	img.ID = f.id()
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

func (f *fakeRepo) ListHistory(ctx context.Context, stateName string) ([]*History, error) {
	out := []*History{}
	for _, h := range f.history {
		if h.StateName == stateName {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetHistory(ctx context.Context, id int64) (*History, error) {
	if h, ok := f.history[id]; ok {
		cp := *h
		return &cp, nil
	}
	return nil, ErrHistoryNotFound
}

func (f *fakeRepo) CreateHistory(ctx context.Context, h *History) error {
	h.ID = f.id()
	cp := *h
	f.history[h.ID] = &cp
	return nil
}

func (f *fakeRepo) UpdateHistory(ctx context.Context, id int64, req *UpdateHistoryRequest, image *string) (*History, error) {
	h, ok := f.history[id]
	if !ok {
		return nil, ErrHistoryNotFound
	}
	if req.Title != nil {
		h.Title = *req.Title
	}
	if req.Content != nil {
		h.Content = req.Content
	}
	if image != nil {
		h.Image = image
	}
	cp := *h
	return &cp, nil
}

func (f *fakeRepo) DeleteHistory(ctx context.Context, id int64) (*string, error) {
	h, ok := f.history[id]
	if !ok {
		return nil, ErrHistoryNotFound
	}
	delete(f.history, id)
	return h.Image, nil
}

func TestGetResolvesIDSlugAndName(t *testing.T) {
	svc := NewService(newFakeRepo(), uploadtest.New(t).Handler)
	ctx := context.Background()

	created, err := svc.Create(ctx, &CreateStateRequest{Name: "Uttarakhand", Capital: content.Str("Dehradun")}, nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	for _, key := range []string{"1", "uttarakhand", "UTTARAKHAND", "Uttarakhand"} {
		st, err := svc.Get(ctx, key)
		if err != nil {
			t.Fatalf("Get(%q): %v", key, err)
		}
		if st.ID != created.ID {
			t.Fatalf("Get(%q) returned id %d", key, st.ID)
		}
	}

	if _, err := svc.Get(ctx, "himachal"); !errors.Is(err, ErrStateNotFound) {
		t.Fatalf("expected ErrStateNotFound, got %v", err)
	}
}

func TestDeleteCascadesFiles(t *testing.T) {
	files := uploadtest.New(t)
	repo := newFakeRepo()
	svc := NewService(repo, files.Handler)
	ctx := context.Background()

	st, err := svc.Create(ctx, &CreateStateRequest{Name: "Uttarakhand"}, uploadtest.PNG(t))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	img, err := svc.AddImage(ctx, "uttarakhand", &CreateImageRequest{Caption: content.Str("Kedarnath")}, uploadtest.PNG(t))
	if err != nil {
		t.Fatalf("AddImage: %v", err)
	}
	hist, err := svc.AddHistory(ctx, "Uttarakhand", &CreateHistoryRequest{Title: "Formation"}, uploadtest.PNG(t))
	if err != nil {
		t.Fatalf("AddHistory: %v", err)
	}
	districtImage := files.Put(t, "districts")
	repo.districtFiles["Uttarakhand"] = []string{districtImage}

	owned := []string{content.Deref(st.FeaturedImage), img.ImagePath, content.Deref(hist.Image), districtImage}
	for _, p := range owned {
		if !files.Exists(p) {
			t.Fatalf("expected %s on disk before delete", p)
		}
	}

	if err := svc.Delete(ctx, st.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	for _, p := range owned {
		if files.Exists(p) {
			t.Fatalf("%s should be removed", p)
		}
	}
	if len(repo.images) != 0 || len(repo.history) != 0 {
		t.Fatal("child rows should be removed")
	}
	if _, err := svc.Get(ctx, "uttarakhand"); !errors.Is(err, ErrStateNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}

func TestAddImageRequiresFile(t *testing.T) {
	svc := NewService(newFakeRepo(), uploadtest.New(t).Handler)
	_, _ = svc.Create(context.Background(), &CreateStateRequest{Name: "Sikkim"}, nil)

	_, err := svc.AddImage(context.Background(), "sikkim", &CreateImageRequest{}, nil)
	if !errors.Is(err, ErrImageRequired) {
		t.Fatalf("expected ErrImageRequired, got %v", err)
	}
}

func TestAddImageUnknownState(t *testing.T) {
	files := uploadtest.New(t)
	svc := NewService(newFakeRepo(), files.Handler)

	_, err := svc.AddImage(context.Background(), "nowhere", &CreateImageRequest{}, uploadtest.PNG(t))
	if !errors.Is(err, ErrStateNotFound) {
		t.Fatalf("expected ErrStateNotFound, got %v", err)
	}
}

func TestUpdateHistoryReplacesImage(t *testing.T) {
	files := uploadtest.New(t)
	svc := NewService(newFakeRepo(), files.Handler)
	ctx := context.Background()

	_, _ = svc.Create(ctx, &CreateStateRequest{Name: "Goa"}, nil)
	h, err := svc.AddHistory(ctx, "goa", &CreateHistoryRequest{Title: "Portuguese era", Content: content.Str("1510")}, uploadtest.PNG(t))
	if err != nil {
		t.Fatalf("AddHistory: %v", err)
	}
	oldPath := content.Deref(h.Image)

	updated, err := svc.UpdateHistory(ctx, h.ID, &UpdateHistoryRequest{}, uploadtest.PNG(t))
	if err != nil {
		t.Fatalf("UpdateHistory: %v", err)
	}
	if oldPath == "" || content.Deref(updated.Image) == oldPath {
		t.Fatalf("expected a new image path, old=%q new=%q", oldPath, content.Deref(updated.Image))
	}
	if files.Exists(oldPath) || !files.Exists(content.Deref(updated.Image)) {
		t.Fatal("expected image to be replaced")
	}
	if updated.Title != "Portuguese era" || content.Deref(updated.Content) != "1510" {
		t.Fatalf("fields changed: %+v", updated)
	}
}

func TestGetRouteByName(t *testing.T) {
	files := uploadtest.New(t)
	svc := NewService(newFakeRepo(), files.Handler)
	_, _ = svc.Create(context.Background(), &CreateStateRequest{Name: "Himachal Pradesh"}, nil)

	r := chi.NewRouter()
	r.Mount("/states", NewHandler(svc, files.Handler).Routes(func(next http.Handler) http.Handler { return next }))

	for path, want := range map[string]int{
		"/states/himachal-pradesh":   http.StatusOK,
		"/states/Himachal%20Pradesh": http.StatusOK,
		"/states/1":                  http.StatusOK,
		"/states/kerala":             http.StatusNotFound,
		"/states/kerala/images":      http.StatusNotFound,
		"/states/1/history":          http.StatusOK,
	} {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		if rr.Code != want {
			t.Errorf("GET %s = %d, want %d", path, rr.Code, want)
		}
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/states/images/77", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("DELETE unknown image = %d", rr.Code)
	}
}
