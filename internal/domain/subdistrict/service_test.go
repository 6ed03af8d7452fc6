package subdistrict

import (
	"context"
	"encoding/json"
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
	nextID    int64
	rows      map[int64]*Subdistrict
	districts map[int64]bool
	villages  map[int64][]string
}

func newFakeRepo(districtIDs ...int64) *fakeRepo {
	f := &fakeRepo{rows: map[int64]*Subdistrict{}, districts: map[int64]bool{}, villages: map[int64][]string{}}
	for _, id := range districtIDs {
		f.districts[id] = true
	}
	return f
}

func (f *fakeRepo) Create(ctx context.Context, s *Subdistrict) error {
	if !f.districts[s.DistrictID] {
		return ErrUnknownDistrict
	}
	f.nextID++
	s.ID = f.nextID
	s.CreatedAt = time.Now()
	cp := *s
	f.rows[s.ID] = &cp
	return nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id int64) (*Subdistrict, error) {
	if s, ok := f.rows[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, ErrSubdistrictNotFound
}

func (f *fakeRepo) GetBySlug(ctx context.Context, slug string) (*Subdistrict, error) {
	for _, s := range f.rows {
		if s.Slug == slug {
			cp := *s
			return &cp, nil
		}
	}
	return nil, ErrSubdistrictNotFound
}

func (f *fakeRepo) List(ctx context.Context, districtID *int64) ([]*Subdistrict, error) {
	out := []*Subdistrict{}
	for _, s := range f.rows {
		if districtID == nil || s.DistrictID == *districtID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeRepo) Update(ctx context.Context, id int64, req *UpdateSubdistrictRequest, featuredImage *string) (*Subdistrict, error) {
	s, ok := f.rows[id]
	if !ok {
		return nil, ErrSubdistrictNotFound
	}
	if req.Title != nil {
		s.Title = *req.Title
	}
	if req.Location != nil {
		s.Location = req.Location
	}
	if featuredImage != nil {
		s.FeaturedImage = featuredImage
	}
	cp := *s
	return &cp, nil
}

func (f *fakeRepo) Delete(ctx context.Context, id int64) ([]string, error) {
	s, ok := f.rows[id]
	if !ok {
		return nil, ErrSubdistrictNotFound
	}
	delete(f.rows, id)
	files := append([]string{}, f.villages[id]...)
	if s.FeaturedImage != nil {
		files = append(files, *s.FeaturedImage)
	}
	return files, nil
}

func (f *fakeRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	_, err := f.GetBySlug(ctx, slug)
	return err == nil, nil
}

func TestCreateWithUnknownDistrictRemovesImage(t *testing.T) {
	files := uploadtest.New(t)
	svc := NewService(newFakeRepo(1), files.Handler)

	_, err := svc.Create(context.Background(), &CreateSubdistrictRequest{Title: "Dwarahat", DistrictID: 9}, uploadtest.PNG(t))
	if !errors.Is(err, ErrUnknownDistrict) {
		t.Fatalf("expected ErrUnknownDistrict, got %v", err)
	}
	if len(files.Failures) != 0 {
		t.Fatalf("unexpected cleanup failures %+v", files.Failures)
	}
}

func TestDeleteRemovesVillageFiles(t *testing.T) {
	files := uploadtest.New(t)
	repo := newFakeRepo(1)
	svc := NewService(repo, files.Handler)
	ctx := context.Background()

	sd, err := svc.Create(ctx, &CreateSubdistrictRequest{Title: "Ranikhet", DistrictID: 1}, uploadtest.PNG(t))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	village := files.Put(t, "villages")
	repo.villages[sd.ID] = []string{village}

	if err := svc.Delete(ctx, sd.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if files.Exists(village) || files.Exists(content.Deref(sd.FeaturedImage)) {
		t.Fatal("files should be removed")
	}
}

func TestListByDistrictRoute(t *testing.T) {
	files := uploadtest.New(t)
	svc := NewService(newFakeRepo(1, 2), files.Handler)
	ctx := context.Background()
	for _, req := range []*CreateSubdistrictRequest{
		{Title: "Ranikhet", DistrictID: 1},
		{Title: "Bhikiyasain", DistrictID: 1},
		{Title: "Joshimath", DistrictID: 2},
	} {
		if _, err := svc.Create(ctx, req, nil); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	router := chi.NewRouter()
	router.Mount("/subdistricts", NewHandler(svc, files.Handler).Routes(func(next http.Handler) http.Handler { return next }))

	tests := []struct {
		path string
		code int
		want int
	}{
		{"/subdistricts/district/1", http.StatusOK, 2},
		{"/subdistricts?district_id=2", http.StatusOK, 1},
		{"/subdistricts", http.StatusOK, 3},
		{"/subdistricts/district/x", http.StatusBadRequest, 0},
	}
	for _, tt := range tests {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tt.path, nil))
		if rr.Code != tt.code {
			t.Fatalf("%s: status %d", tt.path, rr.Code)
		}
		if tt.code != http.StatusOK {
			continue
		}
		var env struct {
			Data []SubdistrictResponse `json:"data"`
		}
		if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(env.Data) != tt.want {
			t.Fatalf("%s: got %d items, want %d", tt.path, len(env.Data), tt.want)
		}
	}

	req := httptest.NewRequest(http.MethodPost, "/subdistricts", strings.NewReader(`{"title":"Lohaghat"}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("missing district_id should fail validation, got %d", rr.Code)
	}
}
