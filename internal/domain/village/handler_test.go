package village

import (
	"context"
	"encoding/json"
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
	nextID int64
	rows   map[int64]*Village
}

func (f *fakeRepo) Create(ctx context.Context, v *Village) error {
	f.nextID++
	v.ID = f.nextID
	v.CreatedAt = time.Now()
	cp := *v
	f.rows[v.ID] = &cp
	return nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id int64) (*Village, error) {
	if v, ok := f.rows[id]; ok {
		cp := *v
		return &cp, nil
	}
	return nil, ErrVillageNotFound
}

func (f *fakeRepo) GetBySlug(ctx context.Context, slug string) (*Village, error) {
	for _, v := range f.rows {
		if v.Slug == slug {
			return v, nil
		}
	}
	return nil, ErrVillageNotFound
}

func (f *fakeRepo) List(ctx context.Context, filter Filter) ([]*Village, error) {
	out := []*Village{}
	for _, v := range f.rows {
		if filter.TerritoryID != nil && (v.TerritoryID == nil || *v.TerritoryID != *filter.TerritoryID) {
			continue
		}
		if filter.SubdistrictID != nil && (v.SubdistrictID == nil || *v.SubdistrictID != *filter.SubdistrictID) {
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

func (f *fakeRepo) Update(ctx context.Context, id int64, req *UpdateVillageRequest, featuredImage *string) (*Village, error) {
	v, ok := f.rows[id]
	if !ok {
		return nil, ErrVillageNotFound
	}
	if req.Population != nil {
		v.Population = req.Population
	}
	if featuredImage != nil {
		v.FeaturedImage = featuredImage
	}
	cp := *v
	return &cp, nil
}

func (f *fakeRepo) Delete(ctx context.Context, id int64) (*string, error) {
	v, ok := f.rows[id]
	if !ok {
		return nil, ErrVillageNotFound
	}
	delete(f.rows, id)
	return v.FeaturedImage, nil
}

func (f *fakeRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	_, err := f.GetBySlug(ctx, slug)
	return err == nil, nil
}

func int64p(v int64) *int64 { return &v }

func TestListFilters(t *testing.T) {
	files := uploadtest.New(t)
	repo := &fakeRepo{rows: map[int64]*Village{}}
	svc := NewService(repo, files.Handler)
	ctx := context.Background()

	for _, req := range []*CreateVillageRequest{
		{Name: "Mana", TerritoryID: int64p(1)},
		{Name: "Niti", TerritoryID: int64p(1), SubdistrictID: int64p(4)},
		{Name: "Gunji", SubdistrictID: int64p(5)},
	} {
		if _, err := svc.Create(ctx, req, nil); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	router := chi.NewRouter()
	router.Mount("/villages", NewHandler(svc, files.Handler).Routes(func(next http.Handler) http.Handler { return next }))

	tests := []struct {
		query string
		want  int
	}{
		{"", 3},
		{"?territory_id=1", 2},
		{"?subdistrict_id=4", 1},
		{"?territory_id=1&subdistrict_id=5", 0},
	}
	for _, tt := range tests {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/villages"+tt.query, nil))
		if rr.Code != http.StatusOK {
			t.Fatalf("%q: status %d", tt.query, rr.Code)
		}
		var env struct {
			Data []VillageResponse `json:"data"`
		}
		if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(env.Data) != tt.want {
			t.Fatalf("%q: got %d, want %d", tt.query, len(env.Data), tt.want)
		}
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/villages?territory_id=abc", nil))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("invalid filter status %d", rr.Code)
	}
}

func TestDeleteRemovesImage(t *testing.T) {
	files := uploadtest.New(t)
	svc := NewService(&fakeRepo{rows: map[int64]*Village{}}, files.Handler)
	ctx := context.Background()

	v, err := svc.Create(ctx, &CreateVillageRequest{Name: "Mana"}, uploadtest.PNG(t))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := svc.Delete(ctx, v.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if files.Exists(content.Deref(v.FeaturedImage)) {
		t.Fatal("image should be removed")
	}
}

func TestNegativePopulationRejected(t *testing.T) {
	files := uploadtest.New(t)
	router := chi.NewRouter()
	router.Mount("/villages", NewHandler(NewService(&fakeRepo{rows: map[int64]*Village{}}, files.Handler), files.Handler).Routes(func(next http.Handler) http.Handler { return next }))

	req := httptest.NewRequest(http.MethodPost, "/villages", strings.NewReader(`{"name":"Mana","population":-4}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status %d", rr.Code)
	}
}
