package webstory

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/devbhoomi/tourism-api/internal/pkg/upload/uploadtest"
)

type fakeRepo struct {
	nextID int64
	rows   []*Story
}

func (f *fakeRepo) Create(ctx context.Context, s *Story) error {
	f.nextID++
	s.ID = f.nextID
	s.CreatedAt = time.Now()
	cp := *s
	f.rows = append(f.rows, &cp)
	return nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id int64) (*Story, error) {
	for _, s := range f.rows {
		if s.ID == id {
			cp := *s
			return &cp, nil
		}
	}
	return nil, ErrStoryNotFound
}

func (f *fakeRepo) GetBySlug(ctx context.Context, slug string) (*Story, error) {
	for _, s := range f.rows {
		if s.Slug == slug {
			cp := *s
			return &cp, nil
		}
	}
	return nil, ErrStoryNotFound
}

func (f *fakeRepo) List(ctx context.Context) ([]*Story, error) { return f.rows, nil }

func (f *fakeRepo) Update(ctx context.Context, id int64, req *UpdateStoryRequest, coverImage *string) (*Story, error) {
	for _, s := range f.rows {
		if s.ID != id {
			continue
		}
		if req.Title != nil {
			s.Title = *req.Title
		}
		if coverImage != nil {
			s.CoverImage = coverImage
		}
		cp := *s
		return &cp, nil
	}
	return nil, ErrStoryNotFound
}

func (f *fakeRepo) Delete(ctx context.Context, id int64) (*string, error) {
	for n, s := range f.rows {
		if s.ID == id {
			f.rows = append(f.rows[:n], f.rows[n+1:]...)
			return s.CoverImage, nil
		}
	}
	return nil, ErrStoryNotFound
}

func (f *fakeRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	_, err := f.GetBySlug(ctx, slug)
	return err == nil, nil
}

func TestStoryBySlugCarriesAbsoluteCover(t *testing.T) {
	files := uploadtest.New(t)
	svc := NewService(&fakeRepo{}, files.Handler)
	story, err := svc.Create(context.Background(), &CreateStoryRequest{Title: "Valley of Flowers in July"}, uploadtest.PNG(t))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	router := chi.NewRouter()
	router.Mount("/web-stories", NewHandler(svc, files.Handler).Routes(func(next http.Handler) http.Handler { return next }))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/web-stories/slug/valley-of-flowers-in-july", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rr.Code, rr.Body.String())
	}
	var env struct {
		Data StoryResponse `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Data.CoverImage != uploadtest.BaseURL+"/"+*story.CoverImage {
		t.Fatalf("cover %q", env.Data.CoverImage)
	}
	if !strings.HasPrefix(*story.CoverImage, "web-stories/story-") {
		t.Fatalf("stored at %s", *story.CoverImage)
	}

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/web-stories/1", nil))
	if rr.Code != http.StatusOK || files.Exists(*story.CoverImage) {
		t.Fatalf("delete should remove cover: %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/web-stories/1", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("deleted story returned %d", rr.Code)
	}
}
