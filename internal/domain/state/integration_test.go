//go:build integration

package state

import (
	"context"
	"errors"
	"testing"

	"github.com/devbhoomi/tourism-api/internal/pkg/content"
	"github.com/devbhoomi/tourism-api/internal/pkg/database/dbtest"
	"github.com/devbhoomi/tourism-api/internal/pkg/upload/uploadtest"
)

func TestStateLifecyclePostgres(t *testing.T) {
	db := dbtest.Postgres(t)
	files := uploadtest.New(t)
	svc := NewService(NewRepository(db), files.Handler)
	ctx := context.Background()

	st, err := svc.Create(ctx, &CreateStateRequest{Name: "Uttarakhand", Capital: content.Str("Dehradun")}, uploadtest.PNG(t))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if st.Slug != "uttarakhand" || st.FeaturedImage == nil {
		t.Fatalf("unexpected state: %+v", st)
	}

	if _, err := svc.Create(ctx, &CreateStateRequest{Name: "Himachal", Slug: content.Str("uttarakhand")}, nil); !errors.Is(err, ErrSlugTaken) {
		t.Fatalf("explicit duplicate slug: expected ErrSlugTaken, got %v", err)
	}

	byName, err := svc.Get(ctx, "UTTARAKHAND")
	if err != nil || byName.ID != st.ID {
		t.Fatalf("Get by name = %+v, %v", byName, err)
	}

	img, err := svc.AddImage(ctx, "uttarakhand", &CreateImageRequest{}, uploadtest.PNG(t))
	if err != nil {
		t.Fatalf("AddImage: %v", err)
	}
	hist, err := svc.AddHistory(ctx, st.Name, &CreateHistoryRequest{Title: "Statehood"}, uploadtest.PNG(t))
	if err != nil {
		t.Fatalf("AddHistory: %v", err)
	}

	districtImage := files.Put(t, "districts")
	var districtID int64
	if err := db.QueryRowxContext(ctx,
		`INSERT INTO districts (name, slug, state_name, featured_image) VALUES ('Almora', 'almora', $1, $2) RETURNING id`,
		st.Name, districtImage,
	).Scan(&districtID); err != nil {
		t.Fatalf("seed district: %v", err)
	}
	galleryImage := files.Put(t, "district-images")
	if _, err := db.ExecContext(ctx,
		`INSERT INTO district_images (district_id, image_path) VALUES ($1, $2)`, districtID, galleryImage,
	); err != nil {
		t.Fatalf("seed district image: %v", err)
	}

	owned := []string{*st.FeaturedImage, img.ImagePath, *hist.Image, districtImage, galleryImage}
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
			t.Errorf("expected %s removed", p)
		}
	}
	if _, err := svc.Get(ctx, "uttarakhand"); !errors.Is(err, ErrStateNotFound) {
		t.Fatalf("Get after delete: expected ErrStateNotFound, got %v", err)
	}

	var remaining int
	if err := db.GetContext(ctx, &remaining, `
		SELECT (SELECT COUNT(*) FROM districts) + (SELECT COUNT(*) FROM district_images)
			+ (SELECT COUNT(*) FROM state_images) + (SELECT COUNT(*) FROM state_history)`,
	); err != nil {
		t.Fatalf("count: %v", err)
	}
	if remaining != 0 {
		t.Fatalf("expected cascade to clear child rows, %d left", remaining)
	}
	if len(files.Failures) != 0 {
		t.Fatalf("unexpected cleanup failures: %+v", files.Failures)
	}

	if err := svc.Delete(ctx, st.ID); !errors.Is(err, ErrStateNotFound) {
		t.Fatalf("second Delete: expected ErrStateNotFound, got %v", err)
	}
}
