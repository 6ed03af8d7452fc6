package district

import (
	"context"
	"errors"
	"testing"

	"github.com/devbhoomi/tourism-api/internal/pkg/content"
	"github.com/devbhoomi/tourism-api/internal/pkg/upload/uploadtest"
)

func TestCreateUsesStoredStateSpelling(t *testing.T) {
	svc := NewService(newFakeRepo("Uttarakhand"), uploadtest.New(t).Handler)

	d, err := svc.Create(context.Background(), &CreateDistrictRequest{Name: "Almora", StateName: "uttarakhand"}, nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if d.StateName != "Uttarakhand" || d.Slug != "almora" {
		t.Fatalf("got state %q slug %q", d.StateName, d.Slug)
	}
}

func TestCreateRejectsUnknownState(t *testing.T) {
	svc := NewService(newFakeRepo("Uttarakhand"), uploadtest.New(t).Handler)

	_, err := svc.Create(context.Background(), &CreateDistrictRequest{Name: "Shimla", StateName: "Himachal"}, nil)
	if !errors.Is(err, ErrUnknownState) {
		t.Fatalf("expected ErrUnknownState, got %v", err)
	}
}

func TestDuplicateNamesGetSuffixedSlugs(t *testing.T) {
	svc := NewService(newFakeRepo("Uttarakhand"), uploadtest.New(t).Handler)
	ctx := context.Background()

	a, _ := svc.Create(ctx, &CreateDistrictRequest{Name: "Almora", StateName: "Uttarakhand"}, nil)
	b, err := svc.Create(ctx, &CreateDistrictRequest{Name: "Almora", StateName: "Uttarakhand"}, nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if a.Slug != "almora" || b.Slug != "almora-1" {
		t.Fatalf("slugs %q %q", a.Slug, b.Slug)
	}
}

func TestDeleteRemovesSubtreeFiles(t *testing.T) {
	files := uploadtest.New(t)
	repo := newFakeRepo("Uttarakhand")
	svc := NewService(repo, files.Handler)
	ctx := context.Background()

	d, err := svc.Create(ctx, &CreateDistrictRequest{Name: "Chamoli", StateName: "Uttarakhand"}, uploadtest.PNG(t))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	img, err := svc.AddImage(ctx, d.ID, &CreateImageRequest{Caption: content.Str("Valley of Flowers")}, uploadtest.PNG(t))
	if err != nil {
		t.Fatalf("AddImage: %v", err)
	}
	village := files.Put(t, "villages")
	repo.children[d.ID] = []string{village}

	if err := svc.Delete(ctx, d.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	for _, p := range []string{content.Deref(d.FeaturedImage), img.ImagePath, village} {
		if files.Exists(p) {
			t.Fatalf("%s should be removed", p)
		}
	}
	if _, err := svc.GetByID(ctx, d.ID); !errors.Is(err, ErrDistrictNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestAddImageRequiresFileAndDistrict(t *testing.T) {
	svc := NewService(newFakeRepo("Uttarakhand"), uploadtest.New(t).Handler)
	ctx := context.Background()

	if _, err := svc.AddImage(ctx, 1, &CreateImageRequest{}, nil); !errors.Is(err, ErrImageRequired) {
		t.Fatalf("expected ErrImageRequired, got %v", err)
	}
	if _, err := svc.AddImage(ctx, 42, &CreateImageRequest{}, uploadtest.PNG(t)); !errors.Is(err, ErrDistrictNotFound) {
		t.Fatalf("expected ErrDistrictNotFound, got %v", err)
	}
}

func TestDeleteImageRemovesFile(t *testing.T) {
	files := uploadtest.New(t)
	svc := NewService(newFakeRepo("Uttarakhand"), files.Handler)
	ctx := context.Background()

	d, _ := svc.Create(ctx, &CreateDistrictRequest{Name: "Pithoragarh", StateName: "Uttarakhand"}, nil)
	img, err := svc.AddImage(ctx, d.ID, &CreateImageRequest{}, uploadtest.PNG(t))
	if err != nil {
		t.Fatalf("AddImage: %v", err)
	}
	if err := svc.DeleteImage(ctx, img.ID); err != nil {
		t.Fatalf("DeleteImage: %v", err)
	}
	if files.Exists(img.ImagePath) {
		t.Fatal("image file should be removed")
	}
	if err := svc.DeleteImage(ctx, img.ID); !errors.Is(err, ErrImageNotFound) {
		t.Fatalf("expected ErrImageNotFound, got %v", err)
	}
}

func TestUpdateKeepsSlugAndReplacesImage(t *testing.T) {
	files := uploadtest.New(t)
	svc := NewService(newFakeRepo("Uttarakhand"), files.Handler)
	ctx := context.Background()

	d, _ := svc.Create(ctx, &CreateDistrictRequest{Name: "Tehri", StateName: "Uttarakhand", Headquarters: content.Str("New Tehri")}, uploadtest.PNG(t))
	old := content.Deref(d.FeaturedImage)

	updated, err := svc.Update(ctx, d.ID, &UpdateDistrictRequest{Name: content.Str("Tehri Garhwal")}, uploadtest.PNG(t))
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Slug != "tehri" || content.Deref(updated.Headquarters) != "New Tehri" {
		t.Fatalf("unexpected row %+v", updated)
	}
	if files.Exists(old) || !files.Exists(content.Deref(updated.FeaturedImage)) {
		t.Fatal("old image should be replaced")
	}
}
