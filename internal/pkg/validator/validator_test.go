package validator

import "testing"

type sampleRequest struct {
	Name   string  `json:"name" validate:"required,max=10"`
	Slug   *string `json:"slug" validate:"omitempty,slug"`
	Date   string  `json:"date" validate:"omitempty,date"`
	Season string  `json:"season" validate:"omitempty,season"`
}

func ptr[T any](v T) *T { return &v }

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     sampleRequest
		wantKey string
	}{
		{name: "missing name", req: sampleRequest{}, wantKey: "name"},
		{name: "bad slug", req: sampleRequest{Name: "ok", Slug: ptr("Bad Slug")}, wantKey: "slug"},
		{name: "double hyphen slug", req: sampleRequest{Name: "ok", Slug: ptr("a--b")}, wantKey: "slug"},
		{name: "bad date", req: sampleRequest{Name: "ok", Date: "10.01.2024"}, wantKey: "date"},
		{name: "bad season", req: sampleRequest{Name: "ok", Season: "rainy"}, wantKey: "season"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			errs := Validate(&tc.req)
			if _, ok := errs[tc.wantKey]; !ok {
				t.Fatalf("expected error for %q, got %+v", tc.wantKey, errs)
			}
		})
	}
}

func TestValidatePasses(t *testing.T) {
	req := sampleRequest{Name: "Almora", Slug: ptr("almora-1"), Date: "2024-01-10", Season: "winter"}
	if errs := Validate(&req); errs != nil {
		t.Fatalf("expected no errors, got %+v", errs)
	}
}
