// Package content holds fields shared by every publishable entity.
package content

// SEO is the metadata block stored on publishable rows.
type SEO struct {
	MetaTitle       *string `db:"meta_title" json:"meta_title,omitempty"`
	MetaDescription *string `db:"meta_description" json:"meta_description,omitempty"`
	MetaKeywords    *string `db:"meta_keywords" json:"meta_keywords,omitempty"`
}

// SEOInput is the request-side counterpart of SEO.
type SEOInput struct {
	MetaTitle       *string `json:"meta_title" form:"meta_title" validate:"omitempty,max=255"`
	MetaDescription *string `json:"meta_description" form:"meta_description" validate:"omitempty,max=500"`
	MetaKeywords    *string `json:"meta_keywords" form:"meta_keywords" validate:"omitempty,max=500"`
}

// SEO converts the input into the stored form.
func (in SEOInput) SEO() SEO {
	return SEO{
		MetaTitle:       in.MetaTitle,
		MetaDescription: in.MetaDescription,
		MetaKeywords:    in.MetaKeywords,
	}
}

// Str returns a pointer to s, or nil for an empty string.
func Str(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Deref returns the pointed-to string or "".
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
