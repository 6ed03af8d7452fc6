package attraction

import "errors"

var (
	ErrAttractionNotFound = errors.New("attraction not found")
	ErrUnknownDistrict    = errors.New("district does not exist")
	ErrSlugTaken          = errors.New("slug already in use")
)
