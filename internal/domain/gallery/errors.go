package gallery

import "errors"

var (
	ErrImageNotFound = errors.New("gallery image not found")
	ErrImageRequired = errors.New("image file is required")
)
