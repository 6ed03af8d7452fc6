package district

import "errors"

var (
	ErrDistrictNotFound = errors.New("district not found")
	ErrImageNotFound    = errors.New("district image not found")
	ErrUnknownState     = errors.New("state does not exist")
	ErrSlugTaken        = errors.New("slug already in use")
	ErrImageRequired    = errors.New("image file is required")
)
