package wildlife

import "errors"

var (
	ErrSanctuaryNotFound = errors.New("sanctuary not found")
	ErrSlugTaken         = errors.New("slug already in use")
)
