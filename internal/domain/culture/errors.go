package culture

import "errors"

var (
	ErrInfoNotFound = errors.New("cultural info not found")
	ErrSlugTaken    = errors.New("slug already in use")
)
