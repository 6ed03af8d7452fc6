package history

import "errors"

var (
	ErrEntryNotFound = errors.New("history entry not found")
	ErrSlugTaken     = errors.New("slug already in use")
)
