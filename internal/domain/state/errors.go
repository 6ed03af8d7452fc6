package state

import "errors"

var (
	ErrStateNotFound   = errors.New("state not found")
	ErrImageNotFound   = errors.New("state image not found")
	ErrHistoryNotFound = errors.New("state history not found")
	ErrSlugTaken       = errors.New("slug already in use")
	ErrNameTaken       = errors.New("state name already in use")
	ErrImageRequired   = errors.New("image file is required")
)
