package webstory

import "errors"

var (
	ErrStoryNotFound = errors.New("web story not found")
	ErrSlugTaken     = errors.New("slug already in use")
)
