package tourpackage

import "errors"

var (
	ErrPackageNotFound = errors.New("tour package not found")
	ErrSlugTaken       = errors.New("slug already in use")
)
