package territory

import "errors"

var (
	ErrTerritoryNotFound = errors.New("territory not found")
	ErrSlugTaken         = errors.New("slug already in use")
)
