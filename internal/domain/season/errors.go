package season

import "errors"

var (
	ErrImageNotFound    = errors.New("season image not found")
	ErrImageRequired    = errors.New("image file is required")
	ErrUnknownTerritory = errors.New("territory does not exist")
)
