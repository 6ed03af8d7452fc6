package village

import "errors"

var (
	ErrVillageNotFound = errors.New("village not found")
	ErrUnknownParent   = errors.New("territory or subdistrict does not exist")
	ErrSlugTaken       = errors.New("slug already in use")
)
