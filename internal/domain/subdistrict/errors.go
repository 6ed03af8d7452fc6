package subdistrict

import "errors"

var (
	ErrSubdistrictNotFound = errors.New("subdistrict not found")
	ErrUnknownDistrict     = errors.New("district does not exist")
	ErrSlugTaken           = errors.New("slug already in use")
)
