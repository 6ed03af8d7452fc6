package team

import "errors"

var ErrMemberNotFound = errors.New("team member not found")
