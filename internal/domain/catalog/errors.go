package catalog

import "errors"

var (
	ErrNotFound       = errors.New("record not found")
	ErrParentNotFound = errors.New("parent record does not exist")
)
