package activity

import "errors"

var (
	ErrNotFound = errors.New("entry not found")
)
