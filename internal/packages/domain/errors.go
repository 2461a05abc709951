package domain

import "errors"

var (
	ErrNotFound  = errors.New("package_not_found")
	ErrInvalidID = errors.New("invalid_id")
)
