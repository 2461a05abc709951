package domain

import "errors"

var (
	ErrNotFound  = errors.New("cab_not_found")
	ErrInvalidID = errors.New("invalid_id")
)
