package domain

import "errors"

var (
	ErrNotFound  = errors.New("activity_not_found")
	ErrInvalidID = errors.New("invalid_id")
)
