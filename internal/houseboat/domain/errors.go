package domain

import "errors"

var (
	ErrNotFound  = errors.New("houseboat_not_found")
	ErrInvalidID = errors.New("invalid_id")
)
