package domain

import "errors"

var (
	ErrNotFound         = errors.New("property_not_found")
	ErrRoomTypeNotFound = errors.New("room_type_not_found")
	ErrInvalidID        = errors.New("invalid_id")
)
