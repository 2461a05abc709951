package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownBookingType = errors.New("unknown_booking_type")
	ErrNoItems            = errors.New("no_items")
	ErrItemNotFound       = errors.New("item_not_found")
)

// ItemNotFoundError names the line item reference that failed to
// resolve. It matches ErrItemNotFound with errors.Is.
type ItemNotFoundError struct {
	Ref string
}

func (e *ItemNotFoundError) Error() string {
	return fmt.Sprintf("item_not_found: %s", e.Ref)
}

func (e *ItemNotFoundError) Is(target error) bool {
	return target == ErrItemNotFound
}
