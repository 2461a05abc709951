package domain

import "errors"

var (
	ErrNotFound    = errors.New("coupon_not_found")
	ErrInvalidCode = errors.New("invalid_coupon_code")
)
