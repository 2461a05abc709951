package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

type Service interface {
	List(ctx context.Context, req ListRequest) ([]Response, error)
	Get(ctx context.Context, id string) (*Response, error)
}

type ListRequest struct {
	Location string `form:"location"`
	IsActive *bool  `form:"is_active"`
	SortBy   string `form:"sort_by"`
	OrderBy  string `form:"order_by"`
	Limit    int    `form:"limit"`
	Offset   int    `form:"offset"`
}

type SpecificationResponse struct {
	Bedrooms             int             `json:"bedrooms"`
	Bathrooms            int             `json:"bathrooms"`
	MaxGuests            int             `json:"max_guests"`
	Capacity             int             `json:"capacity"`
	ACType               ACType          `json:"ac_type"`
	CruiseType           CruiseType      `json:"cruise_type"`
	ExtraGuestPriceAdult decimal.Decimal `json:"extra_guest_price_adult"`
	ExtraGuestPriceChild decimal.Decimal `json:"extra_guest_price_child"`
	FullTimeACPrice      decimal.Decimal `json:"full_time_ac_price"`
}

type Response struct {
	ID                string                 `json:"id"`
	Name              string                 `json:"name"`
	Slug              string                 `json:"slug"`
	Location          string                 `json:"location"`
	Description       string                 `json:"description"`
	BasePricePerNight decimal.Decimal        `json:"base_price_per_night"`
	DiscountedPrice   decimal.Decimal        `json:"discounted_price"`
	Rating            *decimal.Decimal       `json:"rating,omitempty"`
	ReviewCount       int                    `json:"review_count"`
	IsActive          bool                   `json:"is_active"`
	Specification     *SpecificationResponse `json:"specification,omitempty"`
}
