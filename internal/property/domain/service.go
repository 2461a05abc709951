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
	City         string       `form:"city"`
	PropertyType PropertyType `form:"property_type"`
	IsActive     *bool        `form:"is_active"`
	SortBy       string       `form:"sort_by"`
	OrderBy      string       `form:"order_by"`
	Limit        int          `form:"limit"`
	Offset       int          `form:"offset"`
}

type RoomTypeResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	MaxGuests       int             `json:"max_guests"`
	BedroomCount    *int            `json:"bedroom_count,omitempty"`
	HasBreakfast    bool            `json:"has_breakfast"`
	RefundPolicy    string          `json:"refund_policy"`
	BookingPolicy   string          `json:"booking_policy"`
	BasePrice       decimal.Decimal `json:"base_price"`
	DiscountAmount  decimal.Decimal `json:"discount_amount"`
	DiscountedPrice decimal.Decimal `json:"discounted_price"`
	GSTAmount       decimal.Decimal `json:"gst_amount"`
	TotalPayable    decimal.Decimal `json:"total_payable"`
	TotalUnits      int             `json:"total_units"`
	IsEntirePlace   bool            `json:"is_entire_place"`
}

type Response struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Slug         string             `json:"slug"`
	PropertyType PropertyType       `json:"property_type"`
	City         string             `json:"city"`
	Area         *string            `json:"area,omitempty"`
	State        string             `json:"state"`
	StarRating   *int               `json:"star_rating,omitempty"`
	ReviewRating *decimal.Decimal   `json:"review_rating,omitempty"`
	ReviewCount  int                `json:"review_count"`
	CheckInTime  string             `json:"check_in_time"`
	CheckOutTime string             `json:"check_out_time"`
	Description  string             `json:"description"`
	Rules        *string            `json:"rules,omitempty"`
	GSTPercent   decimal.Decimal    `json:"gst_percent"`
	IsActive     bool               `json:"is_active"`
	RoomTypes    []RoomTypeResponse `json:"room_types"`
}
