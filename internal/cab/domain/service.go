package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

type Service interface {
	List(ctx context.Context, req ListRequest) ([]Response, error)
	Get(ctx context.Context, id string) (*Response, error)
	ListCategories(ctx context.Context) ([]CategoryResponse, error)
}

type ListRequest struct {
	CategoryID string   `form:"category_id"`
	FuelType   FuelType `form:"fuel_type"`
	IsActive   *bool    `form:"is_active"`
	SortBy     string   `form:"sort_by"`
	OrderBy    string   `form:"order_by"`
	Limit      int      `form:"limit"`
	Offset     int      `form:"offset"`
}

type CategoryResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	IsActive    bool    `json:"is_active"`
}

type InclusionResponse struct {
	Label      string `json:"label"`
	Value      string `json:"value"`
	IsIncluded bool   `json:"is_included"`
}

type PricingOptionResponse struct {
	OptionType  PricingOptionType `json:"option_type"`
	Amount      decimal.Decimal   `json:"amount"`
	Description *string           `json:"description,omitempty"`
	IsDefault   bool              `json:"is_default"`
}

type Response struct {
	ID                     string                  `json:"id"`
	Category               *CategoryResponse       `json:"category,omitempty"`
	Title                  string                  `json:"title"`
	Capacity               int                     `json:"capacity"`
	BasePrice              decimal.Decimal         `json:"base_price"`
	LuggageCapacity        int                     `json:"luggage_capacity"`
	FuelType               FuelType                `json:"fuel_type"`
	IsAC                   bool                    `json:"is_ac"`
	PricePerKM             decimal.Decimal         `json:"price_per_km"`
	IncludedKMs            int                     `json:"included_kms"`
	ExtraKMFare            decimal.Decimal         `json:"extra_km_fare"`
	DriverAllowance        *decimal.Decimal        `json:"driver_allowance,omitempty"`
	FreeWaitingTimeMinutes int                     `json:"free_waiting_time_minutes"`
	IsActive               bool                    `json:"is_active"`
	Inclusions             []InclusionResponse     `json:"inclusions"`
	PricingOptions         []PricingOptionResponse `json:"pricing_options"`
}
