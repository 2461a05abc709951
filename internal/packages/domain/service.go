package domain

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
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

type FeatureResponse struct {
	FeatureType FeatureType `json:"feature_type"`
	IsIncluded  bool        `json:"is_included"`
}

type Response struct {
	ID                 string            `json:"id"`
	Title              string            `json:"title"`
	Slug               string            `json:"slug"`
	PrimaryLocation    string            `json:"primary_location"`
	SecondaryLocations datatypes.JSON    `json:"secondary_locations,omitempty"`
	DurationDays       int               `json:"duration_days"`
	DurationNights     int               `json:"duration_nights"`
	BasePrice          decimal.Decimal   `json:"base_price"`
	PricePerPerson     decimal.Decimal   `json:"price_per_person"`
	Rating             *decimal.Decimal  `json:"rating,omitempty"`
	ReviewCount        int               `json:"review_count"`
	ShortDescription   string            `json:"short_description"`
	Highlights         datatypes.JSON    `json:"highlights,omitempty"`
	TermsAndConditions string            `json:"terms_and_conditions"`
	IsActive           bool              `json:"is_active"`
	Features           []FeatureResponse `json:"features"`
}
