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
	Location   string     `form:"location"`
	Difficulty Difficulty `form:"difficulty"`
	IsActive   *bool      `form:"is_active"`
	SortBy     string     `form:"sort_by"`
	OrderBy    string     `form:"order_by"`
	Limit      int        `form:"limit"`
	Offset     int        `form:"offset"`
}

type FeatureResponse struct {
	FeatureType FeatureType `json:"feature_type"`
	IsIncluded  bool        `json:"is_included"`
}

type InclusionResponse struct {
	Text       string `json:"text"`
	IsIncluded bool   `json:"is_included"`
}

type Response struct {
	ID               string              `json:"id"`
	Title            string              `json:"title"`
	Slug             string              `json:"slug"`
	Location         string              `json:"location"`
	ShortDescription string              `json:"short_description"`
	Description      string              `json:"description"`
	DurationDays     int                 `json:"duration_days"`
	DurationNights   int                 `json:"duration_nights"`
	BasePrice        decimal.Decimal     `json:"base_price"`
	PricePerPerson   decimal.Decimal     `json:"price_per_person"`
	Difficulty       Difficulty          `json:"difficulty"`
	Rating           *decimal.Decimal    `json:"rating,omitempty"`
	ReviewCount      int                 `json:"review_count"`
	MinAge           *int                `json:"min_age,omitempty"`
	MaxAge           *int                `json:"max_age,omitempty"`
	GroupSize        *int                `json:"group_size,omitempty"`
	IsActive         bool                `json:"is_active"`
	Features         []FeatureResponse   `json:"features"`
	Inclusions       []InclusionResponse `json:"inclusions"`
}
