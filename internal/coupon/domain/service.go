package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type Service interface {
	Validate(ctx context.Context, code string) (*ValidationResponse, error)
	List(ctx context.Context) ([]Response, error)
}

type Response struct {
	ID             string          `json:"id"`
	Code           string          `json:"code"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	ValidFrom      time.Time       `json:"valid_from"`
	ValidTo        time.Time       `json:"valid_to"`
}

type ValidationResponse struct {
	Code           string          `json:"code"`
	Valid          bool            `json:"valid"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
}
