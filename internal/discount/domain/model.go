package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// DiscountType selects how Value is interpreted.
type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFlat       DiscountType = "flat"
)

var oneHundred = decimal.NewFromInt(100)

// Discount is a reusable price reduction attached to catalog items.
type Discount struct {
	ID snowflake.ID `gorm:"primaryKey"`

	Name     string          `gorm:"type:text;not null"`
	Type     DiscountType    `gorm:"type:text;not null"`
	Value    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	IsActive bool            `gorm:"column:is_active;not null;default:true"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Discount) TableName() string { return "discounts" }

// AmountOff returns the reduction for the given price.
// Inactive or nil discounts reduce nothing.
func (d *Discount) AmountOff(price decimal.Decimal) decimal.Decimal {
	if d == nil || !d.IsActive {
		return decimal.Zero
	}
	switch d.Type {
	case DiscountTypePercentage:
		return price.Mul(d.Value).Div(oneHundred)
	case DiscountTypeFlat:
		return d.Value
	default:
		return decimal.Zero
	}
}

// DiscountedPrice returns the price after the discount, floored at zero.
func (d *Discount) DiscountedPrice(price decimal.Decimal) decimal.Decimal {
	discounted := price.Sub(d.AmountOff(price))
	if discounted.IsNegative() {
		return decimal.Zero
	}
	return discounted
}
