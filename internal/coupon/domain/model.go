package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// Coupon is a flat-amount discount valid within a date window.
type Coupon struct {
	ID snowflake.ID `gorm:"primaryKey"`

	Code           string          `gorm:"type:text;not null;uniqueIndex"`
	DiscountAmount decimal.Decimal `gorm:"column:discount_amount;type:numeric(10,2);not null"`

	ValidFrom time.Time `gorm:"column:valid_from;type:date;not null"`
	ValidTo   time.Time `gorm:"column:valid_to;type:date;not null"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Coupon) TableName() string { return "coupons" }

// ValidOn reports whether the coupon window covers the given day.
// Comparison is by calendar date, not instant.
func (c *Coupon) ValidOn(today time.Time) bool {
	if c == nil {
		return false
	}
	day := truncateToDate(today)
	return !day.Before(truncateToDate(c.ValidFrom)) && !day.After(truncateToDate(c.ValidTo))
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// CouponUsage records a coupon redeemed against a booking.
type CouponUsage struct {
	ID        snowflake.ID `gorm:"primaryKey"`
	CouponID  snowflake.ID `gorm:"column:coupon_id;not null;index"`
	BookingID snowflake.ID `gorm:"column:booking_id;not null;index"`
	UserID    string       `gorm:"column:user_id;type:text;not null;index"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (CouponUsage) TableName() string { return "coupon_usages" }
