package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	discountdomain "github.com/tripveda/tripveda/internal/discount/domain"
)

// PropertyType classifies a bookable property.
type PropertyType string

const (
	PropertyTypeHotel     PropertyType = "hotel"
	PropertyTypeResort    PropertyType = "resort"
	PropertyTypeHomestay  PropertyType = "homestay"
	PropertyTypeVilla     PropertyType = "villa"
	PropertyTypeApartment PropertyType = "apartment"
)

var oneHundred = decimal.NewFromInt(100)

// Property is a stay venue. Room pricing inherits the property-level
// discount and GST percent.
type Property struct {
	ID snowflake.ID `gorm:"primaryKey"`

	Name         string       `gorm:"type:text;not null"`
	Slug         string       `gorm:"type:text;not null;uniqueIndex"`
	PropertyType PropertyType `gorm:"column:property_type;type:text;not null"`
	City         string       `gorm:"type:text;not null;index"`
	Area         *string      `gorm:"type:text"`
	State        string       `gorm:"type:text;not null"`

	StarRating   *int             `gorm:"column:star_rating"`
	ReviewRating *decimal.Decimal `gorm:"column:review_rating;type:numeric(3,1)"`
	ReviewCount  int              `gorm:"column:review_count;not null;default:0"`

	CheckInTime  string `gorm:"column:check_in_time;type:text;not null"`
	CheckOutTime string `gorm:"column:check_out_time;type:text;not null"`
	Description  string `gorm:"type:text;not null"`
	Rules        *string `gorm:"type:text"`

	DiscountID *snowflake.ID            `gorm:"column:discount_id;index"`
	Discount   *discountdomain.Discount `gorm:"foreignKey:DiscountID"`

	GSTPercent decimal.Decimal `gorm:"column:gst_percent;type:numeric(5,2);not null;default:12.00"`
	IsActive   bool            `gorm:"column:is_active;not null;default:true"`

	RoomTypes []RoomType `gorm:"foreignKey:PropertyID"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Property) TableName() string { return "properties" }

// RoomType is a bookable unit within a property.
type RoomType struct {
	ID         snowflake.ID `gorm:"primaryKey"`
	PropertyID snowflake.ID `gorm:"column:property_id;not null;index"`
	Property   *Property    `gorm:"foreignKey:PropertyID"`

	Name         string `gorm:"type:text;not null"`
	MaxGuests    int    `gorm:"column:max_guests;not null"`
	BedroomCount *int   `gorm:"column:bedroom_count"`
	HasBreakfast bool   `gorm:"column:has_breakfast;not null;default:false"`

	RefundPolicy  string `gorm:"column:refund_policy;type:text;not null"`
	BookingPolicy string `gorm:"column:booking_policy;type:text;not null"`

	BasePrice     decimal.Decimal `gorm:"column:base_price;type:numeric(12,2);not null"`
	TotalUnits    int             `gorm:"column:total_units;not null"`
	IsEntirePlace bool            `gorm:"column:is_entire_place;not null;default:false"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (RoomType) TableName() string { return "room_types" }

// DiscountAmount is the property-level discount applied to this room's
// base price, rounded to 2 decimal places for percentage discounts.
func (r *RoomType) DiscountAmount() decimal.Decimal {
	if r.Property == nil {
		return decimal.Zero
	}
	d := r.Property.Discount
	if d == nil || !d.IsActive {
		return decimal.Zero
	}
	if d.Type == discountdomain.DiscountTypePercentage {
		return r.BasePrice.Mul(d.Value).Div(oneHundred).Round(2)
	}
	return d.Value
}

// DiscountedPrice is the base price minus the discount, floored at zero.
func (r *RoomType) DiscountedPrice() decimal.Decimal {
	discounted := r.BasePrice.Sub(r.DiscountAmount())
	if discounted.IsNegative() {
		return decimal.Zero
	}
	return discounted
}

// GSTAmount is tax on the discounted price at the property's GST
// percent, rounded to 2 decimal places per night. Stay totals multiply
// the per-night amount, so nightly figures always match the displayed
// room rate.
func (r *RoomType) GSTAmount() decimal.Decimal {
	if r.Property == nil {
		return decimal.Zero
	}
	return r.DiscountedPrice().Mul(r.Property.GSTPercent).Div(oneHundred).Round(2)
}

// TotalPayable is the per-night amount including discount and GST.
func (r *RoomType) TotalPayable() decimal.Decimal {
	return r.DiscountedPrice().Add(r.GSTAmount())
}
