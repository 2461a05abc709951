package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	discountdomain "github.com/tripveda/tripveda/internal/discount/domain"
)

// ACType of a houseboat.
type ACType string

const (
	ACFullTime  ACType = "full_time"
	ACNightOnly ACType = "night_only"
	ACNone      ACType = "none"
)

// CruiseType of a houseboat.
type CruiseType string

const (
	DayCruise       CruiseType = "day_cruise"
	OvernightCruise CruiseType = "overnight_cruise"
)

// Two guests per bedroom before extra-guest surcharges apply.
const GuestsPerBedroom = 2

// HouseBoat is a boat stay priced per night.
type HouseBoat struct {
	ID snowflake.ID `gorm:"primaryKey"`

	Name        string `gorm:"type:text;not null"`
	Slug        string `gorm:"type:text;not null;uniqueIndex"`
	Location    string `gorm:"type:text;not null"`
	Description string `gorm:"type:text;not null"`

	BasePricePerNight decimal.Decimal          `gorm:"column:base_price_per_night;type:numeric(12,2);not null"`
	DiscountID        *snowflake.ID            `gorm:"column:discount_id;index"`
	Discount          *discountdomain.Discount `gorm:"foreignKey:DiscountID"`

	Rating      *decimal.Decimal `gorm:"type:numeric(3,1)"`
	ReviewCount int              `gorm:"column:review_count;not null;default:0"`

	IsActive bool `gorm:"column:is_active;not null;default:true"`

	Specification *HouseBoatSpecification `gorm:"foreignKey:HouseBoatID"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (HouseBoat) TableName() string { return "houseboats" }

// NightlyDiscountedPrice is the per-night price after discount, floored
// at zero.
func (h *HouseBoat) NightlyDiscountedPrice() decimal.Decimal {
	return h.Discount.DiscountedPrice(h.BasePricePerNight)
}

// HouseBoatSpecification holds the structured attributes that drive
// capacity and surcharge pricing.
type HouseBoatSpecification struct {
	ID          snowflake.ID `gorm:"primaryKey"`
	HouseBoatID snowflake.ID `gorm:"column:houseboat_id;not null;uniqueIndex"`

	Bedrooms  int `gorm:"not null"`
	Bathrooms int `gorm:"not null"`
	MaxGuests int `gorm:"column:max_guests;not null"`

	ACType     ACType     `gorm:"column:ac_type;type:text;not null"`
	CruiseType CruiseType `gorm:"column:cruise_type;type:text;not null"`

	ExtraGuestPriceAdult decimal.Decimal `gorm:"column:extra_guest_price_adult;type:numeric(10,2);not null;default:0"`
	ExtraGuestPriceChild decimal.Decimal `gorm:"column:extra_guest_price_child;type:numeric(10,2);not null;default:0"`
	FullTimeACPrice      decimal.Decimal `gorm:"column:full_time_ac_price;type:numeric(10,2);not null;default:0"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (HouseBoatSpecification) TableName() string { return "houseboat_specifications" }

// Capacity is the guest count included in the nightly price.
func (s *HouseBoatSpecification) Capacity() int {
	if s == nil {
		return 0
	}
	return s.Bedrooms * GuestsPerBedroom
}

// ExtraGuestCharge computes the per-night surcharge for guests beyond
// capacity. Adults fill the included capacity first.
func (s *HouseBoatSpecification) ExtraGuestCharge(adults, children int) decimal.Decimal {
	if s == nil {
		return decimal.Zero
	}

	capacity := s.Capacity()
	extraAdults := 0
	extraChildren := 0

	if adults > capacity {
		extraAdults = adults - capacity
		extraChildren = children
	} else {
		remaining := capacity - adults
		if children > remaining {
			extraChildren = children - remaining
		}
	}

	charge := s.ExtraGuestPriceAdult.Mul(decimal.NewFromInt(int64(extraAdults)))
	return charge.Add(s.ExtraGuestPriceChild.Mul(decimal.NewFromInt(int64(extraChildren))))
}
