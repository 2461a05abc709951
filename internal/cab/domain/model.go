package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// FuelType of the vehicle.
type FuelType string

const (
	FuelPetrol FuelType = "petrol"
	FuelDiesel FuelType = "diesel"
	FuelCNG    FuelType = "cng"
)

// PricingOptionType distinguishes up-front from deferred payment.
type PricingOptionType string

const (
	PayNow   PricingOptionType = "pay_now"
	PayLater PricingOptionType = "pay_later"
)

// CabCategory groups cabs (Sedan, SUV, Hatchback).
type CabCategory struct {
	ID snowflake.ID `gorm:"primaryKey"`

	Name        string  `gorm:"type:text;not null"`
	Description *string `gorm:"type:text"`
	IsActive    bool    `gorm:"column:is_active;not null;default:true"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (CabCategory) TableName() string { return "cab_categories" }

// Cab is a rentable vehicle priced at a flat day rate.
type Cab struct {
	ID snowflake.ID `gorm:"primaryKey"`

	CategoryID *snowflake.ID `gorm:"column:category_id;index"`
	Category   *CabCategory  `gorm:"foreignKey:CategoryID"`

	Title     string          `gorm:"type:text;not null"`
	Capacity  int             `gorm:"not null"`
	BasePrice decimal.Decimal `gorm:"column:base_price;type:numeric(12,2);not null"`

	LuggageCapacity int      `gorm:"column:luggage_capacity;not null;default:2"`
	FuelType        FuelType `gorm:"column:fuel_type;type:text;not null"`
	IsAC            bool     `gorm:"column:is_ac;not null;default:true"`

	PricePerKM      decimal.Decimal  `gorm:"column:price_per_km;type:numeric(10,2);not null"`
	IncludedKMs     int              `gorm:"column:included_kms;not null"`
	ExtraKMFare     decimal.Decimal  `gorm:"column:extra_km_fare;type:numeric(10,2);not null"`
	DriverAllowance *decimal.Decimal `gorm:"column:driver_allowance;type:numeric(10,2)"`

	FreeWaitingTimeMinutes int `gorm:"column:free_waiting_time_minutes;not null;default:45"`

	IsActive bool `gorm:"column:is_active;not null;default:true"`

	Inclusions     []CabInclusion     `gorm:"foreignKey:CabID"`
	PricingOptions []CabPricingOption `gorm:"foreignKey:CabID"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Cab) TableName() string { return "cabs" }

// PayLaterOption returns the explicit pay-later pricing record, if any.
func (c *Cab) PayLaterOption() *CabPricingOption {
	for i := range c.PricingOptions {
		if c.PricingOptions[i].OptionType == PayLater {
			return &c.PricingOptions[i]
		}
	}
	return nil
}

// CabInclusion stores inclusion metrics such as "Parking Charges: Included".
type CabInclusion struct {
	ID    snowflake.ID `gorm:"primaryKey"`
	CabID snowflake.ID `gorm:"column:cab_id;not null;index"`

	Label      string `gorm:"type:text;not null"`
	Value      string `gorm:"type:text;not null"`
	IsIncluded bool   `gorm:"column:is_included;not null;default:true"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (CabInclusion) TableName() string { return "cab_inclusions" }

// CabPricingOption is an explicit payment choice ("Pay Now" / "Pay Later").
type CabPricingOption struct {
	ID    snowflake.ID `gorm:"primaryKey"`
	CabID snowflake.ID `gorm:"column:cab_id;not null;index"`

	OptionType  PricingOptionType `gorm:"column:option_type;type:text;not null"`
	Amount      decimal.Decimal   `gorm:"type:numeric(12,2);not null"`
	Description *string           `gorm:"type:text"`
	IsDefault   bool              `gorm:"column:is_default;not null;default:false"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (CabPricingOption) TableName() string { return "cab_pricing_options" }

// PaymentOption is a computed choice offered at checkout.
type PaymentOption struct {
	OptionType PricingOptionType `json:"option_type"`
	Label      string            `json:"label"`
	Amount     decimal.Decimal   `json:"amount"`
}

// PaymentOptions builds the full-payment and part-payment choices for a
// gross item total. The part payment falls back to partPercent of the
// full price, rounded to 2 decimal places, when no explicit pay-later
// record exists.
func (c *Cab) PaymentOptions(grossTotal decimal.Decimal, partPercent decimal.Decimal) []PaymentOption {
	options := []PaymentOption{
		{
			OptionType: PayNow,
			Label:      "Full Payment",
			Amount:     grossTotal.Round(2),
		},
	}

	partAmount := grossTotal.Mul(partPercent).Div(decimal.NewFromInt(100)).Round(2)
	if explicit := c.PayLaterOption(); explicit != nil {
		partAmount = explicit.Amount.Round(2)
	}
	options = append(options, PaymentOption{
		OptionType: PayLater,
		Label:      "Part Payment",
		Amount:     partAmount,
	})

	return options
}
