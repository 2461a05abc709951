package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	discountdomain "github.com/tripveda/tripveda/internal/discount/domain"
	"gorm.io/datatypes"
)

// FeatureType tags the icon-level features a package carries.
type FeatureType string

const (
	FeatureSightseeing FeatureType = "sightseeing"
	FeatureStay        FeatureType = "stay"
	FeatureTransport   FeatureType = "transport"
	FeatureMeals       FeatureType = "meals"
)

// HolidayPackage is a multi-day itinerary priced per person.
type HolidayPackage struct {
	ID snowflake.ID `gorm:"primaryKey"`

	Title              string         `gorm:"type:text;not null"`
	Slug               string         `gorm:"type:text;not null;uniqueIndex"`
	PrimaryLocation    string         `gorm:"column:primary_location;type:text;not null"`
	SecondaryLocations datatypes.JSON `gorm:"column:secondary_locations"`

	DurationDays   int `gorm:"column:duration_days;not null"`
	DurationNights int `gorm:"column:duration_nights;not null"`

	BasePrice  decimal.Decimal          `gorm:"column:base_price;type:numeric(12,2);not null"`
	DiscountID *snowflake.ID            `gorm:"column:discount_id;index"`
	Discount   *discountdomain.Discount `gorm:"foreignKey:DiscountID"`

	Rating      *decimal.Decimal `gorm:"type:numeric(3,1)"`
	ReviewCount int              `gorm:"column:review_count;not null;default:0"`

	ShortDescription   string         `gorm:"column:short_description;type:text;not null"`
	Highlights         datatypes.JSON `gorm:"column:highlights"`
	TermsAndConditions string         `gorm:"column:terms_and_conditions;type:text;not null"`

	IsActive bool `gorm:"column:is_active;not null;default:true"`

	Features []PackageFeature `gorm:"foreignKey:PackageID"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (HolidayPackage) TableName() string { return "holiday_packages" }

// PricePerPerson is the discounted per-person price, floored at zero.
func (p *HolidayPackage) PricePerPerson() decimal.Decimal {
	return p.Discount.DiscountedPrice(p.BasePrice)
}

// PackageFeature marks whether sightseeing, stay, transport, or meals
// are part of the package.
type PackageFeature struct {
	ID        snowflake.ID `gorm:"primaryKey"`
	PackageID snowflake.ID `gorm:"column:package_id;not null;index"`

	FeatureType FeatureType `gorm:"column:feature_type;type:text;not null"`
	IsIncluded  bool        `gorm:"column:is_included;not null;default:true"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (PackageFeature) TableName() string { return "package_features" }
