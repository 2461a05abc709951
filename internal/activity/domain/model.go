package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	discountdomain "github.com/tripveda/tripveda/internal/discount/domain"
)

// Difficulty grades how demanding an activity is.
type Difficulty string

const (
	DifficultyEasy     Difficulty = "easy"
	DifficultyModerate Difficulty = "moderate"
	DifficultyHard     Difficulty = "hard"
)

// FeatureType tags the icon-level features an activity carries.
type FeatureType string

const (
	FeatureSightseeing FeatureType = "sightseeing"
	FeatureStay        FeatureType = "stay"
	FeatureTransport   FeatureType = "transport"
	FeatureMeals       FeatureType = "meals"
)

// Activity is an experience (trek, sightseeing, adventure) priced per person.
type Activity struct {
	ID snowflake.ID `gorm:"primaryKey"`

	Title            string `gorm:"type:text;not null"`
	Slug             string `gorm:"type:text;not null;uniqueIndex"`
	Location         string `gorm:"type:text;not null"`
	ShortDescription string `gorm:"column:short_description;type:text;not null"`
	Description      string `gorm:"type:text;not null"`

	DurationDays   int `gorm:"column:duration_days;not null"`
	DurationNights int `gorm:"column:duration_nights;not null;default:0"`

	BasePrice  decimal.Decimal          `gorm:"column:base_price;type:numeric(12,2);not null"`
	DiscountID *snowflake.ID            `gorm:"column:discount_id;index"`
	Discount   *discountdomain.Discount `gorm:"foreignKey:DiscountID"`

	Difficulty  Difficulty       `gorm:"type:text;not null"`
	Rating      *decimal.Decimal `gorm:"type:numeric(3,1)"`
	ReviewCount int              `gorm:"column:review_count;not null;default:0"`

	MinAge    *int `gorm:"column:min_age"`
	MaxAge    *int `gorm:"column:max_age"`
	GroupSize *int `gorm:"column:group_size"`

	IsActive bool `gorm:"column:is_active;not null;default:true"`

	Features   []ActivityFeature   `gorm:"foreignKey:ActivityID"`
	Inclusions []ActivityInclusion `gorm:"foreignKey:ActivityID"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Activity) TableName() string { return "activities" }

// PricePerPerson is the discounted per-person price, floored at zero.
func (a *Activity) PricePerPerson() decimal.Decimal {
	return a.Discount.DiscountedPrice(a.BasePrice)
}

type ActivityFeature struct {
	ID         snowflake.ID `gorm:"primaryKey"`
	ActivityID snowflake.ID `gorm:"column:activity_id;not null;index"`

	FeatureType FeatureType `gorm:"column:feature_type;type:text;not null"`
	IsIncluded  bool        `gorm:"column:is_included;not null;default:true"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (ActivityFeature) TableName() string { return "activity_features" }

type ActivityInclusion struct {
	ID         snowflake.ID `gorm:"primaryKey"`
	ActivityID snowflake.ID `gorm:"column:activity_id;not null;index"`

	Text       string `gorm:"type:text;not null"`
	IsIncluded bool   `gorm:"column:is_included;not null;default:true"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (ActivityInclusion) TableName() string { return "activity_inclusions" }
