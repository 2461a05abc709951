package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	pricingdomain "github.com/tripveda/tripveda/internal/pricing/domain"
	"gorm.io/datatypes"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

type RefundStatus string

const (
	RefundNone       RefundStatus = "none"
	RefundProcessing RefundStatus = "processing"
	RefundProcessed  RefundStatus = "processed"
	RefundNoDue      RefundStatus = "no_refund_due"
)

// Booking is the order record for any booking type. The pricing
// breakdown returned at review time is persisted as a JSON snapshot so
// the quoted price survives later catalog or coupon changes.
type Booking struct {
	ID     snowflake.ID `gorm:"primaryKey" json:"id,string"`
	UserID string       `gorm:"column:user_id;type:text;not null;index" json:"user_id"`

	BookingType  pricingdomain.BookingType `gorm:"column:booking_type;type:text;not null" json:"booking_type"`
	Status       Status                    `gorm:"type:text;not null;default:'draft';index" json:"status"`
	RefundStatus RefundStatus              `gorm:"column:refund_status;type:text;not null;default:'none'" json:"refund_status"`

	CouponID *snowflake.ID `gorm:"column:coupon_id;index" json:"coupon_id,omitempty"`

	TotalAmount decimal.Decimal `gorm:"column:total_amount;type:numeric(12,2);not null;default:0" json:"total_amount"`
	AmountPaid  decimal.Decimal `gorm:"column:amount_paid;type:numeric(12,2);not null;default:0" json:"amount_paid"`

	InsuranceOpted  bool            `gorm:"column:insurance_opted;not null;default:false" json:"insurance_opted"`
	InsuranceAmount decimal.Decimal `gorm:"column:insurance_amount;type:numeric(10,2);not null;default:0" json:"insurance_amount"`

	PricingBreakdown datatypes.JSON `gorm:"column:pricing_breakdown" json:"pricing_breakdown,omitempty"`

	CancelledAt *time.Time `gorm:"column:cancelled_at" json:"cancelled_at,omitempty"`

	// Contact person for the booking.
	ContactTitle    string `gorm:"column:contact_title;type:text;not null;default:''" json:"contact_title"`
	FullName        string `gorm:"column:full_name;type:text;not null;default:''" json:"full_name"`
	Email           string `gorm:"type:text;not null;default:''" json:"email"`
	Phone           string `gorm:"type:text;not null;default:''" json:"phone"`
	CountryCode     string `gorm:"column:country_code;type:text;not null;default:''" json:"country_code"`
	SpecialRequests string `gorm:"column:special_requests;type:text;not null;default:''" json:"special_requests,omitempty"`

	// GST invoice details, filled only when the customer asks for one.
	IsGSTRequired  bool   `gorm:"column:is_gst_required;not null;default:false" json:"is_gst_required"`
	GSTNumber      string `gorm:"column:gst_number;type:text;not null;default:''" json:"gst_number,omitempty"`
	CompanyName    string `gorm:"column:company_name;type:text;not null;default:''" json:"company_name,omitempty"`
	CompanyAddress string `gorm:"column:company_address;type:text;not null;default:''" json:"company_address,omitempty"`

	Items      []BookingItem `gorm:"foreignKey:BookingID" json:"items,omitempty"`
	Travellers []Traveller   `gorm:"foreignKey:BookingID" json:"travellers,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Booking) TableName() string { return "bookings" }

// BookingItem carries exactly one product reference, selected by the
// parent booking's type.
type BookingItem struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id,string"`
	BookingID snowflake.ID `gorm:"column:booking_id;not null;index" json:"-"`

	PropertyID  *snowflake.ID `gorm:"column:property_id;index" json:"property_id,omitempty"`
	RoomTypeID  *snowflake.ID `gorm:"column:room_type_id" json:"room_type_id,omitempty"`
	PackageID   *snowflake.ID `gorm:"column:package_id" json:"package_id,omitempty"`
	ActivityID  *snowflake.ID `gorm:"column:activity_id" json:"activity_id,omitempty"`
	CabID       *snowflake.ID `gorm:"column:cab_id" json:"cab_id,omitempty"`
	HouseBoatID *snowflake.ID `gorm:"column:houseboat_id" json:"houseboat_id,omitempty"`

	CheckIn  time.Time `gorm:"column:check_in;type:date;not null" json:"check_in"`
	CheckOut time.Time `gorm:"column:check_out;type:date;not null" json:"check_out"`

	Quantity int `gorm:"not null;default:1" json:"quantity"`
	Adults   int `gorm:"not null;default:1" json:"adults"`
	Children int `gorm:"not null;default:0" json:"children"`

	PickupLocation string     `gorm:"column:pickup_location;type:text;not null;default:''" json:"pickup_location,omitempty"`
	DropLocation   string     `gorm:"column:drop_location;type:text;not null;default:''" json:"drop_location,omitempty"`
	PickupDatetime *time.Time `gorm:"column:pickup_datetime" json:"pickup_datetime,omitempty"`

	FullTimeACOpted bool `gorm:"column:is_full_time_ac_opted;not null;default:false" json:"is_full_time_ac_opted"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (BookingItem) TableName() string { return "booking_items" }

// Ref returns the product reference for the given booking type, or ""
// when the expected foreign key is not set.
func (i *BookingItem) Ref(bookingType pricingdomain.BookingType) string {
	var id *snowflake.ID
	switch bookingType {
	case pricingdomain.BookingStay:
		id = i.RoomTypeID
	case pricingdomain.BookingPackage:
		id = i.PackageID
	case pricingdomain.BookingActivity:
		id = i.ActivityID
	case pricingdomain.BookingCab:
		id = i.CabID
	case pricingdomain.BookingHouseBoat:
		id = i.HouseBoatID
	}
	if id == nil {
		return ""
	}
	return id.String()
}

// Traveller is a guest attached to a booking at confirmation.
type Traveller struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id,string"`
	BookingID snowflake.ID `gorm:"column:booking_id;not null;index" json:"-"`

	FirstName string `gorm:"column:first_name;type:text;not null" json:"first_name"`
	LastName  string `gorm:"column:last_name;type:text;not null;default:''" json:"last_name"`
	Gender    string `gorm:"type:text;not null;default:''" json:"gender"`
	Email     string `gorm:"type:text;not null;default:''" json:"email,omitempty"`
	Phone     string `gorm:"type:text;not null;default:''" json:"phone,omitempty"`
	IsPrimary bool   `gorm:"column:is_primary;not null;default:false" json:"is_primary"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Traveller) TableName() string { return "travellers" }
