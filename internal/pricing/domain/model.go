package domain

import (
	"time"

	"github.com/shopspring/decimal"
	cabdomain "github.com/tripveda/tripveda/internal/cab/domain"
)

// BookingType selects which pricing branch applies.
type BookingType string

const (
	BookingStay      BookingType = "stay"
	BookingPackage   BookingType = "package"
	BookingActivity  BookingType = "activity"
	BookingCab       BookingType = "cab"
	BookingHouseBoat BookingType = "houseboat"
)

// Valid reports whether t is a known booking type.
func (t BookingType) Valid() bool {
	switch t {
	case BookingStay, BookingPackage, BookingActivity, BookingCab, BookingHouseBoat:
		return true
	default:
		return false
	}
}

// CabOptions carries the cab-only line item fields.
type CabOptions struct {
	PickupLocation string     `json:"pickup_location"`
	DropLocation   string     `json:"drop_location"`
	PickupDatetime *time.Time `json:"pickup_datetime,omitempty"`
}

// HouseBoatOptions carries the houseboat-only line item fields.
type HouseBoatOptions struct {
	FullTimeACOpted bool `json:"is_full_time_ac_opted"`
}

// LineItem references one bookable item. Ref is interpreted against the
// request's booking type; the optional variants carry only the fields
// their type needs.
type LineItem struct {
	Ref      string `json:"ref"`
	Quantity int    `json:"quantity"`
	Adults   int    `json:"adults"`
	Children int    `json:"children"`

	Cab       *CabOptions       `json:"cab,omitempty"`
	HouseBoat *HouseBoatOptions `json:"houseboat,omitempty"`
}

// Request is one pricing call.
type Request struct {
	BookingType    BookingType `json:"booking_type"`
	Items          []LineItem  `json:"items"`
	CheckIn        time.Time   `json:"check_in"`
	CheckOut       time.Time   `json:"check_out"`
	CouponCode     string      `json:"coupon_code,omitempty"`
	InsuranceOpted bool        `json:"insurance_opted"`
}

// InclusionDetail is display data attached to activity and cab items.
type InclusionDetail struct {
	Label      string `json:"label"`
	Value      string `json:"value,omitempty"`
	IsIncluded bool   `json:"is_included"`
}

// ItemDetail is the per-item slice of the breakdown. Money fields are
// rounded to 2 decimal places on emission.
type ItemDetail struct {
	Ref      string `json:"ref"`
	Name     string `json:"name"`
	SubName  string `json:"sub_name,omitempty"`
	Location string `json:"location,omitempty"`

	Quantity int `json:"quantity,omitempty"`
	Nights   int `json:"nights,omitempty"`
	Adults   int `json:"adults,omitempty"`
	Children int `json:"children,omitempty"`

	PricePerUnit   *decimal.Decimal `json:"price_per_unit,omitempty"`
	PricePerPerson *decimal.Decimal `json:"price_per_person,omitempty"`

	ExtraGuestTotal *decimal.Decimal `json:"extra_guest_total,omitempty"`
	ACCharge        *decimal.Decimal `json:"ac_charge,omitempty"`

	BaseAmount decimal.Decimal `json:"base_amount"`
	TaxAmount  decimal.Decimal `json:"tax_amount"`
	Total      decimal.Decimal `json:"total"`

	PaymentOptions []cabdomain.PaymentOption `json:"payment_options,omitempty"`
	Inclusions     []InclusionDetail         `json:"inclusions,omitempty"`
}

// CouponApplied reports the coupon that actually reduced the total.
type CouponApplied struct {
	Code           string          `json:"code"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
}

// Breakdown is the engine's output.
type Breakdown struct {
	Items          []ItemDetail    `json:"breakdown"`
	BaseTotal      decimal.Decimal `json:"base_total"`
	Taxes          decimal.Decimal `json:"taxes"`
	GrossTotal     decimal.Decimal `json:"gross_total"`
	CouponDiscount decimal.Decimal `json:"coupon_discount"`
	CouponApplied  *CouponApplied  `json:"coupon_applied"`
	InsuranceFee   decimal.Decimal `json:"insurance_fee"`
	FinalTotal     decimal.Decimal `json:"final_total"`
}

// Nights floors the stay length at one night, even for same-day ranges.
func Nights(checkIn, checkOut time.Time) int {
	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	if nights < 1 {
		return 1
	}
	return nights
}
