package domain

import (
	"context"

	pricingdomain "github.com/tripveda/tripveda/internal/pricing/domain"
	"github.com/tripveda/tripveda/pkg/db/pagination"
)

// ReviewItem is one line of a review request. Which reference field is
// required depends on the booking type.
type ReviewItem struct {
	RoomTypeID  string `json:"room_type_id,omitempty"`
	PackageID   string `json:"package_id,omitempty"`
	ActivityID  string `json:"activity_id,omitempty"`
	CabID       string `json:"cab_id,omitempty"`
	HouseBoatID string `json:"houseboat_id,omitempty"`

	Quantity int `json:"quantity"`
	Adults   int `json:"adults"`
	Children int `json:"children"`

	PickupLocation string `json:"pickup_location,omitempty"`
	DropLocation   string `json:"drop_location,omitempty"`
	PickupDatetime string `json:"pickup_datetime,omitempty"`

	FullTimeACOpted bool `json:"is_full_time_ac_opted,omitempty"`
}

type ReviewRequest struct {
	UserID string `json:"-"`

	BookingType    pricingdomain.BookingType `json:"booking_type"`
	PropertyID     string                    `json:"property_id,omitempty"`
	Items          []ReviewItem              `json:"items"`
	CheckIn        string                    `json:"check_in"`
	CheckOut       string                    `json:"check_out"`
	CouponCode     string                    `json:"coupon_code,omitempty"`
	InsuranceOpted bool                      `json:"is_insurance_opted,omitempty"`
}

type ReviewResponse struct {
	BookingID string                   `json:"booking_id"`
	CheckIn   string                   `json:"check_in"`
	CheckOut  string                   `json:"check_out"`
	Breakdown *pricingdomain.Breakdown `json:"pricing"`
}

type TravellerInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Gender    string `json:"gender"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	IsPrimary bool   `json:"is_primary"`
}

type ConfirmRequest struct {
	UserID    string `json:"-"`
	BookingID string `json:"-"`

	ContactTitle    string `json:"title"`
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	CountryCode     string `json:"country_code"`
	SpecialRequests string `json:"special_requests,omitempty"`

	IsGSTRequired  bool   `json:"is_gst_required,omitempty"`
	GSTNumber      string `json:"gst_number,omitempty"`
	CompanyName    string `json:"company_name,omitempty"`
	CompanyAddress string `json:"company_address,omitempty"`

	Travellers []TravellerInput `json:"travellers"`
}

type ConfirmResponse struct {
	BookingID string `json:"booking_id"`
	Status    Status `json:"status"`
}

type ListRequest struct {
	UserID    string `json:"-" form:"-"`
	Status    string `form:"status"`
	PageToken string `form:"page_token"`
	PageSize  int32  `form:"page_size"`
}

type ListResponse struct {
	pagination.PageInfo
	Bookings []Booking `json:"bookings"`
}

type Service interface {
	// Review validates the request, persists a draft booking and
	// returns the priced breakdown.
	Review(ctx context.Context, req ReviewRequest) (*ReviewResponse, error)
	// ReviewDraft re-derives the engine inputs from a stored draft and
	// prices it again.
	ReviewDraft(ctx context.Context, userID, bookingID string) (*ReviewResponse, error)
	Confirm(ctx context.Context, req ConfirmRequest) (*ConfirmResponse, error)
	List(ctx context.Context, req ListRequest) (*ListResponse, error)
	Get(ctx context.Context, userID, bookingID string) (*Booking, error)
}
