package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	bookingdomain "github.com/tripveda/tripveda/internal/booking/domain"
	"github.com/tripveda/tripveda/internal/clock"
	coupondomain "github.com/tripveda/tripveda/internal/coupon/domain"
	"github.com/tripveda/tripveda/internal/observability/metrics"
	pricingdomain "github.com/tripveda/tripveda/internal/pricing/domain"
	"github.com/tripveda/tripveda/internal/ratelimit"
	"github.com/tripveda/tripveda/pkg/db/pagination"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

type serviceParam struct {
	fx.In

	Logger  *zap.Logger
	GenID   *snowflake.Node
	Repo    bookingdomain.Repository
	Engine  pricingdomain.Service
	Catalog pricingdomain.Catalog
	Coupons coupondomain.Repository
	Clock   clock.Clock
	Limiter *ratelimit.ReviewLimiter `optional:"true"`
	Metrics *metrics.Metrics         `optional:"true"`
}

type service struct {
	log     *zap.Logger
	genID   *snowflake.Node
	repo    bookingdomain.Repository
	engine  pricingdomain.Service
	catalog pricingdomain.Catalog
	coupons coupondomain.Repository
	clock   clock.Clock
	limiter *ratelimit.ReviewLimiter
	metrics *metrics.Metrics
}

func NewService(p serviceParam) bookingdomain.Service {
	return &service{
		log:     p.Logger.Named("booking.service"),
		genID:   p.GenID,
		repo:    p.Repo,
		engine:  p.Engine,
		catalog: p.Catalog,
		coupons: p.Coupons,
		clock:   p.Clock,
		limiter: p.Limiter,
		metrics: p.Metrics,
	}
}

func (s *service) Review(ctx context.Context, req bookingdomain.ReviewRequest) (*bookingdomain.ReviewResponse, error) {
	if strings.TrimSpace(req.UserID) == "" {
		return nil, bookingdomain.ErrMissingUser
	}
	if !req.BookingType.Valid() {
		return nil, pricingdomain.ErrUnknownBookingType
	}
	if len(req.Items) == 0 {
		return nil, bookingdomain.NewValidationError("items", "at least one item is required")
	}

	checkIn, err := parseDate("check_in", req.CheckIn)
	if err != nil {
		return nil, err
	}
	checkOut, err := parseDate("check_out", req.CheckOut)
	if err != nil {
		return nil, err
	}
	if err := validateDateOrder(req.BookingType, checkIn, checkOut); err != nil {
		return nil, err
	}

	items, lines, err := s.validateItems(ctx, req, checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	breakdown, err := s.engine.Calculate(ctx, pricingdomain.Request{
		BookingType:    req.BookingType,
		Items:          lines,
		CheckIn:        checkIn,
		CheckOut:       checkOut,
		CouponCode:     strings.TrimSpace(req.CouponCode),
		InsuranceOpted: req.InsuranceOpted,
	})
	if err != nil {
		return nil, err
	}

	snapshot, err := json.Marshal(breakdown)
	if err != nil {
		return nil, err
	}

	booking := &bookingdomain.Booking{
		ID:               s.genID.Generate(),
		UserID:           req.UserID,
		BookingType:      req.BookingType,
		Status:           bookingdomain.StatusDraft,
		RefundStatus:     bookingdomain.RefundNone,
		TotalAmount:      breakdown.FinalTotal,
		InsuranceOpted:   req.InsuranceOpted,
		InsuranceAmount:  breakdown.InsuranceFee,
		PricingBreakdown: snapshot,
		Items:            items,
	}
	for i := range booking.Items {
		booking.Items[i].ID = s.genID.Generate()
		booking.Items[i].BookingID = booking.ID
	}

	if breakdown.CouponApplied != nil {
		coupon, err := s.coupons.FindByCode(ctx, breakdown.CouponApplied.Code)
		if err != nil {
			return nil, err
		}
		if coupon != nil {
			booking.CouponID = &coupon.ID
		}
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.RecordBookingCreated(ctx, string(req.BookingType))
	}
	s.log.Info("draft booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("booking_type", string(req.BookingType)),
		zap.String("final_total", breakdown.FinalTotal.String()),
	)

	return &bookingdomain.ReviewResponse{
		BookingID: booking.ID.String(),
		CheckIn:   checkIn.Format(dateLayout),
		CheckOut:  checkOut.Format(dateLayout),
		Breakdown: breakdown,
	}, nil
}

func (s *service) ReviewDraft(ctx context.Context, userID, bookingID string) (*bookingdomain.ReviewResponse, error) {
	booking, err := s.findOwned(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status != bookingdomain.StatusDraft {
		return nil, bookingdomain.ErrNotDraft
	}
	if len(booking.Items) == 0 {
		return nil, bookingdomain.NewValidationError("items", "draft booking has no items")
	}

	checkIn := booking.Items[0].CheckIn
	checkOut := booking.Items[0].CheckOut

	lines := make([]pricingdomain.LineItem, 0, len(booking.Items))
	for i := range booking.Items {
		item := &booking.Items[i]
		line := pricingdomain.LineItem{
			Ref:      item.Ref(booking.BookingType),
			Quantity: item.Quantity,
			Adults:   item.Adults,
			Children: item.Children,
		}
		switch booking.BookingType {
		case pricingdomain.BookingCab:
			line.Cab = &pricingdomain.CabOptions{
				PickupLocation: item.PickupLocation,
				DropLocation:   item.DropLocation,
				PickupDatetime: item.PickupDatetime,
			}
		case pricingdomain.BookingHouseBoat:
			line.HouseBoat = &pricingdomain.HouseBoatOptions{FullTimeACOpted: item.FullTimeACOpted}
		}
		lines = append(lines, line)
	}

	couponCode := ""
	if booking.CouponID != nil {
		coupon, err := s.coupons.FindByID(ctx, *booking.CouponID)
		if err != nil {
			return nil, err
		}
		if coupon != nil {
			couponCode = coupon.Code
		}
	}

	breakdown, err := s.engine.Calculate(ctx, pricingdomain.Request{
		BookingType:    booking.BookingType,
		Items:          lines,
		CheckIn:        checkIn,
		CheckOut:       checkOut,
		CouponCode:     couponCode,
		InsuranceOpted: booking.InsuranceOpted,
	})
	if err != nil {
		return nil, err
	}

	return &bookingdomain.ReviewResponse{
		BookingID: booking.ID.String(),
		CheckIn:   checkIn.Format(dateLayout),
		CheckOut:  checkOut.Format(dateLayout),
		Breakdown: breakdown,
	}, nil
}

func (s *service) Confirm(ctx context.Context, req bookingdomain.ConfirmRequest) (*bookingdomain.ConfirmResponse, error) {
	if strings.TrimSpace(req.FullName) == "" {
		return nil, bookingdomain.NewValidationError("full_name", "this field is required")
	}
	if strings.TrimSpace(req.Email) == "" {
		return nil, bookingdomain.NewValidationError("email", "this field is required")
	}
	if strings.TrimSpace(req.Phone) == "" {
		return nil, bookingdomain.NewValidationError("phone", "this field is required")
	}

	release, err := s.limiter.LockConfirm(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, ratelimit.ErrLockHeld) {
			return nil, bookingdomain.ErrConfirmInProgress
		}
		return nil, err
	}
	defer release()

	booking, err := s.findOwned(ctx, req.UserID, req.BookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status != bookingdomain.StatusDraft {
		return nil, bookingdomain.ErrNotDraft
	}

	booking.ContactTitle = strings.TrimSpace(req.ContactTitle)
	booking.FullName = strings.TrimSpace(req.FullName)
	booking.Email = strings.TrimSpace(req.Email)
	booking.Phone = strings.TrimSpace(req.Phone)
	booking.CountryCode = strings.TrimSpace(req.CountryCode)
	booking.SpecialRequests = strings.TrimSpace(req.SpecialRequests)
	booking.IsGSTRequired = req.IsGSTRequired
	booking.GSTNumber = strings.TrimSpace(req.GSTNumber)
	booking.CompanyName = strings.TrimSpace(req.CompanyName)
	booking.CompanyAddress = strings.TrimSpace(req.CompanyAddress)
	booking.Status = bookingdomain.StatusPending

	travellers := make([]bookingdomain.Traveller, 0, len(req.Travellers))
	for _, t := range req.Travellers {
		if strings.TrimSpace(t.FirstName) == "" {
			return nil, bookingdomain.NewValidationError("travellers", "traveller first_name is required")
		}
		travellers = append(travellers, bookingdomain.Traveller{
			ID:        s.genID.Generate(),
			BookingID: booking.ID,
			FirstName: strings.TrimSpace(t.FirstName),
			LastName:  strings.TrimSpace(t.LastName),
			Gender:    strings.TrimSpace(t.Gender),
			Email:     strings.TrimSpace(t.Email),
			Phone:     strings.TrimSpace(t.Phone),
			IsPrimary: t.IsPrimary,
		})
	}

	if err := s.repo.SaveWithTravellers(ctx, booking, travellers); err != nil {
		return nil, err
	}

	if booking.CouponID != nil {
		usage := &coupondomain.CouponUsage{
			ID:        s.genID.Generate(),
			CouponID:  *booking.CouponID,
			BookingID: booking.ID,
			UserID:    booking.UserID,
			CreatedAt: s.clock.Now(),
			UpdatedAt: s.clock.Now(),
		}
		if err := s.coupons.RecordUsage(ctx, usage); err != nil {
			s.log.Warn("coupon usage not recorded",
				zap.String("booking_id", booking.ID.String()),
				zap.Error(err),
			)
		}
	}

	if s.metrics != nil {
		s.metrics.RecordBookingConfirmed(ctx, string(booking.BookingType))
	}
	s.log.Info("booking confirmed",
		zap.String("booking_id", booking.ID.String()),
		zap.Int("travellers", len(travellers)),
	)

	return &bookingdomain.ConfirmResponse{
		BookingID: booking.ID.String(),
		Status:    booking.Status,
	}, nil
}

func (s *service) List(ctx context.Context, req bookingdomain.ListRequest) (*bookingdomain.ListResponse, error) {
	if strings.TrimSpace(req.UserID) == "" {
		return nil, bookingdomain.ErrMissingUser
	}

	var statuses []bookingdomain.Status
	switch strings.TrimSpace(req.Status) {
	case "upcoming":
		statuses = []bookingdomain.Status{bookingdomain.StatusPending, bookingdomain.StatusConfirmed}
	case "cancelled":
		statuses = []bookingdomain.Status{bookingdomain.StatusCancelled}
	case "completed":
		statuses = []bookingdomain.Status{bookingdomain.StatusCompleted}
	case "":
	default:
		return nil, bookingdomain.NewValidationError("status", "must be one of upcoming, cancelled, completed")
	}

	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}

	items, err := s.repo.List(ctx, req.UserID, statuses, pagination.Pagination{
		PageToken: req.PageToken,
		PageSize:  int(pageSize),
	})
	if err != nil {
		return nil, err
	}

	pageInfo := pagination.BuildCursorPageInfo(items, pageSize, func(b *bookingdomain.Booking) string {
		token, err := pagination.EncodeCursor(pagination.Cursor{
			ID:        b.ID.String(),
			CreatedAt: b.CreatedAt.Format(time.RFC3339Nano),
		})
		if err != nil {
			return ""
		}
		return token
	})
	if pageInfo != nil && pageInfo.HasMore && len(items) > int(pageSize) {
		items = items[:pageSize]
	}

	bookings := make([]bookingdomain.Booking, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		bookings = append(bookings, *item)
	}

	resp := &bookingdomain.ListResponse{Bookings: bookings}
	if pageInfo != nil {
		resp.PageInfo = *pageInfo
	}
	return resp, nil
}

func (s *service) Get(ctx context.Context, userID, bookingID string) (*bookingdomain.Booking, error) {
	return s.findOwned(ctx, userID, bookingID)
}

func (s *service) findOwned(ctx context.Context, userID, bookingID string) (*bookingdomain.Booking, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, bookingdomain.ErrMissingUser
	}
	id, err := snowflake.ParseString(strings.TrimSpace(bookingID))
	if err != nil {
		return nil, bookingdomain.ErrNotFound
	}
	booking, err := s.repo.FindByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, bookingdomain.ErrNotFound
	}
	return booking, nil
}

// validateItems enforces the per-type field requirements and builds the
// persisted item rows together with the engine line items.
func (s *service) validateItems(ctx context.Context, req bookingdomain.ReviewRequest, checkIn, checkOut time.Time) ([]bookingdomain.BookingItem, []pricingdomain.LineItem, error) {
	var propertyID snowflake.ID
	if req.BookingType == pricingdomain.BookingStay {
		if strings.TrimSpace(req.PropertyID) == "" {
			return nil, nil, bookingdomain.NewValidationError("property_id", "this field is required for stay bookings")
		}
		parsed, err := snowflake.ParseString(strings.TrimSpace(req.PropertyID))
		if err != nil {
			return nil, nil, bookingdomain.NewValidationError("property_id", "invalid property reference")
		}
		propertyID = parsed
	}

	items := make([]bookingdomain.BookingItem, 0, len(req.Items))
	lines := make([]pricingdomain.LineItem, 0, len(req.Items))

	for _, in := range req.Items {
		quantity := in.Quantity
		if quantity < 1 {
			quantity = 1
		}
		adults := in.Adults
		if adults < 1 {
			adults = 1
		}
		children := in.Children
		if children < 0 {
			children = 0
		}

		item := bookingdomain.BookingItem{
			CheckIn:  checkIn,
			CheckOut: checkOut,
			Quantity: quantity,
			Adults:   adults,
			Children: children,
		}
		line := pricingdomain.LineItem{
			Quantity: quantity,
			Adults:   adults,
			Children: children,
		}

		switch req.BookingType {
		case pricingdomain.BookingStay:
			ref, id, err := requireRef("room_type_id", in.RoomTypeID, "stay")
			if err != nil {
				return nil, nil, err
			}
			room, err := s.catalog.RoomType(ctx, ref)
			if err != nil {
				return nil, nil, err
			}
			if room == nil {
				return nil, nil, bookingdomain.NewValidationError("room_type_id", "room type %s not found or inactive", ref)
			}
			if room.PropertyID != propertyID {
				return nil, nil, bookingdomain.NewValidationError("room_type_id", "room type %s does not belong to this property", ref)
			}
			if guests := adults + children; guests > room.MaxGuests {
				return nil, nil, bookingdomain.NewValidationError("items",
					"guest count (%d) exceeds maximum capacity (%d) for %q", guests, room.MaxGuests, room.Name)
			}
			if room.IsEntirePlace {
				if quantity > 1 {
					return nil, nil, bookingdomain.NewValidationError("items",
						"cannot book more than 1 unit of entire place %q", room.Name)
				}
				taken, err := s.repo.HasOverlappingStay(ctx, propertyID, checkIn, checkOut)
				if err != nil {
					return nil, nil, err
				}
				if taken {
					return nil, nil, bookingdomain.NewValidationError("items",
						"property is already booked for these dates")
				}
			}
			item.PropertyID = &propertyID
			item.RoomTypeID = &id
			line.Ref = ref

		case pricingdomain.BookingPackage:
			ref, id, err := requireRef("package_id", in.PackageID, "package")
			if err != nil {
				return nil, nil, err
			}
			item.PackageID = &id
			line.Ref = ref

		case pricingdomain.BookingActivity:
			ref, id, err := requireRef("activity_id", in.ActivityID, "activity")
			if err != nil {
				return nil, nil, err
			}
			item.ActivityID = &id
			line.Ref = ref

		case pricingdomain.BookingCab:
			ref, id, err := requireRef("cab_id", in.CabID, "cab")
			if err != nil {
				return nil, nil, err
			}
			if strings.TrimSpace(in.PickupLocation) == "" {
				return nil, nil, bookingdomain.NewValidationError("pickup_location", "this field is required for cab bookings")
			}
			var pickupAt *time.Time
			if strings.TrimSpace(in.PickupDatetime) != "" {
				parsed, err := time.Parse(time.RFC3339, strings.TrimSpace(in.PickupDatetime))
				if err != nil {
					return nil, nil, bookingdomain.NewValidationError("pickup_datetime", "must be an RFC 3339 timestamp")
				}
				pickupAt = &parsed
			}
			item.CabID = &id
			item.PickupLocation = strings.TrimSpace(in.PickupLocation)
			item.DropLocation = strings.TrimSpace(in.DropLocation)
			item.PickupDatetime = pickupAt
			line.Ref = ref
			line.Cab = &pricingdomain.CabOptions{
				PickupLocation: item.PickupLocation,
				DropLocation:   item.DropLocation,
				PickupDatetime: pickupAt,
			}

		case pricingdomain.BookingHouseBoat:
			ref, id, err := requireRef("houseboat_id", in.HouseBoatID, "houseboat")
			if err != nil {
				return nil, nil, err
			}
			item.HouseBoatID = &id
			item.FullTimeACOpted = in.FullTimeACOpted
			line.Ref = ref
			line.HouseBoat = &pricingdomain.HouseBoatOptions{FullTimeACOpted: in.FullTimeACOpted}
		}

		items = append(items, item)
		lines = append(lines, line)
	}

	return items, lines, nil
}

func requireRef(field, value, bookingType string) (string, snowflake.ID, error) {
	ref := strings.TrimSpace(value)
	if ref == "" {
		return "", 0, bookingdomain.NewValidationError(field, "this field is required for %s bookings", bookingType)
	}
	id, err := snowflake.ParseString(ref)
	if err != nil {
		return "", 0, bookingdomain.NewValidationError(field, "invalid reference")
	}
	return ref, id, nil
}

func validateDateOrder(bookingType pricingdomain.BookingType, checkIn, checkOut time.Time) error {
	if bookingType == pricingdomain.BookingStay {
		if !checkIn.Before(checkOut) {
			return bookingdomain.NewValidationError("check_out", "check-out date must be after check-in date for stays")
		}
		return nil
	}
	if checkIn.After(checkOut) {
		return bookingdomain.NewValidationError("check_out", "check-out date cannot be before check-in date")
	}
	return nil
}

func parseDate(field, value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, bookingdomain.NewValidationError(field, "this field is required")
	}
	parsed, err := time.Parse(dateLayout, trimmed)
	if err != nil {
		return time.Time{}, bookingdomain.NewValidationError(field, "must be a YYYY-MM-DD date")
	}
	return parsed, nil
}

var _ bookingdomain.Service = (*service)(nil)
